package errors

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrInvalidEmployeeData     = errors.New("invalid employee data")
	ErrDuplicateEmployeeID     = errors.New("employee id already exists")
	ErrDuplicateEmployeeEmail  = errors.New("employee email already exists")
	ErrSupervisorNotFound      = errors.New("supervisor not found")
	ErrSupervisorOtherDept     = errors.New("supervisor must be in the same department")
	ErrSelfSupervision         = errors.New("employee cannot be their own supervisor")
	ErrEmployeeHasSubordinates = errors.New("employee still has subordinates")
	ErrEmployeeManagesDept     = errors.New("employee manages a department")
	ErrNoTransferableEmployees = errors.New("no transferable employees found")
)
