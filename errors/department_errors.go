package errors

import "errors"

var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrInvalidDepartmentData   = errors.New("invalid department data")
	ErrDuplicateDepartmentName = errors.New("department name already exists")
	ErrDuplicateDepartmentCode = errors.New("department code already exists")
	ErrDepartmentHasEmployees  = errors.New("department still has employees")
)
