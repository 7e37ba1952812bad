package errors

import "errors"

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidAdminData   = errors.New("invalid admin data")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
)
