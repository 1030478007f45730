package models

import "errors"

// Sentinel errors the handlers translate into the response envelope.
// Nothing else leaves the service layer.
var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyDeleted     = errors.New("already deleted")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrPasswordMismatch   = errors.New("password not matched")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrNoResetSession     = errors.New("missing email or password")
)
