package user

import "errors"

// Domain errors for user operations

var (
	// Entity validation errors
	ErrNameRequired     = errors.New("first and last name are required")
	ErrNameTooLong      = errors.New("name must not exceed 100 characters")
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("invalid email format")
	ErrEmailTooLong     = errors.New("email must not exceed 100 characters")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password must not exceed 128 characters")
	ErrHashFailed       = errors.New("failed to hash password")

	// Lookup and credential errors
	ErrNotFound         = errors.New("user not found")
	ErrEmailTaken       = errors.New("user with this email already exists")
	ErrPasswordMismatch = errors.New("password does not match")
)
