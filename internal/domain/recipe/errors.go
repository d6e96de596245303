package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrTitleRequired = errors.New("recipe title is required")
	ErrTitleTooLong  = errors.New("recipe title must not exceed 100 characters")
	ErrOwnerRequired = errors.New("recipe must have an owner")

	// Lookup errors
	ErrNotFound = errors.New("recipe not found")

	// Permission errors
	ErrNotOwner = errors.New("only the recipe owner can perform this action")
)
