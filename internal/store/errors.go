package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or belongs to a
	// different restaurant. The two cases are deliberately indistinguishable
	// so callers cannot probe other restaurants' data.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when registering a username that already
	// has an account.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when registering an email already bound to a
	// restaurant.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidStatus is returned for a status value outside the allowed set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidDate is returned when a date field is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)
