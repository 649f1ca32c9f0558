package services

import "errors"

var (
	// ErrOptionNotFound is returned when a vote targets an unknown option.
	ErrOptionNotFound = errors.New("option not found")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
