// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is the generic login failure. It deliberately does
	// not reveal whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUserInactive is returned when the account has been soft-disabled.
	ErrUserInactive = errors.New("user is inactive")
)
