// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingFields is returned when username or password is empty.
	ErrMissingFields = errors.New("all fields are required")

	// ErrIncorrectUsername is returned on login when the username does not exist.
	// Login failures share a status code but keep distinct messages that
	// clients key off.
	ErrIncorrectUsername = errors.New("incorrect username")

	// ErrIncorrectPassword is returned on login when the password does not match.
	ErrIncorrectPassword = errors.New("incorrect password")
)
