// Package domain defines domain-level errors for the users feature.
package domain

import "errors"

// Domain errors for user directory operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserNotFound indicates that no user was found with the given criteria.
	// This is returned by lookups on a missing id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates that a user with the given username already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrUsernameTaken = errors.New("username is already taken")
)
