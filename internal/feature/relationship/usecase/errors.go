// Package usecase implements the business logic for the relationship feature.
package usecase

import "errors"

var (
	// ErrNotFollowing is returned by Unfollow when the target id is not
	// present in the acting user's following list.
	ErrNotFollowing = errors.New("follower not found")
)
