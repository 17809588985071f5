// Package usecase implements the business logic for the bookmarks feature.
package usecase

import (
	"context"
	"fmt"
	"slices"

	profileentity "social_backend/internal/feature/profile/domain/entity"
	usersentity "social_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by id.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*usersentity.User, error)

	// Save writes the full user record back to the store.
	Save(ctx context.Context, user *usersentity.User) error
}

// ProfileSource serves aggregated profile views and drops stale cached ones.
type ProfileSource interface {
	// FetchProfile returns the aggregated profile for a user id.
	FetchProfile(ctx context.Context, userID uint) (*profileentity.AggregatedUser, error)

	// Invalidate removes any cached profile for the user.
	Invalidate(ctx context.Context, userID uint) error
}

// bookmarkUsecase implements the bookmark list mutations.
// Like the relationship mutations these are non-atomic read-modify-write
// cycles; concurrent saves of the same user race and the last one wins.
type bookmarkUsecase struct {
	users    UserRepository
	profiles ProfileSource
}

// NewBookmarkUsecase creates a new bookmarkUsecase instance.
func NewBookmarkUsecase(users UserRepository, profiles ProfileSource) *bookmarkUsecase {
	return &bookmarkUsecase{users: users, profiles: profiles}
}

// AddBookmark appends postID to the acting user's bookmark list, saves,
// and returns the re-read aggregated profile. Duplicates are allowed;
// bookmarking the same post twice stores it twice.
func (u *bookmarkUsecase) AddBookmark(ctx context.Context, actingID, postID uint) (*profileentity.AggregatedUser, error) {
	acting, err := u.users.FindByID(ctx, actingID)
	if err != nil {
		return nil, err
	}

	acting.Bookmarks = append(acting.Bookmarks, postID)
	if err := u.users.Save(ctx, acting); err != nil {
		return nil, fmt.Errorf("failed to save bookmarks: %w", err)
	}

	return u.freshProfile(ctx, actingID)
}

// RemoveBookmark removes every occurrence of postID from the acting
// user's bookmark list, saves, and returns the re-read aggregated
// profile. Removing a post that was never bookmarked is not an error.
func (u *bookmarkUsecase) RemoveBookmark(ctx context.Context, actingID, postID uint) (*profileentity.AggregatedUser, error) {
	acting, err := u.users.FindByID(ctx, actingID)
	if err != nil {
		return nil, err
	}

	acting.Bookmarks = slices.DeleteFunc(acting.Bookmarks, func(id uint) bool {
		return id == postID
	})
	if err := u.users.Save(ctx, acting); err != nil {
		return nil, fmt.Errorf("failed to save bookmarks: %w", err)
	}

	return u.freshProfile(ctx, actingID)
}

// freshProfile invalidates the cached profile and re-reads the joined view.
func (u *bookmarkUsecase) freshProfile(ctx context.Context, userID uint) (*profileentity.AggregatedUser, error) {
	_ = u.profiles.Invalidate(ctx, userID)
	profile, err := u.profiles.FetchProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile after bookmark change: %w", err)
	}
	return profile, nil
}
