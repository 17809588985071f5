package usecase

import (
	"context"
	"fmt"
	"slices"

	"social_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by id.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAll retrieves every user in store enumeration order.
	FindAll(ctx context.Context) ([]entity.User, error)

	// Save writes the full user record back to the store.
	Save(ctx context.Context, user *entity.User) error
}

// ProfileInvalidator drops a cached aggregated profile after a mutation.
// A nil invalidator disables invalidation.
type ProfileInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}

// relationshipUsecase implements the follow/unfollow mutations.
// Every mutation is a non-atomic load, in-memory list edit and full save;
// concurrent mutations of the same user race and the last save wins.
type relationshipUsecase struct {
	users    UserRepository
	profiles ProfileInvalidator
}

// NewRelationshipUsecase creates a new relationshipUsecase instance.
// profiles may be nil when no profile cache is configured.
func NewRelationshipUsecase(users UserRepository, profiles ProfileInvalidator) *relationshipUsecase {
	return &relationshipUsecase{users: users, profiles: profiles}
}

// Follow appends targetID to the acting user's following list and saves.
// There is no duplicate check and no self-follow guard; repeated calls
// append repeated ids. Returns the target id as confirmation.
func (u *relationshipUsecase) Follow(ctx context.Context, actingID, targetID uint) (uint, error) {
	if _, err := u.users.FindByID(ctx, targetID); err != nil {
		return 0, err
	}

	acting, err := u.users.FindByID(ctx, actingID)
	if err != nil {
		return 0, err
	}

	acting.Following = append(acting.Following, targetID)
	if err := u.users.Save(ctx, acting); err != nil {
		return 0, fmt.Errorf("failed to save following list: %w", err)
	}

	u.invalidate(ctx, actingID)
	return targetID, nil
}

// Unfollow removes every occurrence of targetID from the acting user's
// following list and saves. It returns ErrNotFollowing when the target is
// not present at all.
func (u *relationshipUsecase) Unfollow(ctx context.Context, actingID, targetID uint) (uint, error) {
	acting, err := u.users.FindByID(ctx, actingID)
	if err != nil {
		return 0, err
	}

	if !slices.Contains(acting.Following, targetID) {
		return 0, ErrNotFollowing
	}

	acting.Following = slices.DeleteFunc(acting.Following, func(id uint) bool {
		return id == targetID
	})
	if err := u.users.Save(ctx, acting); err != nil {
		return 0, fmt.Errorf("failed to save following list: %w", err)
	}

	u.invalidate(ctx, actingID)
	return targetID, nil
}

// WhoToFollow returns every user except the acting user and the users
// already present in its following list, in store enumeration order.
// The result is unpaginated.
func (u *relationshipUsecase) WhoToFollow(ctx context.Context, actingID uint) ([]entity.User, error) {
	acting, err := u.users.FindByID(ctx, actingID)
	if err != nil {
		return nil, err
	}

	all, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]entity.User, 0, len(all))
	for _, candidate := range all {
		if candidate.ID == acting.ID || slices.Contains(acting.Following, candidate.ID) {
			continue
		}
		out = append(out, candidate)
	}
	return out, nil
}

// invalidate drops the cached profile for a user, best effort.
func (u *relationshipUsecase) invalidate(ctx context.Context, userID uint) {
	if u.profiles == nil {
		return
	}
	_ = u.profiles.Invalidate(ctx, userID)
}
