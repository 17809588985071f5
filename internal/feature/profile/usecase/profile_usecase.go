// Package usecase implements the profile aggregation logic.
package usecase

import (
	"context"
	"fmt"

	profileentity "social_backend/internal/feature/profile/domain/entity"
	usersentity "social_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the user lookups needed for aggregation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by id.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*usersentity.User, error)

	// FindByUsername retrieves a user by username.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*usersentity.User, error)

	// FindByIDs retrieves the users matching the given ids, keyed by id.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]usersentity.User, error)
}

// PostRepository abstracts the post lookups needed for the bookmark join.
type PostRepository interface {
	// FindByIDs retrieves the posts matching the given ids, keyed by id.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]usersentity.Post, error)
}

// profileUsecase assembles enriched profile views.
// Each join issues its own store read; there is no isolation across the
// nested lookups, so a concurrent mutation can land between them.
type profileUsecase struct {
	users UserRepository
	posts PostRepository
}

// NewProfileUsecase creates a new profileUsecase instance.
func NewProfileUsecase(users UserRepository, posts PostRepository) *profileUsecase {
	return &profileUsecase{users: users, posts: posts}
}

// ResolveUsername maps a username to its user id.
func (u *profileUsecase) ResolveUsername(ctx context.Context, username string) (uint, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// FetchProfile loads a user and resolves its relationship and bookmark
// lists: following/followers ids become user summaries, bookmark ids
// become posts joined with their author's summary. Ids whose referent no
// longer exists are skipped; list order and duplicates are preserved.
func (u *profileUsecase) FetchProfile(ctx context.Context, userID uint) (*profileentity.AggregatedUser, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	following, err := u.resolveSummaries(ctx, user.Following)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve following: %w", err)
	}
	followers, err := u.resolveSummaries(ctx, user.Followers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve followers: %w", err)
	}
	bookmarks, err := u.resolveBookmarks(ctx, user.Bookmarks)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bookmarks: %w", err)
	}

	return &profileentity.AggregatedUser{
		ID:            user.ID,
		Username:      user.Username,
		RegisteredAt:  user.RegisteredAt,
		ProfilePic:    user.ProfilePic,
		Bio:           user.Bio,
		BackgroundPic: user.BackgroundPic,
		Following:     following,
		Followers:     followers,
		Bookmarks:     bookmarks,
	}, nil
}

// FetchProfileByUsername resolves a username and aggregates its profile.
func (u *profileUsecase) FetchProfileByUsername(ctx context.Context, username string) (*profileentity.AggregatedUser, error) {
	id, err := u.ResolveUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.FetchProfile(ctx, id)
}

// resolveSummaries turns a user id list into summaries, preserving order
// and duplicates, skipping ids with no referent.
func (u *profileUsecase) resolveSummaries(ctx context.Context, ids []uint) ([]profileentity.UserSummary, error) {
	byID, err := u.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]profileentity.UserSummary, 0, len(ids))
	for _, id := range ids {
		ref, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, profileentity.UserSummary{
			ID:         ref.ID,
			Username:   ref.Username,
			ProfilePic: ref.ProfilePic,
			Bio:        ref.Bio,
		})
	}
	return out, nil
}

// resolveBookmarks turns a post id list into posts joined with their
// author summaries.
func (u *profileUsecase) resolveBookmarks(ctx context.Context, ids []uint) ([]profileentity.BookmarkedPost, error) {
	postsByID, err := u.posts.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(postsByID))
	seen := map[uint]struct{}{}
	for _, p := range postsByID {
		if _, ok := seen[p.Author]; ok {
			continue
		}
		seen[p.Author] = struct{}{}
		authorIDs = append(authorIDs, p.Author)
	}
	authorsByID, err := u.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]profileentity.BookmarkedPost, 0, len(ids))
	for _, id := range ids {
		post, ok := postsByID[id]
		if !ok {
			continue
		}
		bp := profileentity.BookmarkedPost{
			ID:        post.ID,
			Content:   post.Content,
			CreatedAt: post.CreatedAt,
		}
		if author, ok := authorsByID[post.Author]; ok {
			bp.Author = profileentity.UserSummary{
				ID:         author.ID,
				Username:   author.Username,
				ProfilePic: author.ProfilePic,
				Bio:        author.Bio,
			}
		}
		out = append(out, bp)
	}
	return out, nil
}
