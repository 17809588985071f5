// Package adapters provides the GORM-backed repository implementations
// for the users feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authusecase "social_backend/internal/feature/auth/usecase"
	bookmarkusecase "social_backend/internal/feature/bookmarks/usecase"
	profileusecase "social_backend/internal/feature/profile/usecase"
	relusecase "social_backend/internal/feature/relationship/usecase"
	"social_backend/internal/feature/users/domain"
	"social_backend/internal/feature/users/domain/entity"
)

// Compile-time checks against every consumer-defined repository interface.
var (
	_ authusecase.UserRepository     = (*userGorm)(nil)
	_ relusecase.UserRepository      = (*userGorm)(nil)
	_ bookmarkusecase.UserRepository = (*userGorm)(nil)
	_ profileusecase.UserRepository  = (*userGorm)(nil)
)

// userGorm is the GORM implementation of the user directory.
// It backs the repository interfaces declared by the auth, relationship,
// bookmarks and profile usecases.
type userGorm struct {
	db *gorm.DB
}

// NewUserGorm creates a new userGorm instance with the given gorm.DB connection.
// It is the constructor used for dependency injection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create persists a new user row.
// It returns domain.ErrUsernameTaken when the username unique index rejects the insert.
// The connection must be opened with gorm.Config{TranslateError: true} so that
// driver duplicate-key errors surface as gorm.ErrDuplicatedKey.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	m := UserModelFromEntity(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return err
	}
	u.ID = m.ID
	return nil
}

// FindByID retrieves a user by id.
// It returns domain.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// FindByUsername retrieves a user by username.
// It returns domain.ErrUserNotFound when no row matches.
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// FindByIDs retrieves the users matching the given ids, keyed by id.
// Missing ids are simply absent from the result.
func (r *userGorm) FindByIDs(ctx context.Context, ids []uint) (map[uint]entity.User, error) {
	out := make(map[uint]entity.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var models []UserModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	for i := range models {
		out[models[i].ID] = *models[i].ToEntity()
	}
	return out, nil
}

// FindAll retrieves every user in primary key order.
// The result is unbounded; callers are expected to filter it themselves.
func (r *userGorm) FindAll(ctx context.Context) ([]entity.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(models))
	for i := range models {
		out = append(out, *models[i].ToEntity())
	}
	return out, nil
}

// Save writes the full user row back to the store.
// There is no version check: concurrent saves of the same user race and
// the last write wins, list columns included.
func (r *userGorm) Save(ctx context.Context, u *entity.User) error {
	if u == nil || u.ID == 0 {
		return errors.New("user has no id")
	}
	return r.db.WithContext(ctx).Save(UserModelFromEntity(u)).Error
}
