package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	profileusecase "social_backend/internal/feature/profile/usecase"
	"social_backend/internal/feature/users/domain/entity"
)

var _ profileusecase.PostRepository = (*postGorm)(nil)

// PostModel is the GORM model for the posts table.
type PostModel struct {
	ID        uint      `gorm:"primaryKey"`
	Author    uint      `gorm:"index;not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// ToEntity converts the GORM model to a domain entity.
func (m *PostModel) ToEntity() *entity.Post {
	return &entity.Post{
		ID:        m.ID,
		Author:    m.Author,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// postGorm is the GORM implementation of the post lookup used by the
// profile aggregator. Post authoring lives in a separate service; this
// adapter only reads (and seeds, in tests) the rows the join needs.
type postGorm struct {
	db *gorm.DB
}

// NewPostGorm creates a new postGorm instance with the given gorm.DB connection.
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create persists a new post row.
func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	if p == nil {
		return errors.New("nil post")
	}
	m := &PostModel{Author: p.Author, Content: p.Content, CreatedAt: p.CreatedAt}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	return nil
}

// FindByIDs retrieves the posts matching the given ids, keyed by id.
// Missing ids are simply absent from the result; the aggregator decides
// how to treat dangling bookmark references.
func (r *postGorm) FindByIDs(ctx context.Context, ids []uint) (map[uint]entity.Post, error) {
	out := make(map[uint]entity.Post, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var models []PostModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	for i := range models {
		out[models[i].ID] = *models[i].ToEntity()
	}
	return out, nil
}
