package adapters

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"social_backend/internal/feature/users/domain/entity"
)

// IDList stores an ordered id sequence as a JSON-encoded text column.
// The whole list is rewritten on every save, which gives the same
// last-write-wins behavior as saving a list field on a document store.
type IDList []uint

// Value serializes the list for storage. A nil list encodes as [].
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode id list: %w", err)
	}
	return string(b), nil
}

// Scan deserializes the list from its stored representation.
func (l *IDList) Scan(value any) error {
	if value == nil {
		*l = IDList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported id list column type %T", value)
	}
	if len(b) == 0 {
		*l = IDList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID            uint      `gorm:"primaryKey"`
	Username      string    `gorm:"uniqueIndex;size:255;not null"`
	Password      string    `gorm:"size:255;not null"`
	RegisteredAt  time.Time `gorm:"not null"`
	ProfilePic    string    `gorm:"size:512"`
	Bio           string    `gorm:"size:1024"`
	BackgroundPic string    `gorm:"size:512"`
	Following     IDList    `gorm:"type:text"`
	Followers     IDList    `gorm:"type:text"`
	Bookmarks     IDList    `gorm:"type:text"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Password:      m.Password,
		RegisteredAt:  m.RegisteredAt,
		ProfilePic:    m.ProfilePic,
		Bio:           m.Bio,
		BackgroundPic: m.BackgroundPic,
		Following:     m.Following,
		Followers:     m.Followers,
		Bookmarks:     m.Bookmarks,
	}
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:            u.ID,
		Username:      u.Username,
		Password:      u.Password,
		RegisteredAt:  u.RegisteredAt,
		ProfilePic:    u.ProfilePic,
		Bio:           u.Bio,
		BackgroundPic: u.BackgroundPic,
		Following:     u.Following,
		Followers:     u.Followers,
		Bookmarks:     u.Bookmarks,
	}
}
