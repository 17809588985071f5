// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account in the network.
// It carries authentication credentials, display fields and the
// denormalized relationship lists stored on the user document.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `json:"_id"`

	// Username is the unique handle used for login and public profiles.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	// It is never serialized to clients.
	Password string `json:"-"`

	// RegisteredAt is the timestamp when the account was created.
	RegisteredAt time.Time `json:"registered_at"`

	// ProfilePic is the avatar image URL shown on the profile.
	ProfilePic string `json:"profile_pic"`

	// Bio is the free-form profile description.
	Bio string `json:"bio"`

	// BackgroundPic is the profile banner image URL.
	BackgroundPic string `json:"background_pic"`

	// Following holds the ids of users this user follows, in follow order.
	// Duplicates are allowed; repeated follow calls append repeated ids.
	Following []uint `json:"following"`

	// Followers holds the ids of users following this user.
	Followers []uint `json:"followers"`

	// Bookmarks holds the ids of posts this user saved, in save order.
	// Duplicates are allowed.
	Bookmarks []uint `json:"bookmarks"`
}
