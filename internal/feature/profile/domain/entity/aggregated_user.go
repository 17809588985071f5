// Package entity defines the read-model entities for the profile feature.
package entity

import "time"

// UserSummary is the compact user view embedded in profile joins:
// the fields the frontend shows in follow lists and post bylines.
type UserSummary struct {
	ID         uint   `json:"_id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
	Bio        string `json:"bio"`
}

// BookmarkedPost is a bookmarked post joined with its author's summary.
type BookmarkedPost struct {
	ID        uint        `json:"_id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Author    UserSummary `json:"author"`
}

// AggregatedUser is the enriched profile view: the user's display fields
// with the following/followers/bookmarks id lists resolved to their
// referenced records.
type AggregatedUser struct {
	ID            uint             `json:"_id"`
	Username      string           `json:"username"`
	RegisteredAt  time.Time        `json:"registered_at"`
	ProfilePic    string           `json:"profile_pic"`
	Bio           string           `json:"bio"`
	BackgroundPic string           `json:"background_pic"`
	Following     []UserSummary    `json:"following"`
	Followers     []UserSummary    `json:"followers"`
	Bookmarks     []BookmarkedPost `json:"bookmarks"`
}
