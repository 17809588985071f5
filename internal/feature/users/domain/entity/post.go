package entity

import "time"

// Post is a piece of content referenced by user bookmarks.
// The posts feature owns its lifecycle; this package only needs the
// fields required for the bookmark join.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `json:"_id"`

	// Author is the id of the user who wrote the post.
	Author uint `json:"author"`

	// Content is the post body.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at"`
}
