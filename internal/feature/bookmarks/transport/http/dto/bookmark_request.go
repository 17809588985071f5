// Package dto defines data transfer objects for the bookmarks feature's HTTP transport layer.
package dto

import "social_backend/internal/feature/profile/domain/entity"

// BookmarkReq represents the request body for the /addBookmark endpoint.
// The post id travels under the _id key, as the frontend sends it.
type BookmarkReq struct {
	ID uint `json:"_id" binding:"required"`
}

// BookmarkResp carries the refreshed aggregated profile after a bookmark
// mutation, plus a human-readable confirmation.
type BookmarkResp struct {
	Data    *entity.AggregatedUser `json:"data"`
	Message string                 `json:"message"`
}
