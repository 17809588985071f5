// Package dto defines data transfer objects for the relationship feature's HTTP transport layer.
package dto

// FollowReq represents the request body for the /followUser endpoint.
// The target user id travels under the _id key, as the frontend sends it.
type FollowReq struct {
	ID uint `json:"_id" binding:"required"`
}

// RelationshipResp wraps the confirmed target id for follow/unfollow responses.
type RelationshipResp struct {
	Data uint `json:"data"`
}
