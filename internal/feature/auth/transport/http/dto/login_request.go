// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import "social_backend/internal/feature/users/domain/entity"

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResp is the success payload for /login: the full user record
// (password hash excluded by the entity's JSON tags) and a fresh token.
type LoginResp struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}
