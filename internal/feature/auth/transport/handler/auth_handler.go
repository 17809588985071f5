// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/auth/transport/http/dto"
	"social_backend/internal/feature/auth/usecase"
	"social_backend/internal/feature/users/domain"
	"social_backend/internal/feature/users/domain/entity"
)

// AuthUsecase defines the credential operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and returns its username with a fresh token.
	Register(ctx context.Context, username, password string) (string, string, error)
	// Login authenticates a user and returns the user record with a fresh token.
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
}

// AuthHandler handles HTTP requests for account registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the account creation endpoint.
// - binds the request JSON to RegisterReq
// - 400 on missing fields or duplicate username
// - 200 with {username, token} on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrMissingFields.Error()})
		return
	}

	username, token, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields), errors.Is(err, domain.ErrUsernameTaken):
			slog.Warn("register rejected", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("register failed", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	slog.Info("account created", "username", username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.RegisterResp{Username: username, Token: token})
}

// Login handles the login endpoint.
// - binds the request JSON to LoginReq
// - 400 on missing fields, unknown username or wrong password
//   (same status, distinct messages)
// - 200 with {user, token} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrMissingFields.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields),
			errors.Is(err, usecase.ErrIncorrectUsername),
			errors.Is(err, usecase.ErrIncorrectPassword):
			slog.Warn("login rejected", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("login failed", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{User: user, Token: token})
}
