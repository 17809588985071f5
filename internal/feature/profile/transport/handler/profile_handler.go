// Package handler provides the HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/profile/domain/entity"
	"social_backend/internal/feature/users/domain"
)

// ProfileUsecase defines the profile read used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProfileUsecase interface {
	// FetchProfileByUsername returns the aggregated profile for a username.
	FetchProfileByUsername(ctx context.Context, username string) (*entity.AggregatedUser, error)
}

// ProfileHandler handles the public profile endpoint.
type ProfileHandler struct {
	profiles ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(profiles ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Fetch handles GET /:username.
// Responds {data: AggregatedUser} or 404 when the profile does not exist.
func (h *ProfileHandler) Fetch(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profiles.FetchProfileByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
			return
		}
		slog.Error("profile fetch failed", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}
