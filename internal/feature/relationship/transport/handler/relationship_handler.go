// Package handler provides the HTTP handlers for the relationship feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/relationship/transport/http/dto"
	"social_backend/internal/feature/relationship/usecase"
	"social_backend/internal/feature/users/domain"
	"social_backend/internal/feature/users/domain/entity"
	jwtmw "social_backend/internal/platform/jwt"
)

// RelationshipUsecase defines the follow operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type RelationshipUsecase interface {
	// Follow appends the target to the acting user's following list.
	Follow(ctx context.Context, actingID, targetID uint) (uint, error)
	// Unfollow removes every occurrence of the target from the following list.
	Unfollow(ctx context.Context, actingID, targetID uint) (uint, error)
	// WhoToFollow lists every user not yet followed by the acting user.
	WhoToFollow(ctx context.Context, actingID uint) ([]entity.User, error)
}

// RelationshipHandler handles HTTP requests for follow relationships.
// All routes sit behind the bearer-token middleware, which stores the
// verified user id in the gin context.
type RelationshipHandler struct {
	rel RelationshipUsecase
}

// NewRelationshipHandler creates a new RelationshipHandler instance.
func NewRelationshipHandler(rel RelationshipUsecase) *RelationshipHandler {
	return &RelationshipHandler{rel: rel}
}

// Follow handles PATCH /followUser.
// The target id arrives in the body under _id; responds {data: targetID}.
func (h *RelationshipHandler) Follow(c *gin.Context) {
	actingID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated user"})
		return
	}

	var req dto.FollowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("follow validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, err := h.rel.Follow(c.Request.Context(), actingID, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
			return
		}
		slog.Error("follow failed", "error", err, "acting_id", actingID, "target_id", req.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RelationshipResp{Data: id})
}

// Unfollow handles DELETE /unfollowUser/:id.
// Responds 404 when the target is not currently followed.
func (h *RelationshipHandler) Unfollow(c *gin.Context) {
	actingID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated user"})
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	id, err := h.rel.Unfollow(c.Request.Context(), actingID, uint(targetID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFollowing):
			c.JSON(http.StatusNotFound, gin.H{"message": "follower not found"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "user does not exist"})
		default:
			slog.Error("unfollow failed", "error", err, "acting_id", actingID, "target_id", targetID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RelationshipResp{Data: id})
}

// WhoToFollow handles GET /WhoToFollow.
// Responds with the unfiltered user records not yet followed.
func (h *RelationshipHandler) WhoToFollow(c *gin.Context) {
	actingID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated user"})
		return
	}

	users, err := h.rel.WhoToFollow(c.Request.Context(), actingID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		slog.Error("who-to-follow failed", "error", err, "acting_id", actingID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
