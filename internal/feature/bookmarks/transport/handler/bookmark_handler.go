// Package handler provides the HTTP handlers for the bookmarks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/bookmarks/transport/http/dto"
	"social_backend/internal/feature/profile/domain/entity"
	"social_backend/internal/feature/users/domain"
	jwtmw "social_backend/internal/platform/jwt"
)

// BookmarkUsecase defines the bookmark operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type BookmarkUsecase interface {
	// AddBookmark appends the post to the acting user's bookmarks and
	// returns the refreshed aggregated profile.
	AddBookmark(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error)
	// RemoveBookmark removes every occurrence of the post and returns the
	// refreshed aggregated profile.
	RemoveBookmark(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error)
}

// BookmarkHandler handles HTTP requests for the bookmark list.
// All routes sit behind the bearer-token middleware.
type BookmarkHandler struct {
	bookmarks BookmarkUsecase
}

// NewBookmarkHandler creates a new BookmarkHandler instance.
func NewBookmarkHandler(bookmarks BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// Add handles PATCH /addBookmark.
// The post id arrives in the body under _id.
func (h *BookmarkHandler) Add(c *gin.Context) {
	actingID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated user"})
		return
	}

	var req dto.BookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("add bookmark validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := h.bookmarks.AddBookmark(c.Request.Context(), actingID, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		slog.Error("add bookmark failed", "error", err, "acting_id", actingID, "post_id", req.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BookmarkResp{Data: profile, Message: "Added to bookmarks"})
}

// Remove handles DELETE /removeBookmark/:id.
func (h *BookmarkHandler) Remove(c *gin.Context) {
	actingID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated user"})
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	profile, err := h.bookmarks.RemoveBookmark(c.Request.Context(), actingID, uint(postID))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		slog.Error("remove bookmark failed", "error", err, "acting_id", actingID, "post_id", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BookmarkResp{Data: profile, Message: "Removed from bookmarks"})
}
