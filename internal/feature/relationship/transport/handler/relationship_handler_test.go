package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"social_backend/internal/feature/relationship/usecase"
	"social_backend/internal/feature/users/domain"
	"social_backend/internal/feature/users/domain/entity"
	jwtmw "social_backend/internal/platform/jwt"
)

// mockRelationshipUsecase is a mock implementation of the RelationshipUsecase interface.
type mockRelationshipUsecase struct {
	FollowFunc      func(ctx context.Context, actingID, targetID uint) (uint, error)
	UnfollowFunc    func(ctx context.Context, actingID, targetID uint) (uint, error)
	WhoToFollowFunc func(ctx context.Context, actingID uint) ([]entity.User, error)
}

func (m *mockRelationshipUsecase) Follow(ctx context.Context, actingID, targetID uint) (uint, error) {
	if m.FollowFunc != nil {
		return m.FollowFunc(ctx, actingID, targetID)
	}
	return targetID, nil
}

func (m *mockRelationshipUsecase) Unfollow(ctx context.Context, actingID, targetID uint) (uint, error) {
	if m.UnfollowFunc != nil {
		return m.UnfollowFunc(ctx, actingID, targetID)
	}
	return targetID, nil
}

func (m *mockRelationshipUsecase) WhoToFollow(ctx context.Context, actingID uint) ([]entity.User, error) {
	if m.WhoToFollowFunc != nil {
		return m.WhoToFollowFunc(ctx, actingID)
	}
	return nil, nil
}

// newTestRouter registers the handler behind a stub auth middleware that
// injects the given user id, mirroring what AuthRequired does in prod.
func newTestRouter(h *RelationshipHandler, actingID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, actingID)
		c.Next()
	})
	router.PATCH("/followUser", h.Follow)
	router.DELETE("/unfollowUser/:id", h.Unfollow)
	router.GET("/WhoToFollow", h.WhoToFollow)
	return router
}

func TestRelationshipHandler_Follow(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		mockFollowFunc func(ctx context.Context, actingID, targetID uint) (uint, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name: "success: returns the target id under data",
			body: gin.H{"_id": 2},
			mockFollowFunc: func(ctx context.Context, actingID, targetID uint) (uint, error) {
				if actingID != 1 || targetID != 2 {
					return 0, errors.New("unexpected ids")
				}
				return targetID, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"data": float64(2)},
		},
		{
			name: "failure: unknown target",
			body: gin.H{"_id": 99},
			mockFollowFunc: func(ctx context.Context, actingID, targetID uint) (uint, error) {
				return 0, domain.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"message": "user does not exist"},
		},
		{
			name:           "failure: missing body id",
			body:           gin.H{},
			mockFollowFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRelationshipHandler(&mockRelationshipUsecase{FollowFunc: tt.mockFollowFunc})
			router := newTestRouter(h, 1)

			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPatch, "/followUser", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestRelationshipHandler_Unfollow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewRelationshipHandler(&mockRelationshipUsecase{})
		router := newTestRouter(h, 1)

		req, _ := http.NewRequest(http.MethodDelete, "/unfollowUser/2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data": 2}`, w.Body.String())
	})

	t.Run("not currently followed", func(t *testing.T) {
		h := NewRelationshipHandler(&mockRelationshipUsecase{
			UnfollowFunc: func(ctx context.Context, actingID, targetID uint) (uint, error) {
				return 0, usecase.ErrNotFollowing
			},
		})
		router := newTestRouter(h, 1)

		req, _ := http.NewRequest(http.MethodDelete, "/unfollowUser/2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message": "follower not found"}`, w.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		h := NewRelationshipHandler(&mockRelationshipUsecase{})
		router := newTestRouter(h, 1)

		req, _ := http.NewRequest(http.MethodDelete, "/unfollowUser/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRelationshipHandler_WhoToFollow(t *testing.T) {
	t.Run("success returns the raw user list", func(t *testing.T) {
		h := NewRelationshipHandler(&mockRelationshipUsecase{
			WhoToFollowFunc: func(ctx context.Context, actingID uint) ([]entity.User, error) {
				return []entity.User{{ID: 3, Username: "carol"}}, nil
			},
		})
		router := newTestRouter(h, 1)

		req, _ := http.NewRequest(http.MethodGet, "/WhoToFollow", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var users []gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Len(t, users, 1)
		assert.Equal(t, "carol", users[0]["username"])
	})

	t.Run("missing acting user", func(t *testing.T) {
		h := NewRelationshipHandler(&mockRelationshipUsecase{
			WhoToFollowFunc: func(ctx context.Context, actingID uint) ([]entity.User, error) {
				return nil, domain.ErrUserNotFound
			},
		})
		router := newTestRouter(h, 1)

		req, _ := http.NewRequest(http.MethodGet, "/WhoToFollow", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
