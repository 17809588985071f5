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

	"social_backend/internal/feature/profile/domain/entity"
	"social_backend/internal/feature/users/domain"
	jwtmw "social_backend/internal/platform/jwt"
)

// mockBookmarkUsecase is a mock implementation of the BookmarkUsecase interface.
type mockBookmarkUsecase struct {
	AddBookmarkFunc    func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error)
	RemoveBookmarkFunc func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error)
}

func (m *mockBookmarkUsecase) AddBookmark(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error) {
	if m.AddBookmarkFunc != nil {
		return m.AddBookmarkFunc(ctx, actingID, postID)
	}
	return &entity.AggregatedUser{ID: actingID}, nil
}

func (m *mockBookmarkUsecase) RemoveBookmark(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error) {
	if m.RemoveBookmarkFunc != nil {
		return m.RemoveBookmarkFunc(ctx, actingID, postID)
	}
	return &entity.AggregatedUser{ID: actingID}, nil
}

// newTestRouter registers the handler behind a stub auth middleware that
// injects the given user id, mirroring what AuthRequired does in prod.
func newTestRouter(h *BookmarkHandler, actingID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, actingID)
		c.Next()
	})
	router.PATCH("/addBookmark", h.Add)
	router.DELETE("/removeBookmark/:id", h.Remove)
	return router
}

func TestBookmarkHandler_Add(t *testing.T) {
	tests := []struct {
		name            string
		body            gin.H
		mockAddFunc     func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error)
		expectedStatus  int
		expectedMessage string
		expectedError   string
	}{
		{
			name: "success: returns refreshed profile and message",
			body: gin.H{"_id": 10},
			mockAddFunc: func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error) {
				if actingID != 1 || postID != 10 {
					return nil, errors.New("unexpected ids")
				}
				return &entity.AggregatedUser{ID: 1, Username: "alice"}, nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Added to bookmarks",
		},
		{
			name:           "missing post id: 400",
			body:           gin.H{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name: "acting user missing: 404",
			body: gin.H{"_id": 10},
			mockAddFunc: func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error) {
				return nil, domain.ErrUserNotFound
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "user not found",
		},
		{
			name: "unexpected error: 500",
			body: gin.H{"_id": 10},
			mockAddFunc: func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBookmarkHandler(&mockBookmarkUsecase{AddBookmarkFunc: tt.mockAddFunc})
			router := newTestRouter(h, 1)

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPatch, "/addBookmark", bytes.NewReader(b))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp["message"])
			}
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
			}
			if tt.expectedStatus == http.StatusOK {
				data, ok := resp["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "alice", data["username"])
			}
		})
	}
}

func TestBookmarkHandler_Remove(t *testing.T) {
	tests := []struct {
		name            string
		param           string
		mockRemoveFunc  func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error)
		expectedStatus  int
		expectedMessage string
		expectedError   string
	}{
		{
			name:  "success: returns refreshed profile and message",
			param: "10",
			mockRemoveFunc: func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error) {
				if actingID != 1 || postID != 10 {
					return nil, errors.New("unexpected ids")
				}
				return &entity.AggregatedUser{ID: 1, Username: "alice"}, nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Removed from bookmarks",
		},
		{
			name:           "non-numeric post id: 400",
			param:          "abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid post id",
		},
		{
			name:  "acting user missing: 404",
			param: "10",
			mockRemoveFunc: func(ctx context.Context, actingID, postID uint) (*entity.AggregatedUser, error) {
				return nil, domain.ErrUserNotFound
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBookmarkHandler(&mockBookmarkUsecase{RemoveBookmarkFunc: tt.mockRemoveFunc})
			router := newTestRouter(h, 1)

			req := httptest.NewRequest(http.MethodDelete, "/removeBookmark/"+tt.param, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp["message"])
			}
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
			}
		})
	}
}
