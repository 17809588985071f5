package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

// TestMain sets Gin to test mode before the tests run.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestAuthRequired_MissingBearerToken verifies that requests without a
// usable Bearer header are rejected with 401.
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			handler := AuthRequired(testSecret)
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_EmptySecret verifies that a middleware constructed with
// an empty secret answers 500 rather than accepting unverifiable tokens.
func TestAuthRequired_EmptySecret(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer sometoken")

	handler := AuthRequired("")
	handler(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// TestAuthRequired_ValidToken verifies that a freshly generated token
// passes the middleware and the user id lands in the context.
func TestAuthRequired_ValidToken(t *testing.T) {
	gen := NewGenerator(testSecret, time.Hour)
	token, err := gen.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	handler := AuthRequired(testSecret)
	handler(c)

	if c.IsAborted() {
		t.Fatalf("expected request to pass, got status %d", w.Code)
	}
	id, ok := UserIDFromContext(c)
	if !ok {
		t.Fatal("expected user id in context")
	}
	if id != 42 {
		t.Errorf("expected user id 42, got %d", id)
	}
}

// TestAuthRequired_InvalidTokens verifies that expired, malformed and
// wrongly signed tokens are rejected with 401.
func TestAuthRequired_InvalidTokens(t *testing.T) {
	expired, err := NewGenerator(testSecret, -time.Hour).GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	wrongSecret, err := NewGenerator("other-secret", time.Hour).GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	// Token signed with "none" algorithm
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired token", expired},
		{"wrong secret", wrongSecret},
		{"garbage token", "not.a.jwt"},
		{"none algorithm", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			handler := AuthRequired(testSecret)
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}
