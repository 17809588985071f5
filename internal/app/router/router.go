package router

import (
	"github.com/gin-gonic/gin"

	authhandler "social_backend/internal/feature/auth/transport/handler"
	bookmarkhandler "social_backend/internal/feature/bookmarks/transport/handler"
	profilehandler "social_backend/internal/feature/profile/transport/handler"
	relhandler "social_backend/internal/feature/relationship/transport/handler"
	"social_backend/internal/platform/http/handler"
	jwtmw "social_backend/internal/platform/jwt"
)

// NewRouter builds the route table. The signing secret is injected into
// the auth middleware here so no handler reads the environment.
func NewRouter(secret string, auth *authhandler.AuthHandler, rel *relhandler.RelationshipHandler,
	bookmarks *bookmarkhandler.BookmarkHandler, profile *profilehandler.ProfileHandler) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/login", auth.Login)
	r.POST("/createAccount", auth.Register)

	// Routes requiring a bearer token
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(secret))
	{
		protected.PATCH("/followUser", rel.Follow)
		protected.DELETE("/unfollowUser/:id", rel.Unfollow)
		protected.GET("/WhoToFollow", rel.WhoToFollow)
		protected.PATCH("/addBookmark", bookmarks.Add)
		protected.DELETE("/removeBookmark/:id", bookmarks.Remove)
	}

	// Public profile page. Registered last: static siblings like
	// /WhoToFollow take precedence over the username parameter.
	r.GET("/:username", profile.Fetch)

	return r
}
