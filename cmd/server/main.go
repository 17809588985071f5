package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"social_backend/internal/app/di"
	"social_backend/internal/app/router"
	authhandler "social_backend/internal/feature/auth/transport/handler"
	authusecase "social_backend/internal/feature/auth/usecase"
	bookmarkhandler "social_backend/internal/feature/bookmarks/transport/handler"
	bookmarkusecase "social_backend/internal/feature/bookmarks/usecase"
	profilehandler "social_backend/internal/feature/profile/transport/handler"
	profileusecase "social_backend/internal/feature/profile/usecase"
	relhandler "social_backend/internal/feature/relationship/transport/handler"
	relusecase "social_backend/internal/feature/relationship/usecase"
	"social_backend/internal/feature/users/adapters"
	infradb "social_backend/internal/platform/db"
	infraredis "social_backend/internal/platform/redis"
	jwtmw "social_backend/internal/platform/jwt"
)

func main() {
	// The signing secret is required; refusing to start beats issuing
	// tokens signed with an empty key.
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional: the profile cache degrades to direct reads)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without profile cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := adapters.NewUserGorm(db)
	postRepo := adapters.NewPostGorm(db)

	// Token generator (10-day bearer tokens)
	tokens := jwtmw.NewGenerator(secret, jwtmw.DefaultTokenLifetime)

	// Usecase
	profileUC := profileusecase.NewProfileUsecase(userRepo, postRepo)
	profiles := di.NewProfileSource(rdb, 0, profileUC)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	relUC := relusecase.NewRelationshipUsecase(userRepo, profiles)
	bookmarkUC := bookmarkusecase.NewBookmarkUsecase(userRepo, profiles)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	relH := relhandler.NewRelationshipHandler(relUC)
	bookmarkH := bookmarkhandler.NewBookmarkHandler(bookmarkUC)
	profileH := profilehandler.NewProfileHandler(profiles)

	r := router.NewRouter(secret, authH, relH, bookmarkH, profileH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
