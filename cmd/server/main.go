package main

import (
	"context"
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"community_backend/internal/app/di"
	"community_backend/internal/app/router"
	postadapters "community_backend/internal/feature/post/adapters"
	posthandler "community_backend/internal/feature/post/transport/handler"
	postusecase "community_backend/internal/feature/post/usecase"
	useradapters "community_backend/internal/feature/user/adapters"
	userhandler "community_backend/internal/feature/user/transport/handler"
	userusecase "community_backend/internal/feature/user/usecase"
	"community_backend/internal/platform/cache"
	"community_backend/internal/platform/clock"
	"community_backend/internal/platform/db"
	infraredis "community_backend/internal/platform/redis"
	"community_backend/internal/platform/uuid"
)

func main() {
	ctx := context.Background()

	// db
	gormDB := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
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
	userRepo := useradapters.NewUserMySQL(gormDB)
	postRepo := postadapters.NewPostMySQL(gormDB)

	// Redisキャッシュでラップ
	cachedUserRepo := cache.NewCachingUserRepository(rdb, 0, userRepo, "users")

	// Usecase
	mailSender := di.NewMailSender(ctx)
	certification := userusecase.NewCertificationSender(mailSender, os.Getenv("BASE_URL"))
	userUC := userusecase.NewUserUsecase(cachedUserRepo, certification, clock.SystemClock{}, uuid.SystemUUIDHolder{})
	postUC := postusecase.NewPostUsecase(postRepo, userUC, clock.SystemClock{})

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	postH := posthandler.NewPostHandler(postUC)

	// ルータ生成
	r := router.NewRouter(userH, postH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
