package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"courses_backend/internal/app/di"
	"courses_backend/internal/app/router"
	courseshandler "courses_backend/internal/feature/courses/transport/handler"
	coursesusecase "courses_backend/internal/feature/courses/usecase"
	usersadapters "courses_backend/internal/feature/users/adapters"
	usershandler "courses_backend/internal/feature/users/transport/handler"
	usersusecase "courses_backend/internal/feature/users/usecase"
	infradb "courses_backend/internal/platform/db"
	infraredis "courses_backend/internal/platform/redis"
)

func main() {
	// .envがあれば読み込む
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

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
	userRepo := usersadapters.NewUserPostgres(db)
	courseRepo := di.NewCourseRepository(rdb, db, 5*time.Minute)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)
	courseUC := coursesusecase.NewCourseUsecase(courseRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)
	courseH := courseshandler.NewCourseHandler(courseUC)

	// ルータ生成（認証ミドルウェアにはユーザーユースケースを注入）
	r := router.NewRouter(userUC, userH, courseH)

	// 永続化呼び出しのハング対策としてサーバー側タイムアウトを設定
	srv := &http.Server{
		Addr:         ":8080",
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
