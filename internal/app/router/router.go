package router

import (
	"github.com/gin-gonic/gin"

	coursehandler "courses_backend/internal/feature/courses/transport/handler"
	userhandler "courses_backend/internal/feature/users/transport/handler"
	"courses_backend/internal/platform/basicauth"
	platformhandler "courses_backend/internal/platform/http/handler"
)

func NewRouter(auth basicauth.Authenticator, users *userhandler.UserHandler,
	courses *coursehandler.CourseHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録（登録のみ認証不要）
	r.POST("/users", users.Create)
	// コースの閲覧は公開
	r.GET("/courses", courses.List)
	r.GET("/courses/:id", courses.Get)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	protected := r.Group("/")
	// basicauth.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーにBasic認証の資格情報が必要になる
	protected.Use(basicauth.AuthRequired(auth))
	{
		protected.GET("/users", users.GetCurrent)
		protected.POST("/courses", courses.Create)
		protected.PUT("/courses/:id", courses.Update)
		protected.DELETE("/courses/:id", courses.Delete)
	}

	return r
}
