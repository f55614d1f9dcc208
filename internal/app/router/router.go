package router

import (
	"github.com/gin-gonic/gin"

	posthandler "community_backend/internal/feature/post/transport/handler"
	userhandler "community_backend/internal/feature/user/transport/handler"
	"community_backend/internal/platform/http/handler"
)

// NewRouter は全APIルートを登録したginエンジンを生成します。
func NewRouter(users *userhandler.UserHandler, posts *posthandler.PostHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// ユーザー登録とメール認証
		api.POST("/users", users.Create)
		api.GET("/users/:id", users.GetByID)
		api.GET("/users/:id/verify", users.VerifyEmail)

		// 自分のプロフィール（EMAILヘッダで本人を解決）
		api.GET("/me", users.Me)
		api.PUT("/me", users.UpdateMe)

		// 投稿
		api.POST("/posts", posts.Create)
		api.GET("/posts/:id", posts.GetByID)
		api.PUT("/posts/:id", posts.Update)
	}

	return r
}
