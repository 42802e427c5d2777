// Package basicauth はHTTP Basic認証ミドルウェアを提供します。
package basicauth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"courses_backend/internal/feature/users/domain/entity"
)

// ContextUser は解決済みユーザーを保持するginコンテキストキーです。
const ContextUser = "currentUser"

// Authenticator は資格情報ペア（メールアドレスと平文パスワード）を検証し、
// ユーザーを解決します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマーが定義します。
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware function that validates Basic
// credentials against the stored password hashes and restricts access to
// authenticated users only.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract the credential pair from the Authorization header
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			deny(c)
			return
		}

		// 2. Verify the pair against the user store
		user, err := auth.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			// 「ユーザー不存在」と「パスワード不一致」を区別する情報は返さない
			slog.Warn("authentication failed", "remote_addr", c.ClientIP())
			deny(c)
			return
		}

		// 3. Attach the resolved identity for downstream handlers
		c.Set(ContextUser, user)

		// 4. Pass control to the next handler
		c.Next()
	}
}

// deny は401とBasic認証チャレンジを返し、処理を中断します。
// 失敗理由によらず同一のレスポンスを返します。
func deny(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="courses"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
}

// CurrentUser はミドルウェアが添付したユーザーをコンテキストから取り出します。
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
