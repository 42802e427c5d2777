package basicauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"courses_backend/internal/feature/users/domain/entity"
	"courses_backend/internal/feature/users/usecase"
)

// mockAuthenticator はAuthenticatorインターフェースのモック実装です。
type mockAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, email, password string) (*entity.User, error)
}

// Authenticate はモックのAuthenticate関数を呼び出します。
func (m *mockAuthenticator) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return nil, usecase.ErrInvalidCredentials
}

// setupRouter は保護されたテスト用ルートを持つルータを生成します。
func setupRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(auth), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

// TestAuthRequired_ValidCredentials は正しい資格情報でユーザーがコンテキストに
// 添付され、後続ハンドラーへ処理が渡ることを検証します。
func TestAuthRequired_ValidCredentials(t *testing.T) {
	auth := &mockAuthenticator{
		AuthenticateFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
			if email == "joe@smith.com" && password == "password123" {
				return &entity.User{ID: 1, Email: email}, nil
			}
			return nil, usecase.ErrInvalidCredentials
		},
	}
	router := setupRouter(auth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.SetBasicAuth("joe@smith.com", "password123")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"joe@smith.com"}`, w.Body.String())
}

// TestAuthRequired_Rejections は失敗理由によらず同一の401レスポンスを返すことを検証します。
func TestAuthRequired_Rejections(t *testing.T) {
	auth := &mockAuthenticator{
		AuthenticateFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
			if email == "joe@smith.com" && password == "password123" {
				return &entity.User{ID: 1, Email: email}, nil
			}
			// 未知のユーザーも誤ったパスワードも同じエラー
			return nil, usecase.ErrInvalidCredentials
		},
	}

	tests := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{
			name:  "missing authorization header",
			setup: func(req *http.Request) {},
		},
		{
			name: "malformed authorization header",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-basic")
			},
		},
		{
			name: "unknown user",
			setup: func(req *http.Request) {
				req.SetBasicAuth("nobody@example.com", "password123")
			},
		},
		{
			name: "wrong password",
			setup: func(req *http.Request) {
				req.SetBasicAuth("joe@smith.com", "wrong-password")
			},
		},
	}

	router := setupRouter(auth)

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"message":"Access Denied"}`, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			bodies = append(bodies, w.Body.String())
		})
	}

	// どの失敗ケースも区別できないこと
	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i], "rejection responses must be identical")
	}
}

// TestCurrentUser_Empty はミドルウェアを経由していないコンテキストでfalseを返すことを検証します。
func TestCurrentUser_Empty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	user, ok := CurrentUser(c)

	assert.False(t, ok)
	assert.Nil(t, user)
}
