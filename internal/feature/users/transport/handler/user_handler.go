// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"courses_backend/internal/api"
	"courses_backend/internal/feature/users/domain/entity"
	"courses_backend/internal/feature/users/transport/http/dto"
	"courses_backend/internal/feature/users/usecase"
	"courses_backend/internal/platform/basicauth"
	"courses_backend/internal/shared/apperr"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Register は入力を検証し、新規ユーザーをハッシュ化されたパスワードで登録します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
// UserUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create はユーザー登録APIエンドポイントを処理します。認証は不要です。
// - 検証・一意性違反時は全メッセージを集約して400を返却
// - 成功時はLocation: / ヘッダー付きで201（ボディなし）を返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user create: malformed body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorsResponse{Errors: []string{"invalid request body"}})
		return
	}

	_, err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var verr *apperr.ValidationError
		switch {
		case errors.As(err, &verr):
			slog.Warn("user create: validation failed", "errors", verr.Messages, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorsResponse{Errors: verr.Messages})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			// 一意性違反は検証違反と同じレスポンス形式で返す
			slog.Warn("user create: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorsResponse{Errors: []string{"The email you entered already exists"}})
		default:
			slog.Error("user create failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		}
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}

// GetCurrent は認証済みユーザー自身の公開フィールドを返します。
// ミドルウェアが解決したユーザーをコンテキストから取得します。
func (h *UserHandler) GetCurrent(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		// 認証ミドルウェアを経由していない場合のみ到達する
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Access Denied"})
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{User: dto.UserRes{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}})
}
