// Package handler はcoursesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courses_backend/internal/api"
	"courses_backend/internal/feature/courses/domain/entity"
	"courses_backend/internal/feature/courses/transport/http/dto"
	"courses_backend/internal/feature/courses/usecase"
	"courses_backend/internal/platform/basicauth"
	"courses_backend/internal/shared/apperr"
)

// CourseUsecase はコース操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CourseUsecase interface {
	// List は全コースを所有者の公開フィールド付きで返します。
	List(ctx context.Context) ([]entity.CourseWithOwner, error)
	// Get は指定されたIDのコースを所有者付きで返します。
	Get(ctx context.Context, id uint) (*entity.CourseWithOwner, error)
	// Create は認証済みユーザーを所有者として新規コースを作成します。
	Create(ctx context.Context, ownerID uint, in usecase.CourseInput) (*entity.Course, error)
	// Update は所有者のみ部分更新を適用します。
	Update(ctx context.Context, requesterID, id uint, in usecase.CourseInput) error
	// Delete は所有者のみコースを削除します。
	Delete(ctx context.Context, requesterID, id uint) error
}

// CourseHandler はコース操作のHTTPリクエストを処理します。
type CourseHandler struct {
	courses CourseUsecase
}

// NewCourseHandler はCourseHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からCourseUsecaseを注入します。
func NewCourseHandler(courses CourseUsecase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// parseID は:idパスパラメータを解析します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// writeCourseError はusecaseエラーをHTTPレスポンスへ変換します。
// 想定外のエラーは内部情報を漏らさず汎用の500を返します。
func writeCourseError(c *gin.Context, err error, forbiddenMsg string) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, api.ErrorsResponse{Errors: verr.Messages})
	case errors.Is(err, usecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Course Not Found. :("})
	case errors.Is(err, usecase.ErrNotCourseOwner):
		c.JSON(http.StatusForbidden, api.MessageResponse{Message: forbiddenMsg})
	default:
		slog.Error("course operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
	}
}

// List は全コースを所有者付きで返します。認証は不要です。
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		slog.Error("course list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCourseResList(courses))
}

// Get は指定されたIDのコースを所有者付きで返します。認証は不要です。
// - コースが存在しない場合は404を返却
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Course Not Found. :("})
		return
	}

	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		writeCourseError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.CourseEnvelope{
		Message: "Course Found!",
		Course:  dto.ToCourseRes(*course),
	})
}

// Create は認証済みユーザーを所有者として新規コースを作成します。
// - 検証違反時は全メッセージを集約して400を返却
// - 成功時はLocation: /courses/:id ヘッダー付きで201（ボディなし）を返却
func (h *CourseHandler) Create(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Access Denied"})
		return
	}

	var req dto.CourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("course create: malformed body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorsResponse{Errors: []string{"invalid request body"}})
		return
	}

	course, err := h.courses.Create(c.Request.Context(), user.ID, req.ToInput())
	if err != nil {
		writeCourseError(c, err, "")
		return
	}

	slog.Info("course created", "course_id", course.ID, "owner_id", user.ID)
	c.Header("Location", "/courses/"+strconv.FormatUint(uint64(course.ID), 10))
	c.Status(http.StatusCreated)
}

// Update は所有者のみコースを部分更新します。
// - コースが存在しない場合は404、所有者でない場合は403を返却
// - 成功時は204（ボディなし）を返却
func (h *CourseHandler) Update(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Access Denied"})
		return
	}

	id, idOK := parseID(c)
	if !idOK {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Course Not Found. :("})
		return
	}

	var req dto.CourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("course update: malformed body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorsResponse{Errors: []string{"invalid request body"}})
		return
	}

	if err := h.courses.Update(c.Request.Context(), user.ID, id, req.ToInput()); err != nil {
		writeCourseError(c, err, "You shall not edit!")
		return
	}

	slog.Info("course updated", "course_id", id, "owner_id", user.ID)
	c.Status(http.StatusNoContent)
}

// Delete は所有者のみコースを完全に削除します。
// - コースが存在しない場合は404、所有者でない場合は403を返却
// - 成功時は204（ボディなし）を返却
func (h *CourseHandler) Delete(c *gin.Context) {
	user, ok := basicauth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Access Denied"})
		return
	}

	id, idOK := parseID(c)
	if !idOK {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Course Not Found. :("})
		return
	}

	if err := h.courses.Delete(c.Request.Context(), user.ID, id); err != nil {
		writeCourseError(c, err, "You shall not delete!")
		return
	}

	slog.Info("course deleted", "course_id", id, "owner_id", user.ID)
	c.Status(http.StatusNoContent)
}
