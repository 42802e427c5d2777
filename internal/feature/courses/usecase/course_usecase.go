// Package usecase はcoursesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"courses_backend/internal/feature/courses/domain/entity"
	"courses_backend/internal/shared/apperr"
)

// CourseRepository はコースエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CourseRepository interface {
	// Create は新しいコースをストレージに永続化します。
	Create(ctx context.Context, course *entity.Course) error

	// FindAll は全コースを所有者の公開フィールド付きで取得します。
	FindAll(ctx context.Context) ([]entity.CourseWithOwner, error)

	// FindByID は指定されたIDのコースを所有者付きで取得します。
	// コースが存在しない場合、ErrCourseNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.CourseWithOwner, error)

	// Update はコースの内容フィールドを保存します。
	Update(ctx context.Context, course *entity.Course) error

	// Delete は指定されたIDのコースを完全に削除します。
	Delete(ctx context.Context, id uint) error
}

// CourseInput はコース作成・更新の入力値です。
// nilフィールドは「指定なし」を意味し、更新時は既存値が維持されます。
type CourseInput struct {
	Title           *string
	Description     *string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// courseUsecase はコースCRUDと所有権チェックのビジネスロジックを実装します。
type courseUsecase struct {
	courses CourseRepository
}

// NewCourseUsecase はcourseUsecaseの新しいインスタンスを生成します。
func NewCourseUsecase(courses CourseRepository) *courseUsecase {
	return &courseUsecase{courses: courses}
}

// applyInput は指定されたフィールドのみをコースへ反映します。
func applyInput(course *entity.Course, in CourseInput) {
	if in.Title != nil {
		course.Title = *in.Title
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.EstimatedTime != nil {
		course.EstimatedTime = *in.EstimatedTime
	}
	if in.MaterialsNeeded != nil {
		course.MaterialsNeeded = *in.MaterialsNeeded
	}
}

// validateCourse は必須フィールドの違反メッセージをすべて集約します。
// 違反がない場合はnilを返します。
func validateCourse(course *entity.Course) *apperr.ValidationError {
	verr := &apperr.ValidationError{}
	if course.Title == "" {
		verr.Add("A title is required.")
	}
	if course.Description == "" {
		verr.Add("A description is required.")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// List は全コースを所有者の公開フィールド付きで返します。
func (u *courseUsecase) List(ctx context.Context) ([]entity.CourseWithOwner, error) {
	return u.courses.FindAll(ctx)
}

// Get は指定されたIDのコースを所有者付きで返します。
func (u *courseUsecase) Get(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
	return u.courses.FindByID(ctx, id)
}

// Create は認証済みユーザーを所有者として新規コースを永続化します。
// 所有者はサーバー側で要求者に固定され、リクエストボディ由来のuserIdは信頼しません。
func (u *courseUsecase) Create(ctx context.Context, ownerID uint, in CourseInput) (*entity.Course, error) {
	course := &entity.Course{UserID: ownerID}
	applyInput(course, in)

	if verr := validateCourse(course); verr != nil {
		return nil, verr
	}
	if err := u.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update は所有者のみ部分更新を適用します。指定されたフィールドのみを変更し、
// 更新後のコースを再検証します。未検出・所有権不一致の場合は一切書き込みません。
func (u *courseUsecase) Update(ctx context.Context, requesterID, id uint, in CourseInput) error {
	found, err := u.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}

	course := found.Course
	if course.UserID != requesterID {
		return ErrNotCourseOwner
	}

	applyInput(&course, in)
	if verr := validateCourse(&course); verr != nil {
		return verr
	}
	return u.courses.Update(ctx, &course)
}

// Delete は所有者のみコースを完全に削除します。ソフトデリートは行いません。
func (u *courseUsecase) Delete(ctx context.Context, requesterID, id uint) error {
	found, err := u.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if found.Course.UserID != requesterID {
		return ErrNotCourseOwner
	}
	return u.courses.Delete(ctx, id)
}
