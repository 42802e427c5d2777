package usecase

import (
	"context"
	"errors"
	"testing"

	"courses_backend/internal/feature/courses/domain/entity"
	"courses_backend/internal/shared/apperr"
)

// mockCourseRepository はテスト用のCourseRepositoryモック実装です。
type mockCourseRepository struct {
	createFn   func(ctx context.Context, course *entity.Course) error
	findAllFn  func(ctx context.Context) ([]entity.CourseWithOwner, error)
	findByIDFn func(ctx context.Context, id uint) (*entity.CourseWithOwner, error)
	updateFn   func(ctx context.Context, course *entity.Course) error
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if m.createFn != nil {
		return m.createFn(ctx, course)
	}
	return nil
}

func (m *mockCourseRepository) FindAll(ctx context.Context) ([]entity.CourseWithOwner, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockCourseRepository) FindByID(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, ErrCourseNotFound
}

func (m *mockCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, course)
	}
	return nil
}

func (m *mockCourseRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func strPtr(s string) *string { return &s }

// ownedCourse はID=10, 所有者ID=1のテスト用コースを返します。
func ownedCourse() *entity.CourseWithOwner {
	return &entity.CourseWithOwner{
		Course: entity.Course{
			ID:          10,
			Title:       "Learn Go",
			Description: "An introduction to Go",
			UserID:      1,
		},
		Owner: entity.Owner{FirstName: "Joe", LastName: "Smith", Email: "joe@smith.com"},
	}
}

func TestCourseUsecase_Create(t *testing.T) {
	t.Run("ownership is forced to the authenticated requester", func(t *testing.T) {
		mockRepo := &mockCourseRepository{
			createFn: func(ctx context.Context, course *entity.Course) error {
				if course.UserID != 42 {
					t.Errorf("expected owner ID 42, got %d", course.UserID)
				}
				course.ID = 5
				return nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		course, err := uc.Create(context.Background(), 42, CourseInput{
			Title:       strPtr("Learn Go"),
			Description: strPtr("An introduction to Go"),
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if course.ID != 5 || course.UserID != 42 {
			t.Errorf("unexpected course: %+v", course)
		}
	})

	t.Run("validation failures are aggregated and nothing is written", func(t *testing.T) {
		createCalled := false
		mockRepo := &mockCourseRepository{
			createFn: func(ctx context.Context, course *entity.Course) error {
				createCalled = true
				return nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		_, err := uc.Create(context.Background(), 1, CourseInput{})

		var verr *apperr.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *apperr.ValidationError, got %v", err)
		}
		if createCalled {
			t.Error("repository Create should not be called on validation failure")
		}
		expected := []string{"A title is required.", "A description is required."}
		if len(verr.Messages) != len(expected) {
			t.Fatalf("expected %d messages, got %v", len(expected), verr.Messages)
		}
		for i, msg := range expected {
			if verr.Messages[i] != msg {
				t.Errorf("message %d: expected %q, got %q", i, msg, verr.Messages[i])
			}
		}
	})
}

func TestCourseUsecase_Update(t *testing.T) {
	t.Run("owner applies a partial update", func(t *testing.T) {
		var updated *entity.Course
		mockRepo := &mockCourseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
				return ownedCourse(), nil
			},
			updateFn: func(ctx context.Context, course *entity.Course) error {
				updated = course
				return nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		err := uc.Update(context.Background(), 1, 10, CourseInput{Title: strPtr("Learn Go Deeply")})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil {
			t.Fatal("repository Update was not called")
		}
		if updated.Title != "Learn Go Deeply" {
			t.Errorf("title not updated: %q", updated.Title)
		}
		// 未指定フィールドは維持される
		if updated.Description != "An introduction to Go" {
			t.Errorf("description should be unchanged: %q", updated.Description)
		}
	})

	t.Run("non-owner is rejected without mutation", func(t *testing.T) {
		updateCalled := false
		mockRepo := &mockCourseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
				return ownedCourse(), nil
			},
			updateFn: func(ctx context.Context, course *entity.Course) error {
				updateCalled = true
				return nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		err := uc.Update(context.Background(), 2, 10, CourseInput{Title: strPtr("Hijacked")})

		if !errors.Is(err, ErrNotCourseOwner) {
			t.Errorf("expected ErrNotCourseOwner, got: %v", err)
		}
		if updateCalled {
			t.Error("repository Update should not be called for a non-owner")
		}
	})

	t.Run("missing course propagates not found", func(t *testing.T) {
		uc := NewCourseUsecase(&mockCourseRepository{})

		err := uc.Update(context.Background(), 1, 999, CourseInput{Title: strPtr("X")})

		if !errors.Is(err, ErrCourseNotFound) {
			t.Errorf("expected ErrCourseNotFound, got: %v", err)
		}
	})

	t.Run("clearing a required field fails validation without mutation", func(t *testing.T) {
		updateCalled := false
		mockRepo := &mockCourseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
				return ownedCourse(), nil
			},
			updateFn: func(ctx context.Context, course *entity.Course) error {
				updateCalled = true
				return nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		err := uc.Update(context.Background(), 1, 10, CourseInput{Title: strPtr("")})

		var verr *apperr.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if updateCalled {
			t.Error("repository Update should not be called on validation failure")
		}
	})
}

func TestCourseUsecase_Delete(t *testing.T) {
	t.Run("owner deletes the course", func(t *testing.T) {
		deletedID := uint(0)
		mockRepo := &mockCourseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
				return ownedCourse(), nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		err := uc.Delete(context.Background(), 1, 10)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deletedID != 10 {
			t.Errorf("expected delete of course 10, got %d", deletedID)
		}
	})

	t.Run("non-owner is rejected without deletion", func(t *testing.T) {
		deleteCalled := false
		mockRepo := &mockCourseRepository{
			findByIDFn: func(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
				return ownedCourse(), nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				deleteCalled = true
				return nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		err := uc.Delete(context.Background(), 2, 10)

		if !errors.Is(err, ErrNotCourseOwner) {
			t.Errorf("expected ErrNotCourseOwner, got: %v", err)
		}
		if deleteCalled {
			t.Error("repository Delete should not be called for a non-owner")
		}
	})

	t.Run("missing course propagates not found", func(t *testing.T) {
		uc := NewCourseUsecase(&mockCourseRepository{})

		err := uc.Delete(context.Background(), 1, 999)

		if !errors.Is(err, ErrCourseNotFound) {
			t.Errorf("expected ErrCourseNotFound, got: %v", err)
		}
	})
}

func TestCourseUsecase_ListAndGet(t *testing.T) {
	t.Run("List returns all courses with owners", func(t *testing.T) {
		mockRepo := &mockCourseRepository{
			findAllFn: func(ctx context.Context) ([]entity.CourseWithOwner, error) {
				return []entity.CourseWithOwner{*ownedCourse()}, nil
			},
		}

		uc := NewCourseUsecase(mockRepo)
		courses, err := uc.List(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(courses) != 1 || courses[0].Owner.FirstName != "Joe" {
			t.Errorf("unexpected result: %+v", courses)
		}
	})

	t.Run("Get propagates not found", func(t *testing.T) {
		uc := NewCourseUsecase(&mockCourseRepository{})

		_, err := uc.Get(context.Background(), 999)

		if !errors.Is(err, ErrCourseNotFound) {
			t.Errorf("expected ErrCourseNotFound, got: %v", err)
		}
	})
}
