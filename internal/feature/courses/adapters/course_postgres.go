// Package adapters はcoursesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"courses_backend/internal/feature/courses/domain/entity"
	"courses_backend/internal/feature/courses/usecase"
)

// coursePostgres はCourseRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type coursePostgres struct {
	db *gorm.DB
}

// coursePostgresがCourseRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CourseRepository = (*coursePostgres)(nil)

// NewCoursePostgres は指定されたgorm.DB接続でcoursePostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewCoursePostgres(db *gorm.DB) *coursePostgres {
	return &coursePostgres{db: db}
}

// courseOwnerRow は所有者JOIN結果のスキャン用モデルです。
type courseOwnerRow struct {
	ID              uint
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
	UserID          uint
	OwnerFirstName  string
	OwnerLastName   string
	OwnerEmail      string
}

// courseOwnerSelect は所有者の公開フィールドのみを選択します。
// 所有者のid・パスワードハッシュ・タイムスタンプは取得しません。
const courseOwnerSelect = "courses.id, courses.title, courses.description, " +
	"courses.estimated_time, courses.materials_needed, courses.user_id, " +
	"users.first_name AS owner_first_name, users.last_name AS owner_last_name, " +
	"users.email AS owner_email"

// toEntity はスキャン行を読み取りモデルへ変換します。
func (row courseOwnerRow) toEntity() entity.CourseWithOwner {
	return entity.CourseWithOwner{
		Course: entity.Course{
			ID:              row.ID,
			Title:           row.Title,
			Description:     row.Description,
			EstimatedTime:   row.EstimatedTime,
			MaterialsNeeded: row.MaterialsNeeded,
			UserID:          row.UserID,
		},
		Owner: entity.Owner{
			FirstName: row.OwnerFirstName,
			LastName:  row.OwnerLastName,
			Email:     row.OwnerEmail,
		},
	}
}

// Create はコースをデータベースに追加します。
func (r *coursePostgres) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// FindAll は全コースを所有者の公開フィールド付きで取得します。
func (r *coursePostgres) FindAll(ctx context.Context) ([]entity.CourseWithOwner, error) {
	var rows []courseOwnerRow
	err := r.db.WithContext(ctx).
		Table("courses").
		Select(courseOwnerSelect).
		Joins("JOIN users ON users.id = courses.user_id").
		Order("courses.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.CourseWithOwner, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// FindByID は指定されたIDのコースを所有者付きで取得します。
// コースが存在しない場合、usecase.ErrCourseNotFoundを返します。
func (r *coursePostgres) FindByID(ctx context.Context, id uint) (*entity.CourseWithOwner, error) {
	var row courseOwnerRow
	res := r.db.WithContext(ctx).
		Table("courses").
		Select(courseOwnerSelect).
		Joins("JOIN users ON users.id = courses.user_id").
		Where("courses.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrCourseNotFound
	}

	cw := row.toEntity()
	return &cw, nil
}

// Update はコースの内容フィールドを保存します。所有者は変更しません。
func (r *coursePostgres) Update(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).
		Model(&entity.Course{}).
		Where("id = ?", course.ID).
		Updates(map[string]any{
			"title":            course.Title,
			"description":      course.Description,
			"estimated_time":   course.EstimatedTime,
			"materials_needed": course.MaterialsNeeded,
		}).Error
}

// Delete は指定されたIDのコースを完全に削除します。
func (r *coursePostgres) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Course{}, id).Error
}
