// Package dto はcoursesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "courses_backend/internal/feature/courses/domain/entity"

// OwnerRes は所有者の公開フィールドのみを表します。
// 所有者のid・パスワード・タイムスタンプは含まれません。
type OwnerRes struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailAddress"`
}

// CourseRes はコース1件のレスポンス表現です。
type CourseRes struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	EstimatedTime   string   `json:"estimatedTime,omitempty"`
	MaterialsNeeded string   `json:"materialsNeeded,omitempty"`
	UserID          uint     `json:"userId"`
	User            OwnerRes `json:"user"`
}

// CourseEnvelope はGET /courses/:idのレスポンスボディです。
type CourseEnvelope struct {
	Message string    `json:"message"`
	Course  CourseRes `json:"course"`
}

// ToCourseRes は読み取りモデルをレスポンス表現へ変換します。
func ToCourseRes(cw entity.CourseWithOwner) CourseRes {
	return CourseRes{
		ID:              cw.Course.ID,
		Title:           cw.Course.Title,
		Description:     cw.Course.Description,
		EstimatedTime:   cw.Course.EstimatedTime,
		MaterialsNeeded: cw.Course.MaterialsNeeded,
		UserID:          cw.Course.UserID,
		User: OwnerRes{
			FirstName: cw.Owner.FirstName,
			LastName:  cw.Owner.LastName,
			Email:     cw.Owner.Email,
		},
	}
}

// ToCourseResList は読み取りモデルのスライスを変換します。
// 空の場合もnilではなく空スライスを返します。
func ToCourseResList(list []entity.CourseWithOwner) []CourseRes {
	out := make([]CourseRes, 0, len(list))
	for _, cw := range list {
		out = append(out, ToCourseRes(cw))
	}
	return out
}
