// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// UserRes は認証済みユーザーの公開フィールドを表します。
// パスワードハッシュとタイムスタンプは含まれません。
type UserRes struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailAddress"`
}

// UserEnvelope はGET /usersのレスポンスボディです。
type UserEnvelope struct {
	User UserRes `json:"user"`
}
