// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"courses_backend/internal/feature/users/domain/entity"
	"courses_backend/internal/shared/apperr"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// maxPasswordLength はパスワードの最大文字数を定義します。
	maxPasswordLength = 20
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、エラーを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、エラーを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、エラーを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// RegisterInput は新規ユーザー登録の入力値です。
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string

	// ConfirmPassword は任意の確認用フィールドです。
	// 指定された場合はPasswordと一致する必要があります。
	ConfirmPassword string
}

// userUsecase はユーザー登録・認証のビジネスロジックを実装します。
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// validateRegisterInput は登録入力を検証し、違反メッセージをすべて集約します。
// 違反がない場合はnilを返します。
func validateRegisterInput(in RegisterInput) *apperr.ValidationError {
	verr := &apperr.ValidationError{}

	if in.FirstName == "" {
		verr.Add("A first name is required.")
	}
	if in.LastName == "" {
		verr.Add("A last name is required.")
	}
	if in.Email == "" {
		verr.Add("An email address is required.")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		verr.Add("Please provide a valid email address")
	}
	if in.Password == "" {
		verr.Add("A password is required.")
	} else if len(in.Password) < minPasswordLength || len(in.Password) > maxPasswordLength {
		verr.Add(fmt.Sprintf("The password should be between %d and %d characters in length",
			minPasswordLength, maxPasswordLength))
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		verr.Add("Both passwords must match")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// Register は入力を検証し、パスワードをハッシュ化して新規ユーザーを永続化します。
// 検証違反時は何も書き込まず、すべての違反メッセージを集約したエラーを返します。
// ハッシュ化されていないパスワードが保存されることはありません。
func (u *userUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if verr := validateRegisterInput(in); verr != nil {
		return nil, verr
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate は資格情報ペアを検証し、解決されたユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// ユーザー未検出とパスワード不一致は同一のErrInvalidCredentialsになります。
func (u *userUsecase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
