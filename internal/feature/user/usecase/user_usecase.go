// Package usecase はuserフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"community_backend/internal/feature/user/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Save はユーザーを保存します。IDが未割り当ての場合は新規作成してIDを採番し、
	// 割り当て済みの場合はIDをキーに更新します。採番後のエンティティを返します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Save(ctx context.Context, user entity.User) (entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (entity.User, error)

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (entity.User, error)
}

// MailSender はメール送信を抽象化します。配信保証は実装側の責務です。
type MailSender interface {
	// Send は1通のメールを送信します。
	Send(ctx context.Context, to, subject, body string) error
}

// UserUsecase はユーザーライフサイクル（登録、参照、更新、ログイン、メール認証）の
// ビジネスロジックを実装します。
type UserUsecase struct {
	users         UserRepository
	certification *CertificationSender
	clock         entity.ClockHolder
	uuid          entity.UUIDHolder
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserUsecase(users UserRepository, certification *CertificationSender, clock entity.ClockHolder, uuidHolder entity.UUIDHolder) *UserUsecase {
	return &UserUsecase{
		users:         users,
		certification: certification,
		clock:         clock,
		uuid:          uuidHolder,
	}
}

// Create は新規ユーザーをPENDING状態で登録し、認証コードを含むメールを送信します。
// メール送信は保存成功後にちょうど1回行われ、送信に失敗した場合はエラーを
// そのまま返します（リトライは呼び出し側の責務）。
func (u *UserUsecase) Create(ctx context.Context, in entity.UserCreate) (entity.User, error) {
	user := entity.FromCreate(in, u.uuid)
	saved, err := u.users.Save(ctx, user)
	if err != nil {
		return entity.User{}, err
	}
	if err := u.certification.SendCertificationEmail(ctx, saved.Email, saved.ID, saved.CertificationCode); err != nil {
		return entity.User{}, err
	}
	return saved, nil
}

// GetByID はACTIVE状態のユーザーをIDで取得します。
// PENDING状態のユーザーは通常の参照からは存在しない扱いになるため、
// ErrUserNotFoundを返します。
func (u *UserUsecase) GetByID(ctx context.Context, id uint) (entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	if user.Status != entity.UserStatusActive {
		return entity.User{}, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail はACTIVE状態のユーザーをメールアドレスで取得します。
// 可視性ルールはGetByIDと同じです。
func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return entity.User{}, err
	}
	if user.Status != entity.UserStatusActive {
		return entity.User{}, ErrUserNotFound
	}
	return user, nil
}

// Update はプロフィール（ニックネームと住所）のみを更新します。
// ステータスによる絞り込みは行いません。認証前のユーザーも自分のプロフィールを
// 更新できます。
func (u *UserUsecase) Update(ctx context.Context, id uint, in entity.UserUpdate) (entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	return u.users.Save(ctx, user.Update(in))
}

// Login は最終ログイン時刻を注入されたクロックの現在時刻に更新します。
func (u *UserUsecase) Login(ctx context.Context, id uint) (entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	return u.users.Save(ctx, user.Login(u.clock))
}

// VerifyEmail は認証コードを検証し、一致した場合にユーザーをACTIVEに遷移させて
// 永続化します。通常参照と異なり、PENDING状態のユーザーもここでは取得できます。
// コードが一致しない場合は何も保存せずにエラーを返します。
func (u *UserUsecase) VerifyEmail(ctx context.Context, id uint, code string) (entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}
	certified, err := user.Certify(code)
	if err != nil {
		return entity.User{}, err
	}
	return u.users.Save(ctx, certified)
}
