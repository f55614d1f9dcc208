// Package adapters はuserフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"community_backend/internal/feature/user/domain/entity"
	"community_backend/internal/feature/user/usecase"
)

// userMySQL はUserRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Save はユーザーを保存します。IDが未割り当ての場合は新規作成して採番されたIDを
// 反映したエンティティを返し、割り当て済みの場合はIDをキーに全フィールドを更新します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMySQL) Save(ctx context.Context, u entity.User) (entity.User, error) {
	m := toUserModel(u)
	if m.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			// MySQLエラー1062: ユニークキーの重複エントリ
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
				return entity.User{}, usecase.ErrEmailAlreadyExists
			}
			return entity.User{}, err
		}
		return m.ToEntity(), nil
	}

	// Selectで列を明示し、ゼロ値やnilへの更新も反映させる
	if err := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", m.ID).
		Select("email", "nickname", "address", "status", "certification_code", "last_login_at").
		Updates(&m).Error; err != nil {
		return entity.User{}, err
	}
	return m.ToEntity(), nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByID(ctx context.Context, id uint) (entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, usecase.ErrUserNotFound
		}
		return entity.User{}, err
	}
	return m.ToEntity(), nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, usecase.ErrUserNotFound
		}
		return entity.User{}, err
	}
	return m.ToEntity(), nil
}
