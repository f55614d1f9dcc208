// Package adapters はpostフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"community_backend/internal/feature/post/domain/entity"
	"community_backend/internal/feature/post/usecase"
)

// postMySQL はPostRepositoryインターフェースのMySQL実装です。
type postMySQL struct {
	db *gorm.DB
}

// postMySQLがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*postMySQL)(nil)

// NewPostMySQL は指定されたgorm.DB接続でpostMySQLの新しいインスタンスを生成します。
func NewPostMySQL(db *gorm.DB) *postMySQL {
	return &postMySQL{db: db}
}

// Save は投稿を保存します。IDが未割り当ての場合は新規作成して採番されたIDを
// 反映したエンティティを返し、割り当て済みの場合はIDをキーに本文と編集時刻を更新します。
func (r *postMySQL) Save(ctx context.Context, p entity.Post) (entity.Post, error) {
	m := toPostModel(p)
	if m.ID == 0 {
		if err := r.db.WithContext(ctx).Omit("Writer").Create(&m).Error; err != nil {
			return entity.Post{}, err
		}
		p.ID = m.ID
		return p, nil
	}

	// Selectで列を明示し、nilへの更新も反映させる
	if err := r.db.WithContext(ctx).
		Model(&PostModel{}).
		Where("id = ?", m.ID).
		Select("content", "created_at_ms", "modified_at_ms", "writer_id").
		Updates(&m).Error; err != nil {
		return entity.Post{}, err
	}
	return p, nil
}

// FindByID はIDで投稿を取得します。投稿者はPreloadで一緒に読み込みます。
// 投稿が存在しない場合、usecase.ErrPostNotFoundを返します。
func (r *postMySQL) FindByID(ctx context.Context, id uint) (entity.Post, error) {
	var m PostModel
	if err := r.db.WithContext(ctx).Preload("Writer").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Post{}, usecase.ErrPostNotFound
		}
		return entity.Post{}, err
	}
	return m.toEntity(), nil
}
