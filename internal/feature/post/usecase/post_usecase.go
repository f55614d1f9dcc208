// Package usecase はpostフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"community_backend/internal/feature/post/domain/entity"
	userentity "community_backend/internal/feature/user/domain/entity"
)

// PostRepository は投稿エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PostRepository interface {
	// Save は投稿を保存します。IDが未割り当ての場合は新規作成してIDを採番します。
	Save(ctx context.Context, post entity.Post) (entity.Post, error)

	// FindByID は指定されたIDに一致する投稿を取得します。
	// 投稿が存在しない場合、ErrPostNotFoundを返します。
	FindByID(ctx context.Context, id uint) (entity.Post, error)
}

// UserReader は投稿者の解決に使うユーザー参照を抽象化します。
// ACTIVE状態のユーザーのみ取得できるため、未認証ユーザーは投稿できません。
type UserReader interface {
	GetByID(ctx context.Context, id uint) (userentity.User, error)
}

// PostUsecase は投稿の作成・参照・編集のビジネスロジックを実装します。
type PostUsecase struct {
	posts PostRepository
	users UserReader
	clock userentity.ClockHolder
}

// NewPostUsecase はPostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository, users UserReader, clock userentity.ClockHolder) *PostUsecase {
	return &PostUsecase{
		posts: posts,
		users: users,
		clock: clock,
	}
}

// Create は新規投稿を作成します。投稿者はACTIVE状態のユーザーとして解決できる
// 必要があり、解決できない場合はユーザー参照のエラーをそのまま返します。
func (u *PostUsecase) Create(ctx context.Context, in entity.PostCreate) (entity.Post, error) {
	writer, err := u.users.GetByID(ctx, in.WriterID)
	if err != nil {
		return entity.Post{}, err
	}
	return u.posts.Save(ctx, entity.FromCreate(in, writer, u.clock))
}

// GetByID は投稿をIDで取得します。
func (u *PostUsecase) GetByID(ctx context.Context, id uint) (entity.Post, error) {
	return u.posts.FindByID(ctx, id)
}

// Update は投稿の本文を更新し、編集時刻を現在時刻に設定します。
func (u *PostUsecase) Update(ctx context.Context, id uint, in entity.PostUpdate) (entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return entity.Post{}, err
	}
	return u.posts.Save(ctx, post.Update(in, u.clock))
}
