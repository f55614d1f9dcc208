package usecase

import (
	"context"
	"errors"
	"testing"

	"community_backend/internal/feature/post/domain/entity"
	userentity "community_backend/internal/feature/user/domain/entity"
	userusecase "community_backend/internal/feature/user/usecase"
)

// fakePostRepository is an in-memory PostRepository.
type fakePostRepository struct {
	autoID uint
	data   map[uint]entity.Post
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{data: map[uint]entity.Post{}}
}

func (f *fakePostRepository) Save(ctx context.Context, p entity.Post) (entity.Post, error) {
	if p.ID == 0 {
		f.autoID++
		p.ID = f.autoID
	}
	f.data[p.ID] = p
	return p, nil
}

func (f *fakePostRepository) FindByID(ctx context.Context, id uint) (entity.Post, error) {
	p, ok := f.data[id]
	if !ok {
		return entity.Post{}, ErrPostNotFound
	}
	return p, nil
}

// mockUserReader is a mock implementation of the UserReader interface.
type mockUserReader struct {
	GetByIDFunc func(ctx context.Context, id uint) (userentity.User, error)
}

func (m *mockUserReader) GetByID(ctx context.Context, id uint) (userentity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return userentity.User{}, userusecase.ErrUserNotFound
}

type fixedClock struct{ millis int64 }

func (c fixedClock) Millis() int64 { return c.millis }

const testMillis = int64(1678530673958)

func activeWriter() userentity.User {
	return userentity.User{
		ID:       1,
		Email:    "kok202@naver.com",
		Nickname: "kok202",
		Status:   userentity.UserStatusActive,
	}
}

func TestPostUsecase_Create(t *testing.T) {
	t.Run("creates a post for an ACTIVE writer", func(t *testing.T) {
		repo := newFakePostRepository()
		users := &mockUserReader{
			GetByIDFunc: func(ctx context.Context, id uint) (userentity.User, error) {
				return activeWriter(), nil
			},
		}
		uc := NewPostUsecase(repo, users, fixedClock{millis: testMillis})

		post, err := uc.Create(context.Background(), entity.PostCreate{WriterID: 1, Content: "helloworld"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if post.ID == 0 {
			t.Error("expected an assigned ID after persistence")
		}
		if post.Content != "helloworld" {
			t.Errorf("unexpected content: %s", post.Content)
		}
		if post.CreatedAt != testMillis {
			t.Errorf("expected creation time %d, got %d", testMillis, post.CreatedAt)
		}
		if post.Writer.Email != "kok202@naver.com" {
			t.Errorf("unexpected writer: %s", post.Writer.Email)
		}
	})

	t.Run("a PENDING or absent writer cannot post", func(t *testing.T) {
		repo := newFakePostRepository()
		uc := NewPostUsecase(repo, &mockUserReader{}, fixedClock{millis: testMillis})

		_, err := uc.Create(context.Background(), entity.PostCreate{WriterID: 2, Content: "helloworld"})

		if !errors.Is(err, userusecase.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
		if len(repo.data) != 0 {
			t.Error("nothing must be persisted when the writer cannot be resolved")
		}
	})
}

func TestPostUsecase_GetByID(t *testing.T) {
	repo := newFakePostRepository()
	repo.data[1] = entity.Post{ID: 1, Content: "helloworld", CreatedAt: 100, Writer: activeWriter()}
	uc := NewPostUsecase(repo, &mockUserReader{}, fixedClock{millis: testMillis})

	t.Run("returns an existing post", func(t *testing.T) {
		post, err := uc.GetByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post.Content != "helloworld" {
			t.Errorf("unexpected content: %s", post.Content)
		}
	})

	t.Run("reports an absent post", func(t *testing.T) {
		if _, err := uc.GetByID(context.Background(), 99); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("expected ErrPostNotFound, got: %v", err)
		}
	})
}

func TestPostUsecase_Update(t *testing.T) {
	t.Run("replaces the content and stamps the edit time", func(t *testing.T) {
		repo := newFakePostRepository()
		repo.data[1] = entity.Post{ID: 1, Content: "helloworld", CreatedAt: 100, Writer: activeWriter()}
		uc := NewPostUsecase(repo, &mockUserReader{}, fixedClock{millis: testMillis})

		updated, err := uc.Update(context.Background(), 1, entity.PostUpdate{Content: "foobar"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated.Content != "foobar" {
			t.Errorf("unexpected content: %s", updated.Content)
		}
		if updated.ModifiedAt == nil || *updated.ModifiedAt != testMillis {
			t.Errorf("expected edit time %d, got %v", testMillis, updated.ModifiedAt)
		}
		if updated.CreatedAt != 100 {
			t.Error("creation time must not change on edit")
		}
		if repo.data[1].Content != "foobar" {
			t.Error("edit was not persisted")
		}
	})

	t.Run("reports an absent post", func(t *testing.T) {
		repo := newFakePostRepository()
		uc := NewPostUsecase(repo, &mockUserReader{}, fixedClock{millis: testMillis})

		if _, err := uc.Update(context.Background(), 99, entity.PostUpdate{Content: "foobar"}); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("expected ErrPostNotFound, got: %v", err)
		}
	})
}
