package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"community_backend/internal/feature/post/domain/entity"
	"community_backend/internal/feature/post/usecase"
	useradapters "community_backend/internal/feature/user/adapters"
	userentity "community_backend/internal/feature/user/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with the users and posts
// tables so the writer foreign key can be exercised.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&useradapters.UserModel{}, &PostModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedWriter persists an ACTIVE user and returns the stored entity.
func seedWriter(t *testing.T, db *gorm.DB) userentity.User {
	t.Helper()

	repo := useradapters.NewUserMySQL(db)
	saved, err := repo.Save(context.Background(), userentity.User{
		Email:             "kok202@naver.com",
		Nickname:          "kok202",
		Address:           "Seoul",
		Status:            userentity.UserStatusActive,
		CertificationCode: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	})
	require.NoError(t, err, "failed to seed writer")
	return saved
}

func TestNewPostMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewPostMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestPostMySQL_Save(t *testing.T) {
	t.Run("insert assigns an identifier", func(t *testing.T) {
		db := setupTestDB(t)
		writer := seedWriter(t, db)
		repo := NewPostMySQL(db)

		saved, err := repo.Save(context.Background(), entity.Post{
			Content:   "helloworld",
			CreatedAt: 100,
			Writer:    writer,
		})

		require.NoError(t, err, "failed to save post")
		assert.NotZero(t, saved.ID, "ID is not set")
		assert.Equal(t, "helloworld", saved.Content)
		assert.Equal(t, writer.ID, saved.Writer.ID)
	})

	t.Run("update keeps the identifier and overwrites the content", func(t *testing.T) {
		db := setupTestDB(t)
		writer := seedWriter(t, db)
		repo := NewPostMySQL(db)

		saved, err := repo.Save(context.Background(), entity.Post{
			Content:   "helloworld",
			CreatedAt: 100,
			Writer:    writer,
		})
		require.NoError(t, err)

		millis := int64(1678530673958)
		saved.Content = "foobar"
		saved.ModifiedAt = &millis
		updated, err := repo.Save(context.Background(), saved)
		require.NoError(t, err, "failed to update post")
		assert.Equal(t, saved.ID, updated.ID)

		found, err := repo.FindByID(context.Background(), saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "foobar", found.Content)
		assert.Equal(t, int64(100), found.CreatedAt)
		require.NotNil(t, found.ModifiedAt)
		assert.Equal(t, millis, *found.ModifiedAt)
	})
}

func TestPostMySQL_FindByID(t *testing.T) {
	t.Run("loads the post together with its writer", func(t *testing.T) {
		db := setupTestDB(t)
		writer := seedWriter(t, db)
		repo := NewPostMySQL(db)

		saved, err := repo.Save(context.Background(), entity.Post{
			Content:   "helloworld",
			CreatedAt: 100,
			Writer:    writer,
		})
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), saved.ID)

		require.NoError(t, err)
		assert.Equal(t, saved.ID, found.ID)
		assert.Equal(t, "kok202@naver.com", found.Writer.Email)
		assert.Equal(t, userentity.UserStatusActive, found.Writer.Status)
		assert.Nil(t, found.ModifiedAt)
	})

	t.Run("post not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPostMySQL(db)

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrPostNotFound)
	})
}
