package adapters

import (
	"time"

	"community_backend/internal/feature/post/domain/entity"
	useradapters "community_backend/internal/feature/user/adapters"
)

// PostModel is the persistence representation of a post.
// The writer is stored as a foreign key to the users table and preloaded on
// reads so the domain entity always carries a full writer snapshot.
type PostModel struct {
	ID           uint   `gorm:"primaryKey"`
	Content      string `gorm:"size:1000;not null"`
	CreatedAtMs  int64  `gorm:"column:created_at_ms;not null"`
	ModifiedAtMs *int64 `gorm:"column:modified_at_ms"`
	WriterID     uint   `gorm:"not null;index"`
	Writer       useradapters.UserModel `gorm:"foreignKey:WriterID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName sets the table name used by GORM.
func (PostModel) TableName() string { return "posts" }

func toPostModel(p entity.Post) PostModel {
	return PostModel{
		ID:           p.ID,
		Content:      p.Content,
		CreatedAtMs:  p.CreatedAt,
		ModifiedAtMs: p.ModifiedAt,
		WriterID:     p.Writer.ID,
	}
}

func (m PostModel) toEntity() entity.Post {
	return entity.Post{
		ID:         m.ID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAtMs,
		ModifiedAt: m.ModifiedAtMs,
		Writer:     m.Writer.ToEntity(),
	}
}
