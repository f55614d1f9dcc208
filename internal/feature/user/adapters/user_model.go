package adapters

import (
	"time"

	"community_backend/internal/feature/user/domain/entity"
)

// UserModel is the persistence representation of a user.
// The domain entity stays free of GORM concerns; mapping happens here.
type UserModel struct {
	ID                uint   `gorm:"primaryKey"`
	Email             string `gorm:"uniqueIndex;size:255;not null"`
	Nickname          string `gorm:"size:100;not null"`
	Address           string `gorm:"size:255"`
	Status            string `gorm:"size:20;not null"`
	CertificationCode string `gorm:"size:255;not null"`
	LastLoginAt       *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName sets the table name used by GORM.
func (UserModel) TableName() string { return "users" }

func toUserModel(u entity.User) UserModel {
	return UserModel{
		ID:                u.ID,
		Email:             u.Email,
		Nickname:          u.Nickname,
		Address:           u.Address,
		Status:            string(u.Status),
		CertificationCode: u.CertificationCode,
		LastLoginAt:       u.LastLoginAt,
	}
}

// ToEntity converts the persistence model back into the domain entity.
// Exported because the post adapter maps its preloaded writer through it.
func (m UserModel) ToEntity() entity.User {
	return entity.User{
		ID:                m.ID,
		Email:             m.Email,
		Nickname:          m.Nickname,
		Address:           m.Address,
		Status:            entity.UserStatus(m.Status),
		CertificationCode: m.CertificationCode,
		LastLoginAt:       m.LastLoginAt,
	}
}
