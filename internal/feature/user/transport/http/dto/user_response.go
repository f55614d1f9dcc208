package dto

import "community_backend/internal/feature/user/domain/entity"

// UserRes is the public view of a user, used when showing someone else's
// profile. The address and the certification code are never exposed.
type UserRes struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	Status      string `json:"status"`
	LastLoginAt *int64 `json:"lastLoginAt"`
}

// UserResFrom builds the public view from a domain entity.
func UserResFrom(u entity.User) UserRes {
	return UserRes{
		ID:          u.ID,
		Email:       u.Email,
		Nickname:    u.Nickname,
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
	}
}
