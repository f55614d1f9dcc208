package dto

import "community_backend/internal/feature/user/domain/entity"

// MyProfileRes is the self view of a user: the owner sees the full profile
// including the address. The certification code stays private even here.
type MyProfileRes struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	LastLoginAt *int64 `json:"lastLoginAt"`
}

// MyProfileResFrom builds the self view from a domain entity.
func MyProfileResFrom(u entity.User) MyProfileRes {
	return MyProfileRes{
		ID:          u.ID,
		Email:       u.Email,
		Nickname:    u.Nickname,
		Address:     u.Address,
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
	}
}
