package dto

import (
	"community_backend/internal/feature/post/domain/entity"
	userdto "community_backend/internal/feature/user/transport/http/dto"
)

// PostRes is the response view of a post. The writer is rendered through the
// public user view so the writer's address never leaks into post responses.
type PostRes struct {
	ID         uint            `json:"id"`
	Content    string          `json:"content"`
	CreatedAt  int64           `json:"createdAt"`
	ModifiedAt *int64          `json:"modifiedAt"`
	Writer     userdto.UserRes `json:"writer"`
}

// PostResFrom builds the response view from a domain entity.
func PostResFrom(p entity.Post) PostRes {
	return PostRes{
		ID:         p.ID,
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
		Writer:     userdto.UserResFrom(p.Writer),
	}
}
