// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

// UserCreateReq represents the request body for the POST /api/users endpoint.
// It uses Gin's binding tags for validation (required, email format).
type UserCreateReq struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required"`
	Address  string `json:"address"`
}
