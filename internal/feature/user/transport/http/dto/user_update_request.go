package dto

// UserUpdateReq represents the request body for the PUT /api/me endpoint.
// Both fields overwrite the stored profile values.
type UserUpdateReq struct {
	Nickname string `json:"nickname" binding:"required"`
	Address  string `json:"address"`
}
