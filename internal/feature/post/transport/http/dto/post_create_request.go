// Package dto defines data transfer objects for the post feature's HTTP transport layer.
package dto

// PostCreateReq represents the request body for the POST /api/posts endpoint.
type PostCreateReq struct {
	WriterID uint   `json:"writerId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}
