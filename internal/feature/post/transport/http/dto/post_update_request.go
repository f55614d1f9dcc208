package dto

// PostUpdateReq represents the request body for the PUT /api/posts/:id endpoint.
// Only the content of a post can be edited.
type PostUpdateReq struct {
	Content string `json:"content" binding:"required"`
}
