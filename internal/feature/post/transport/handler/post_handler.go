// Package handler はpostフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"community_backend/internal/feature/post/domain/entity"
	"community_backend/internal/feature/post/transport/http/dto"
	"community_backend/internal/feature/post/usecase"
	userusecase "community_backend/internal/feature/user/usecase"
)

// PostUsecase は投稿操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler)が定義します。
type PostUsecase interface {
	// Create は新規投稿を作成します。投稿者はACTIVE状態のユーザーである必要があります。
	Create(ctx context.Context, in entity.PostCreate) (entity.Post, error)
	// GetByID は投稿をIDで取得します。
	GetByID(ctx context.Context, id uint) (entity.Post, error)
	// Update は投稿の本文を更新し、編集時刻を記録します。
	Update(ctx context.Context, id uint, in entity.PostUpdate) (entity.Post, error)
}

// PostHandler は投稿操作のHTTPリクエストを処理します。
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler はPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create は投稿作成APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 投稿者が未認証または存在しない場合は404を返却
// - 成功時は201と投稿ビューを返却
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	post, err := h.posts.Create(c.Request.Context(), entity.PostCreate{
		WriterID: req.WriterID,
		Content:  req.Content,
	})
	if err != nil {
		if errors.Is(err, userusecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("post create failed", "error", err, "writer_id", req.WriterID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("post created", "id", post.ID, "writer_id", post.Writer.ID)
	c.JSON(http.StatusCreated, dto.PostResFrom(post))
}

// GetByID は投稿取得APIエンドポイントを処理します。
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondLookupError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, dto.PostResFrom(post))
}

// Update は投稿編集APIエンドポイントを処理します。本文のみ編集できます。
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PostUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	post, err := h.posts.Update(c.Request.Context(), id, entity.PostUpdate{Content: req.Content})
	if err != nil {
		h.respondLookupError(c, err, id)
		return
	}
	slog.Info("post updated", "id", post.ID)
	c.JSON(http.StatusOK, dto.PostResFrom(post))
}

// respondLookupError は投稿参照エラーをHTTPステータスに変換します。
func (h *PostHandler) respondLookupError(c *gin.Context, err error, id uint) {
	if errors.Is(err, usecase.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	slog.Error("post lookup failed", "error", err, "id", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseID はパスパラメータ:idをuintに変換します。不正な場合は400を返します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
