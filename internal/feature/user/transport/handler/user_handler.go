// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"community_backend/internal/feature/user/domain/entity"
	"community_backend/internal/feature/user/transport/http/dto"
	"community_backend/internal/feature/user/usecase"
)

// UserUsecase はユーザーライフサイクル操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler)が定義します。
type UserUsecase interface {
	// Create は新規ユーザーをPENDING状態で登録し、認証メールを送信します。
	Create(ctx context.Context, in entity.UserCreate) (entity.User, error)
	// GetByID はACTIVE状態のユーザーをIDで取得します。
	GetByID(ctx context.Context, id uint) (entity.User, error)
	// GetByEmail はACTIVE状態のユーザーをメールアドレスで取得します。
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	// Update はプロフィール（ニックネームと住所）を更新します。
	Update(ctx context.Context, id uint, in entity.UserUpdate) (entity.User, error)
	// Login は最終ログイン時刻を現在時刻に更新します。
	Login(ctx context.Context, id uint) (entity.User, error)
	// VerifyEmail は認証コードを検証し、一致した場合にユーザーをACTIVEにします。
	VerifyEmail(ctx context.Context, id uint, code string) (entity.User, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
// UserUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時は201と公開ビューを返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.Create(c.Request.Context(), entity.UserCreate{
		Email:    req.Email,
		Nickname: req.Nickname,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("user create conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		slog.Error("user create failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("user created", "id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, dto.UserResFrom(user))
}

// GetByID は公開プロフィール取得APIエンドポイントを処理します。
// PENDING状態のユーザーは存在しない扱いとなり404を返します。
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("user lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResFrom(user))
}

// VerifyEmail はメール認証APIエンドポイントを処理します。
// - コード一致時は302を返却（認証メールのリンクから遷移するため）
// - コード不一致時は403を返却
// - ユーザー未存在時は404を返却
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	code := c.Query("certificationCode")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "certificationCode is required"})
		return
	}
	if _, err := h.users.VerifyEmail(c.Request.Context(), id, code); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, entity.ErrCertificationCodeMismatch):
			slog.Warn("certification code mismatch", "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusForbidden, gin.H{"error": "certification code does not match"})
		default:
			slog.Error("email verification failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	slog.Info("email verified", "id", id)
	c.Status(http.StatusFound)
}

// Me は自分のプロフィール取得APIエンドポイントを処理します。
// 取得と同時に最終ログイン時刻を更新し、住所を含む完全なビューを返します。
func (h *UserHandler) Me(c *gin.Context) {
	email, ok := requireEmailHeader(c)
	if !ok {
		return
	}
	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.respondLookupError(c, err, email)
		return
	}
	user, err = h.users.Login(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("login timestamp refresh failed", "error", err, "id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.MyProfileResFrom(user))
}

// UpdateMe は自分のプロフィール更新APIエンドポイントを処理します。
// 更新できるのはニックネームと住所のみです。
func (h *UserHandler) UpdateMe(c *gin.Context) {
	email, ok := requireEmailHeader(c)
	if !ok {
		return
	}
	var req dto.UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.respondLookupError(c, err, email)
		return
	}
	user, err = h.users.Update(c.Request.Context(), user.ID, entity.UserUpdate{
		Nickname: req.Nickname,
		Address:  req.Address,
	})
	if err != nil {
		slog.Error("profile update failed", "error", err, "id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	slog.Info("profile updated", "id", user.ID)
	c.JSON(http.StatusOK, dto.MyProfileResFrom(user))
}

// respondLookupError はメールアドレスによる参照エラーをHTTPステータスに変換します。
func (h *UserHandler) respondLookupError(c *gin.Context, err error, email string) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	slog.Error("user lookup failed", "error", err, "email", email)
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

// requireEmailHeader はEMAILヘッダを取得します。未設定の場合は400を返します。
// 認証基盤は外部コラボレータであり、ここでは解決済みのアドレスを受け取るだけです。
func requireEmailHeader(c *gin.Context) (string, bool) {
	email := c.GetHeader("EMAIL")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "EMAIL header is required"})
		return "", false
	}
	return email, true
}
