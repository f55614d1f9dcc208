// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"community_backend/internal/feature/user/domain/entity"
	"community_backend/internal/feature/user/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Save persists the user and invalidates its cache entries.
func (c *CachingUserRepository) Save(ctx context.Context, u entity.User) (entity.User, error) {
	// First save to the underlying repository (MySQL)
	saved, err := c.inner.Save(ctx, u)
	if err != nil {
		return entity.User{}, err
	}
	// Exit early if Redis is not configured
	if c.rdb == nil {
		return saved, nil
	}

	// Invalidate both lookup keys (best effort: don't fail if cache deletion fails)
	_ = c.rdb.Del(ctx, c.idKey(saved.ID), c.emailKey(saved.Email)).Err()
	return saved, nil
}

// FindByID retrieves a user, checking cache first then falling back to the database.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (entity.User, error) {
	return c.findThrough(ctx, c.idKey(id), func() (entity.User, error) {
		return c.inner.FindByID(ctx, id)
	})
}

// FindByEmail retrieves a user, checking cache first then falling back to the database.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	return c.findThrough(ctx, c.emailKey(email), func() (entity.User, error) {
		return c.inner.FindByEmail(ctx, email)
	})
}

// findThrough implements the read-through flow shared by both lookups.
func (c *CachingUserRepository) findThrough(ctx context.Context, key string, load func() (entity.User, error)) (entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return entity.User{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingUserRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

func (c *CachingUserRepository) emailKey(email string) string {
	return fmt.Sprintf("%s:email:%s", c.namespace, safe(email))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
