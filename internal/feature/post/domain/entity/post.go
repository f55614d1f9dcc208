// Package entity defines the domain models for the post feature.
package entity

import (
	userentity "community_backend/internal/feature/user/domain/entity"
)

// Post represents a short text entry authored by a user.
// Like the user entity it is a plain value: transitions return new copies.
type Post struct {
	// ID is assigned by the repository on first save.
	ID uint

	// Content is the post body.
	Content string

	// CreatedAt is the creation time in epoch milliseconds.
	CreatedAt int64

	// ModifiedAt is the last edit time in epoch milliseconds, nil until the
	// first edit.
	ModifiedAt *int64

	// Writer is the authoring user. Only ACTIVE users can write posts.
	Writer userentity.User
}

// PostCreate carries the fields of a post creation request.
type PostCreate struct {
	WriterID uint
	Content  string
}

// PostUpdate carries the single field a post edit may change.
type PostUpdate struct {
	Content string
}

// FromCreate builds a new post authored by writer, with the creation time
// taken from the injected clock.
func FromCreate(c PostCreate, writer userentity.User, clock userentity.ClockHolder) Post {
	return Post{
		Content:   c.Content,
		CreatedAt: clock.Millis(),
		Writer:    writer,
	}
}

// Update returns a copy with the content replaced and the modification time
// refreshed from the clock. ID, creation time and writer carry over unchanged.
func (p Post) Update(in PostUpdate, clock userentity.ClockHolder) Post {
	now := clock.Millis()
	p.Content = in.Content
	p.ModifiedAt = &now
	return p
}
