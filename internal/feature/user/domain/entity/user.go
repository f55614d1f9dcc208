// Package entity defines the domain entities for the user feature.
package entity

// ClockHolder supplies the current time in epoch milliseconds.
// Following Go convention: interfaces are defined by the consumer (entity/usecase), not the provider (platform).
type ClockHolder interface {
	// Millis returns the current time in epoch milliseconds.
	Millis() int64
}

// UUIDHolder supplies a freshly generated opaque unique token.
// The production implementation must be unpredictable; tests inject a fixed value.
type UUIDHolder interface {
	// Random returns a new unique token.
	Random() string
}

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusPending is the initial state of a registered user before
	// the email address has been certified.
	UserStatusPending UserStatus = "PENDING"

	// UserStatusActive is the state of a user whose email address has been
	// certified. There is no transition out of this state.
	UserStatusActive UserStatus = "ACTIVE"
)

// User represents a registered user in the system.
// It is a plain value: all state transitions return a new copy instead of
// mutating shared state, so persistence is solely the repository's concern.
type User struct {
	// ID is the unique identifier assigned by the repository on first save.
	// It stays zero until the user has been persisted.
	ID uint

	// Email is the user's email address. It is unique across all users and
	// doubles as the login key.
	Email string

	// Nickname is the user's display name.
	Nickname string

	// Address is a free-text location field. It is only visible to the
	// user themselves.
	Address string

	// Status is the lifecycle state (PENDING until certified, then ACTIVE).
	Status UserStatus

	// CertificationCode is the opaque token mailed at registration and
	// consumed at email verification. Immutable once assigned.
	CertificationCode string

	// LastLoginAt is the last login time in epoch milliseconds.
	// It is nil until the first login.
	LastLoginAt *int64
}

// UserCreate carries the fields of a registration request.
// Status and certification code are computed, never supplied.
type UserCreate struct {
	Email    string
	Nickname string
	Address  string
}

// UserUpdate carries the profile fields a user may change.
// Both fields always overwrite the stored values.
type UserUpdate struct {
	Nickname string
	Address  string
}

// FromCreate builds a new PENDING user from a registration request.
// The certification code is generated through the injected UUIDHolder;
// the ID stays zero until the repository assigns one.
func FromCreate(c UserCreate, uuidHolder UUIDHolder) User {
	return User{
		Email:             c.Email,
		Nickname:          c.Nickname,
		Address:           c.Address,
		Status:            UserStatusPending,
		CertificationCode: uuidHolder.Random(),
	}
}

// Update returns a copy with nickname and address replaced.
// ID, email, status, certification code and last-login carry over unchanged.
func (u User) Update(in UserUpdate) User {
	u.Nickname = in.Nickname
	u.Address = in.Address
	return u
}

// Login returns a copy with the last-login timestamp set to the clock's
// current reading.
func (u User) Login(clock ClockHolder) User {
	now := clock.Millis()
	u.LastLoginAt = &now
	return u
}

// Certify compares the presented code byte-for-byte against the stored
// certification code. On a match it returns an ACTIVE copy; the guard only
// looks at the code, not the current status, so re-certifying an already
// ACTIVE user with the original code stays valid. On a mismatch it returns
// the receiver unchanged together with ErrCertificationCodeMismatch.
func (u User) Certify(code string) (User, error) {
	if code != u.CertificationCode {
		return u, ErrCertificationCodeMismatch
	}
	u.Status = UserStatusActive
	return u, nil
}
