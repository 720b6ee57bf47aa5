package ports

import (
	"context"

	"go-edustream-app/internal/core/domain/accounts"
)

// AuthService defines registration, login and token verification.
type AuthService interface {
	// Register creates a user plus their default folder. Duplicate emails
	// yield accounts.ErrEmailTaken.
	Register(ctx context.Context, in accounts.RegistrationInput) error

	// Login verifies credentials and returns a bearer-prefixed signed token.
	// Unknown emails yield accounts.ErrNotFound, bad passwords
	// accounts.ErrInvalidCredentials.
	Login(ctx context.Context, in accounts.LoginInput) (token string, err error)

	// VerifyToken parses and validates a signed token, returning its claims.
	// Expired or tampered tokens yield accounts.ErrInvalidToken.
	VerifyToken(token string) (accounts.Claims, error)
}

// CollectionService defines the liked/disliked set operations and profile lookup.
type CollectionService interface {
	AddVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error
	RemoveVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error
	Contains(ctx context.Context, userID string, set accounts.VideoSet, videoID string) (bool, error)

	// GetProfile returns the public profile. Absent users yield
	// accounts.ErrNotFound; callers render the deleted-user placeholder.
	GetProfile(ctx context.Context, userID string) (accounts.Profile, error)
}

// Cache defines the profile cache operations.
// We keep it simple and tailored to our needs.
type Cache interface {
	// Set stores the serialized profile for a user id.
	Set(ctx context.Context, id string, data []byte) error

	// Get returns the cached profile data, or nil on a miss.
	Get(ctx context.Context, id string) ([]byte, error)

	// Invalidate drops the cached profile.
	Invalidate(ctx context.Context, id string) error
}
