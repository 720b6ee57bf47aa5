package ports

import (
	"context"

	"go-edustream-app/internal/core/domain/accounts"
)

// UserRepository defines storage for users and their video id sets.
type UserRepository interface {
	// Save persists a new user. A duplicate email yields accounts.ErrEmailTaken,
	// whether detected by a caller's pre-check or by the unique constraint.
	Save(ctx context.Context, user accounts.User) error

	// FindByEmail retrieves a user by email. Absent users yield accounts.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (accounts.User, error)

	// FindByID retrieves a user by id. Absent users yield accounts.ErrNotFound.
	FindByID(ctx context.Context, id string) (accounts.User, error)

	// AddVideo adds videoID to the named set if absent. Adding an existing
	// member is a no-op; the mutation is atomic at the store level.
	AddVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error

	// RemoveVideo removes videoID from the named set. Removing a non-member
	// is a no-op.
	RemoveVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error

	// HasVideo reports whether videoID is a member of the named set.
	HasVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) (bool, error)
}

// FolderRepository defines storage for user folders.
type FolderRepository interface {
	Save(ctx context.Context, folder accounts.Folder) error
	FindByOwner(ctx context.Context, ownerID string) ([]accounts.Folder, error)
}
