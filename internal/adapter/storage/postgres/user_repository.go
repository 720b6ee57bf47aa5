package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-edustream-app/internal/core/domain/accounts"
)

// uniqueViolation is the postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// setColumns whitelists the columns a VideoSet may address. Column names are
// interpolated into SQL, so they must never come from request input.
var setColumns = map[accounts.VideoSet]string{
	accounts.SetLiked:    "liked_videos",
	accounts.SetDisliked: "disliked_videos",
}

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, user accounts.User) error {
	query := `
		INSERT INTO users (id, name, email, education_institution, password_hash)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.EducationInstitution, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return accounts.ErrEmailTaken
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (accounts.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (accounts.User, error) {
	return r.findOne(ctx, "id", id)
}

func (r *UserRepository) findOne(ctx context.Context, column, value string) (accounts.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, education_institution, password_hash,
		       liked_videos, disliked_videos, created_at
		FROM users WHERE %s = $1
	`, column)

	var user accounts.User
	err := r.db.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.EducationInstitution,
		&user.PasswordHash,
		&user.LikedVideos,
		&user.DislikedVideos,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accounts.User{}, accounts.ErrNotFound
		}
		return accounts.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// AddVideo performs an atomic add-if-absent on the named set. The membership
// guard lives in the WHERE clause, so concurrent adds of the same video can
// never produce a duplicate entry.
func (r *UserRepository) AddVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error {
	column, ok := setColumns[set]
	if !ok {
		return fmt.Errorf("unknown video set %q", set)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s = array_append(%s, $2), updated_at = NOW()
		WHERE id = $1 AND NOT ($2 = ANY(%s))
	`, column, column, column)

	cmdTag, err := r.db.Exec(ctx, query, userID, videoID)
	if err != nil {
		return fmt.Errorf("failed to add video to %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the user is gone or the video is already a member.
		return r.ensureExists(ctx, userID)
	}
	return nil
}

// RemoveVideo removes all occurrences of videoID from the named set. A zero
// row count means the user row itself is missing, since the update matches
// the row whether or not the video is present.
func (r *UserRepository) RemoveVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) error {
	column, ok := setColumns[set]
	if !ok {
		return fmt.Errorf("unknown video set %q", set)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s = array_remove(%s, $2), updated_at = NOW()
		WHERE id = $1
	`, column, column)

	cmdTag, err := r.db.Exec(ctx, query, userID, videoID)
	if err != nil {
		return fmt.Errorf("failed to remove video from %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return accounts.ErrNotFound
	}
	return nil
}

func (r *UserRepository) HasVideo(ctx context.Context, userID string, set accounts.VideoSet, videoID string) (bool, error) {
	column, ok := setColumns[set]
	if !ok {
		return false, fmt.Errorf("unknown video set %q", set)
	}

	query := fmt.Sprintf(`SELECT $2 = ANY(%s) FROM users WHERE id = $1`, column)

	var member bool
	err := r.db.QueryRow(ctx, query, userID, videoID).Scan(&member)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, accounts.ErrNotFound
		}
		return false, fmt.Errorf("failed to check membership in %s: %w", column, err)
	}
	return member, nil
}

func (r *UserRepository) ensureExists(ctx context.Context, userID string) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return accounts.ErrNotFound
	}
	return nil
}
