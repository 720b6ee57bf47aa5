package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-edustream-app/internal/core/domain/accounts"
)

type FolderRepository struct {
	db *pgxpool.Pool
}

func NewFolderRepository(db *pgxpool.Pool) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Save(ctx context.Context, folder accounts.Folder) error {
	query := `
		INSERT INTO folders (id, folder_name, added_by, is_required)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, folder.ID, folder.Name, folder.OwnerID, folder.IsRequired)
	if err != nil {
		return fmt.Errorf("failed to save folder: %w", err)
	}
	return nil
}

func (r *FolderRepository) FindByOwner(ctx context.Context, ownerID string) ([]accounts.Folder, error) {
	query := `
		SELECT id, folder_name, added_by, is_required, created_at
		FROM folders
		WHERE added_by = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	defer rows.Close()

	var folders []accounts.Folder
	for rows.Next() {
		var f accounts.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.OwnerID, &f.IsRequired, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return folders, nil
}
