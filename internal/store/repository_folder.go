package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/models"
	sq "github.com/Masterminds/squirrel"
)

type folderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFolderRepository constructs a [FolderRepository] backed by db.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	return &folderRepository{db: db, logger: logger}
}

// ListFolders returns the user's registre folders, newest first.
func (r *folderRepository) ListFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	query, args, err := psql.Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*folderRepository.ListFolders").Msg("failed to list folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0, 12)
	for rows.Next() {
		var f models.Folder
		if err = rows.Scan(&f.FolderID, &f.UserID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		folders = append(folders, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (r *folderRepository) GetFolder(ctx context.Context, userID, folderID string) (models.Folder, error) {
	query, args, err := psql.Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"user_id": userID, "folder_id": folderID}).
		ToSql()
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var f models.Folder
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&f.FolderID, &f.UserID, &f.Name, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrNotFound
	}
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return f, nil
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	query, args, err := psql.Insert("folders").
		Columns("folder_id", "user_id", "name").
		Values(folder.FolderID, folder.UserID, folder.Name).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&folder.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*folderRepository.CreateFolder").Msg("failed to insert folder")
		if cErr := constraintError(err, ErrDuplicateName); cErr != nil {
			return models.Folder{}, cErr
		}
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return folder, nil
}
