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

type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{db: db, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var d models.Document
	err := row.Scan(&d.DocumentID, &d.UserID, &d.CategoryID, &d.Title, &d.FileURL,
		&d.ObjectKey, &d.Size, &d.ContentType, &d.CreatedAt)
	return d, err
}

func (r *documentRepository) queryDocuments(ctx context.Context, fn string, b sq.SelectBuilder) ([]models.Document, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to query documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 32)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		docs = append(docs, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

// ListDocuments returns the documents of a category, newest first.
func (r *documentRepository) ListDocuments(ctx context.Context, userID, categoryID string) ([]models.Document, error) {
	return r.queryDocuments(ctx, "*documentRepository.ListDocuments",
		psql.Select(documentColumns...).
			From("documents").
			Where(sq.Eq{"user_id": userID, "category_id": categoryID}).
			OrderBy("created_at DESC"))
}

// SearchDocuments matches term case-insensitively against the titles of all
// the user's documents.
func (r *documentRepository) SearchDocuments(ctx context.Context, userID, term string) ([]models.Document, error) {
	return r.queryDocuments(ctx, "*documentRepository.SearchDocuments",
		psql.Select(documentColumns...).
			From("documents").
			Where(sq.Eq{"user_id": userID}).
			Where(sq.ILike{"title": likePattern(term)}).
			OrderBy("created_at DESC"))
}

func (r *documentRepository) GetDocument(ctx context.Context, userID, documentID string) (models.Document, error) {
	query, args, err := psql.Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"user_id": userID, "document_id": documentID}).
		ToSql()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrNotFound
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return d, nil
}

// CreateDocument inserts the document row. An unknown category yields
// [ErrInvalidReference].
func (r *documentRepository) CreateDocument(ctx context.Context, d models.Document) (models.Document, error) {
	query, args, err := psql.Insert("documents").
		Columns("document_id", "user_id", "category_id", "title", "file_url", "object_key", "size", "content_type").
		Values(d.DocumentID, d.UserID, d.CategoryID, d.Title, d.FileURL, d.ObjectKey, d.Size, d.ContentType).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&d.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentRepository.CreateDocument").Msg("failed to insert document")
		if cErr := constraintError(err, ErrDuplicateName); cErr != nil {
			return models.Document{}, cErr
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return d, nil
}

func (r *documentRepository) RenameDocument(ctx context.Context, userID, documentID, title string) (models.Document, error) {
	query, args, err := psql.Update("documents").
		Set("title", title).
		Where(sq.Eq{"user_id": userID, "document_id": documentID}).
		Suffix("RETURNING " + joinColumns(documentColumns)).
		ToSql()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentRepository.RenameDocument").Msg("failed to rename document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return d, nil
}

func (r *documentRepository) DeleteDocument(ctx context.Context, userID, documentID string) error {
	query, args, err := psql.Delete("documents").
		Where(sq.Eq{"user_id": userID, "document_id": documentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentRepository.DeleteDocument").Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}
