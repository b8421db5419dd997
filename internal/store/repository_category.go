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

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

// ListCategories returns the user's categories ordered by name.
func (r *categoryRepository) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Str("user_id", userID).Msg("failed to list categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.CategoryID, &c.UserID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, userID, categoryID string) (models.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"user_id": userID, "category_id": categoryID}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Category
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.CategoryID, &c.UserID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// CreateCategory inserts the category. A name already used by the same user
// yields [ErrDuplicateName].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query, args, err := psql.Insert("categories").
		Columns("category_id", "user_id", "name").
		Values(category.CategoryID, category.UserID, category.Name).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&category.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("failed to insert category")
		if cErr := constraintError(err, ErrDuplicateName); cErr != nil {
			return models.Category{}, cErr
		}
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

// DeleteCategory removes the category and its documents in one transaction
// and returns the object keys of the removed documents.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) ([]string, error) {
	var keys []string

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		keys = keys[:0]

		docsQuery, docsArgs, err := psql.Delete("documents").
			Where(sq.Eq{"user_id": userID, "category_id": categoryID}).
			Suffix("RETURNING object_key").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, docsQuery, docsArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		for rows.Next() {
			var key string
			if err = rows.Scan(&key); err != nil {
				rows.Close()
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			keys = append(keys, key)
		}
		if err = rows.Close(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		catQuery, catArgs, err := psql.Delete("categories").
			Where(sq.Eq{"user_id": userID, "category_id": categoryID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, catQuery, catArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*categoryRepository.DeleteCategory").
			Str("category_id", categoryID).
			Msg("failed to delete category")
		return nil, err
	}

	return keys, nil
}
