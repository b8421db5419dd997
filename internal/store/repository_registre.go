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

type registreRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRegistreRepository constructs a [RegistreRepository] backed by db.
func NewRegistreRepository(db *DB, logger *logger.Logger) RegistreRepository {
	return &registreRepository{db: db, logger: logger}
}

func scanRegistre(row rowScanner) (models.Registre, error) {
	var g models.Registre
	err := row.Scan(&g.RegistreID, &g.UserID, &g.FolderID, &g.Date, &g.FullName, &g.Phone,
		&g.SerialNumber, &g.PlateNumber, &g.Origin, &g.SignerName, &g.SignatureKey,
		&g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (r *registreRepository) queryRegistres(ctx context.Context, fn string, b sq.SelectBuilder) ([]models.Registre, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to query registres")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	list := make([]models.Registre, 0, 32)
	for rows.Next() {
		g, err := scanRegistre(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		list = append(list, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}

// ListRegistres returns a folder's entries, newest first.
func (r *registreRepository) ListRegistres(ctx context.Context, userID, folderID string) ([]models.Registre, error) {
	return r.queryRegistres(ctx, "*registreRepository.ListRegistres",
		psql.Select(registreColumns...).
			From("registres").
			Where(sq.Eq{"user_id": userID, "folder_id": folderID}).
			OrderBy("created_at DESC"))
}

// SearchRegistres matches term case-insensitively against the name, phone,
// serial number, plate number and origin of a folder's entries.
func (r *registreRepository) SearchRegistres(ctx context.Context, userID, folderID, term string) ([]models.Registre, error) {
	return r.queryRegistres(ctx, "*registreRepository.SearchRegistres",
		psql.Select(registreColumns...).
			From("registres").
			Where(sq.Eq{"user_id": userID, "folder_id": folderID}).
			Where(ilikeAny(registreSearched, term)).
			OrderBy("created_at DESC"))
}

func (r *registreRepository) GetRegistre(ctx context.Context, userID, registreID string) (models.Registre, error) {
	query, args, err := psql.Select(registreColumns...).
		From("registres").
		Where(sq.Eq{"user_id": userID, "registre_id": registreID}).
		ToSql()
	if err != nil {
		return models.Registre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	g, err := scanRegistre(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Registre{}, ErrNotFound
	}
	if err != nil {
		return models.Registre{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return g, nil
}

func (r *registreRepository) CreateRegistre(ctx context.Context, g models.Registre) (models.Registre, error) {
	query, args, err := psql.Insert("registres").
		Columns("registre_id", "user_id", "folder_id", "date", "full_name", "phone",
			"serial_number", "plate_number", "origin", "signer_name", "signature_key").
		Values(g.RegistreID, g.UserID, g.FolderID, g.Date, g.FullName, g.Phone,
			g.SerialNumber, g.PlateNumber, g.Origin, g.SignerName, g.SignatureKey).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Registre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&g.CreatedAt, &g.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*registreRepository.CreateRegistre").Msg("failed to insert registre")
		if cErr := constraintError(err, ErrDuplicateName); cErr != nil {
			return models.Registre{}, cErr
		}
		return models.Registre{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return g, nil
}

// UpdateRegistre overwrites the editable fields of an entry. The folder and
// owner never change.
func (r *registreRepository) UpdateRegistre(ctx context.Context, g models.Registre) (models.Registre, error) {
	query, args, err := psql.Update("registres").
		SetMap(map[string]any{
			"date":          g.Date,
			"full_name":     g.FullName,
			"phone":         g.Phone,
			"serial_number": g.SerialNumber,
			"plate_number":  g.PlateNumber,
			"origin":        g.Origin,
			"signer_name":   g.SignerName,
			"signature_key": g.SignatureKey,
			"updated_at":    sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"user_id": g.UserID, "registre_id": g.RegistreID}).
		Suffix("RETURNING " + joinColumns(registreColumns)).
		ToSql()
	if err != nil {
		return models.Registre{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanRegistre(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Registre{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*registreRepository.UpdateRegistre").Msg("failed to update registre")
		return models.Registre{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}
