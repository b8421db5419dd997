package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/models"
	sq "github.com/Masterminds/squirrel"
)

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	query, args, err := psql.Insert("sessions").
		Columns("session_id", "user_id", "expires_at").
		Values(session.SessionID, session.UserID, session.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		if cErr := constraintError(err, ErrInvalidReference); cErr != nil {
			return cErr
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	query, args, err := psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s         models.Session
		revokedAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.SessionID, &s.UserID, &s.ExpiresAt, &revokedAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.GetSession").Msg("error scanning session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if revokedAt.Valid {
		s.RevokedAt = &revokedAt.Time
	}

	return s, nil
}

// RevokeSession marks the session revoked. Revoking twice keeps the first
// revocation time.
func (r *sessionRepository) RevokeSession(ctx context.Context, sessionID string, at time.Time) error {
	query, args, err := psql.Update("sessions").
		Set("revoked_at", sq.Expr("COALESCE(revoked_at, ?)", at)).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error revoking session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}

	return nil
}
