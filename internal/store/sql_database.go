package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/doc-vault/internal/logger"
)

// maxTxAttempts bounds how many times WithTx runs fn when the database
// reports a transient failure.
const maxTxAttempts = 3

// DB wraps a *sql.DB with the error classifier of its dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error. Transactions failing with a retryable error (serialization
// failure, deadlock, lost connection) are replayed up to maxTxAttempts times.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.WithTx").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
