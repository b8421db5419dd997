package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/doc-vault/internal/crypto"
	"github.com/MKhiriev/doc-vault/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

type secretStore struct {
	db     *DB
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewSecretStore returns a [SecretStore] keeping values in the secrets table,
// each sealed with cipher and bound to its key.
func NewSecretStore(db *DB, cipher crypto.Cipher, logger *logger.Logger) SecretStore {
	return &secretStore{db: db, cipher: cipher, logger: logger}
}

func (s *secretStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptySecretKey
	}

	query, args, err := sqlite.Select("value").From("secrets").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretStore.Get").Str("key", key).Msg("failed to read secret")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	plain, err := s.cipher.Open(blob, []byte(key))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretStore.Get").Str("key", key).Msg("failed to open secret")
		return "", false, fmt.Errorf("%w: %w", ErrSecretUnreadable, err)
	}

	return string(plain), true, nil
}

func (s *secretStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptySecretKey
	}

	blob, err := s.cipher.Seal([]byte(value), []byte(key))
	if err != nil {
		return fmt.Errorf("seal secret: %w", err)
	}

	query, args, err := sqlite.Insert("secrets").
		Columns("key", "value", "updated_at").
		Values(key, blob, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretStore.Set").Str("key", key).Msg("failed to write secret")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *secretStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptySecretKey
	}

	query, args, err := sqlite.Delete("secrets").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretStore.Delete").Str("key", key).Msg("failed to delete secret")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
