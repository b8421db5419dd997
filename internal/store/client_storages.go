package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/crypto"
	"github.com/MKhiriev/doc-vault/internal/logger"
)

// ClientStorages groups the client-side storage of a device.
type ClientStorages struct {
	// SecretStore holds the session token, per-user PINs, the last user and
	// UI preferences, each encrypted with the device key.
	SecretStore SecretStore

	db *DB
}

// NewClientStorages opens the local database at cfg.Path, loads (or creates)
// the device key at cfg.KeyPath and wires the secret store on top of them.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	key, err := crypto.LoadOrCreateDeviceKey(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("device key: %w", err)
	}

	cipher, err := crypto.NewDeviceCipher(key)
	if err != nil {
		return nil, fmt.Errorf("device cipher: %w", err)
	}

	db, err := NewConnectSQLite(ctx, cfg.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SecretStore: NewSecretStore(db, cipher, logger),
		db:          db,
	}, nil
}

// Close releases the local database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
