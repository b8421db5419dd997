package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
)

// Storages groups the server repositories and the object store.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	CategoryRepository CategoryRepository
	DocumentRepository DocumentRepository
	FolderRepository   FolderRepository
	RegistreRepository RegistreRepository
	ObjectStorage      ObjectStorage

	db *DB
}

// NewStorages connects to PostgreSQL and the object store and builds every
// repository on top of them.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	objects, err := NewS3ObjectStorage(ctx, cfg.Files, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("object storage error: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		FolderRepository:   NewFolderRepository(db, logger),
		RegistreRepository: NewRegistreRepository(db, logger),
		ObjectStorage:      objects,
		db:                 db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("%w: database is not connected", ErrExecutingQuery)
	}
	return s.db.PingContext(ctx)
}
