package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts of the auth service.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository persists issued sessions so sign-out can revoke them.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	RevokeSession(ctx context.Context, sessionID string, at time.Time) error
}

// CategoryRepository persists document categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	GetCategory(ctx context.Context, userID, categoryID string) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	// DeleteCategory removes the category and its documents and returns the
	// object keys the caller must remove from the object store.
	DeleteCategory(ctx context.Context, userID, categoryID string) ([]string, error)
}

// DocumentRepository persists document rows.
type DocumentRepository interface {
	ListDocuments(ctx context.Context, userID, categoryID string) ([]models.Document, error)
	SearchDocuments(ctx context.Context, userID, term string) ([]models.Document, error)
	GetDocument(ctx context.Context, userID, documentID string) (models.Document, error)
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	RenameDocument(ctx context.Context, userID, documentID, title string) (models.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error
}

// FolderRepository persists registre folders.
type FolderRepository interface {
	ListFolders(ctx context.Context, userID string) ([]models.Folder, error)
	GetFolder(ctx context.Context, userID, folderID string) (models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
}

// RegistreRepository persists registre entries.
type RegistreRepository interface {
	ListRegistres(ctx context.Context, userID, folderID string) ([]models.Registre, error)
	SearchRegistres(ctx context.Context, userID, folderID, term string) ([]models.Registre, error)
	GetRegistre(ctx context.Context, userID, registreID string) (models.Registre, error)
	CreateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error)
	UpdateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error)
}

// ObjectStorage stores document files and signature images.
type ObjectStorage interface {
	PutObject(ctx context.Context, key, contentType string, size int64, body io.Reader) error
	DeleteObject(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string) (string, error)
	PublicURL(key string) string
}
