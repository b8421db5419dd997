package service

import (
	"context"
	"io"

	"github.com/MKhiriev/doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages accounts and the sessions behind issued tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken opens a session for user and returns a token bound to it.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies tokenString and checks that its session is still
	// active.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Logout revokes the session.
	Logout(ctx context.Context, sessionID string) error
}

// VaultService manages a user's categories and documents.
type VaultService interface {
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID, name string) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	ListDocuments(ctx context.Context, userID, categoryID string) ([]models.Document, error)
	SearchDocuments(ctx context.Context, userID, term string) ([]models.Document, error)
	UploadDocument(ctx context.Context, upload models.DocumentUpload, title string, body io.Reader) (models.Document, error)
	RenameDocument(ctx context.Context, userID, documentID, title string) (models.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error
	DocumentURL(ctx context.Context, userID, documentID string) (string, error)
}

// RegistreService manages registre folders and entries.
type RegistreService interface {
	ListFolders(ctx context.Context, userID string) ([]models.Folder, error)
	CreateFolder(ctx context.Context, userID, name string) (models.Folder, error)

	ListRegistres(ctx context.Context, userID, folderID, term string) ([]models.Registre, error)
	GetRegistre(ctx context.Context, userID, registreID string) (models.Registre, error)
	CreateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error)
	UpdateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error)

	// UploadSignature stores a signature image and returns its object key.
	UploadSignature(ctx context.Context, userID, contentType string, size int64, body io.Reader) (string, error)
	SignatureURL(ctx context.Context, userID, registreID string) (string, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
