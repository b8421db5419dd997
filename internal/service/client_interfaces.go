package service

import (
	"context"
	"io"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the gate's remote auth service, backed by the
// server adapter and the local secret store.
type ClientAuthService interface {
	gate.AuthService

	// RestoreToken loads the stored session token into the adapter so vault
	// calls are authenticated after an offline unlock.
	RestoreToken(ctx context.Context) bool
}

// ClientVaultService is the client view of categories and documents.
type ClientVaultService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListDocuments(ctx context.Context, categoryID string) ([]models.Document, error)
	SearchDocuments(ctx context.Context, term string) ([]models.Document, error)
	// UploadFile uploads the local file at path. An empty title uses the
	// file name.
	UploadFile(ctx context.Context, categoryID, title, path string) (models.Document, error)
	RenameDocument(ctx context.Context, documentID, title string) (models.Document, error)
	DeleteDocument(ctx context.Context, documentID string) error

	// CopyDocumentURL puts a download URL of the document on the clipboard
	// and returns it.
	CopyDocumentURL(ctx context.Context, documentID string) (string, error)
	// SaveDocument downloads the document into dir and returns the written
	// path.
	SaveDocument(ctx context.Context, doc models.Document, dir string) (string, error)
}

// ClientRegistreService is the client view of registre folders and entries.
type ClientRegistreService interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, name string) (models.Folder, error)

	ListRegistres(ctx context.Context, folderID, term string) ([]models.Registre, error)
	GetRegistre(ctx context.Context, registreID string) (models.Registre, error)
	// SaveRegistre creates the entry when RegistreID is empty, updates it
	// otherwise. A non-empty signaturePath is uploaded first and replaces
	// the entry's signature.
	SaveRegistre(ctx context.Context, registre models.Registre, signaturePath string) (models.Registre, error)
	CopySignatureURL(ctx context.Context, registreID string) (string, error)
}

// ConnectivityWatcher re-checks server reachability in the background.
type ConnectivityWatcher interface {
	// Start launches the job. onChange is called from the job goroutine
	// whenever the reachability flips, and once with the first result.
	Start(ctx context.Context, onChange func(online bool))

	// Stop ends the job and waits for it.
	Stop()

	// Online is the last known reachability.
	Online() bool
}

// fileOpener abstracts os.Open for uploads.
type fileOpener func(name string) (io.ReadCloser, error)
