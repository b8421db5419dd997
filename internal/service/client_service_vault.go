package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/doc-vault/internal/adapter"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/atotto/clipboard"
)

type clientVaultService struct {
	adapter adapter.ServerAdapter

	open      fileOpener
	clipboard func(text string) error

	logger *logger.Logger
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		adapter:   serverAdapter,
		open:      func(name string) (io.ReadCloser, error) { return os.Open(name) },
		clipboard: clipboard.WriteAll,
		logger:    logger,
	}
}

func (s *clientVaultService) ListCategories(ctx context.Context) ([]models.Category, error) {
	list, err := s.adapter.ListCategories(ctx)
	return list, mapAdapterError(err)
}

func (s *clientVaultService) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	category, err := s.adapter.CreateCategory(ctx, strings.TrimSpace(name))
	return category, mapAdapterError(err)
}

func (s *clientVaultService) DeleteCategory(ctx context.Context, categoryID string) error {
	return mapAdapterError(s.adapter.DeleteCategory(ctx, categoryID))
}

func (s *clientVaultService) ListDocuments(ctx context.Context, categoryID string) ([]models.Document, error) {
	docs, err := s.adapter.ListDocuments(ctx, categoryID)
	return docs, mapAdapterError(err)
}

func (s *clientVaultService) SearchDocuments(ctx context.Context, term string) ([]models.Document, error) {
	if strings.TrimSpace(term) == "" {
		return []models.Document{}, nil
	}
	docs, err := s.adapter.SearchDocuments(ctx, strings.TrimSpace(term))
	return docs, mapAdapterError(err)
}

func (s *clientVaultService) UploadFile(ctx context.Context, categoryID, title, filePath string) (models.Document, error) {
	filePath = strings.TrimSpace(filePath)
	f, err := s.open(filePath)
	if err != nil {
		return models.Document{}, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	doc, err := s.adapter.UploadDocument(ctx, categoryID, strings.TrimSpace(title), filePath, f)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientVaultService.UploadFile").Msg("upload failed")
		return models.Document{}, mapAdapterError(err)
	}

	return doc, nil
}

func (s *clientVaultService) RenameDocument(ctx context.Context, documentID, title string) (models.Document, error) {
	doc, err := s.adapter.RenameDocument(ctx, documentID, strings.TrimSpace(title))
	return doc, mapAdapterError(err)
}

func (s *clientVaultService) DeleteDocument(ctx context.Context, documentID string) error {
	return mapAdapterError(s.adapter.DeleteDocument(ctx, documentID))
}

func (s *clientVaultService) CopyDocumentURL(ctx context.Context, documentID string) (string, error) {
	url, err := s.adapter.DocumentURL(ctx, documentID)
	if err != nil {
		return "", mapAdapterError(err)
	}

	if err = s.clipboard(url); err != nil {
		return url, fmt.Errorf("copy to clipboard: %w", err)
	}
	return url, nil
}

func (s *clientVaultService) SaveDocument(ctx context.Context, doc models.Document, dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", ErrEmptyDestination
	}

	url, err := s.adapter.DocumentURL(ctx, doc.DocumentID)
	if err != nil {
		return "", mapAdapterError(err)
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	target := filepath.Join(dir, localFileName(doc))

	f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", target, err)
	}

	err = s.adapter.Download(ctx, url, f)
	err = errors.Join(err, f.Close())
	if err != nil {
		_ = os.Remove(target)
		return "", mapAdapterError(err)
	}

	return target, nil
}

// localFileName recovers the original file name from the object key
// "<user_id>/<unix ms>_<name>", falling back to the title.
func localFileName(doc models.Document) string {
	name := path.Base(doc.ObjectKey)
	if _, rest, ok := strings.Cut(name, "_"); ok && rest != "" {
		name = rest
	}
	if name == "" || name == "." || name == "/" {
		name = doc.Title
	}
	name = filepath.Base(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = doc.DocumentID
	}
	return name
}
