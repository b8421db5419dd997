package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/internal/validators"
	"github.com/MKhiriev/doc-vault/models"
)

const defaultContentType = "application/octet-stream"

type vaultService struct {
	categories store.CategoryRepository
	documents  store.DocumentRepository
	objects    store.ObjectStorage

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewVaultService(categories store.CategoryRepository, documents store.DocumentRepository, objects store.ObjectStorage, logger *logger.Logger) VaultService {
	return &vaultService{
		categories: categories,
		documents:  documents,
		objects:    objects,
		validator:  validators.NewDocVaultValidator(),
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *vaultService) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	return s.categories.ListCategories(ctx, userID)
}

func (s *vaultService) CreateCategory(ctx context.Context, userID, name string) (models.Category, error) {
	category := models.Category{UserID: userID, Name: strings.TrimSpace(name)}
	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, err
	}

	category.CategoryID = s.ids.Generate()
	return s.categories.CreateCategory(ctx, category)
}

// DeleteCategory removes the category with its documents, then their
// files. File removal failures are logged; the rows are already gone.
func (s *vaultService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	keys, err := s.categories.DeleteCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if key == "" {
			continue
		}
		if err = s.objects.DeleteObject(ctx, key); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "*vaultService.DeleteCategory").
				Str("key", key).
				Msg("orphaned document file")
		}
	}

	return nil
}

func (s *vaultService) ListDocuments(ctx context.Context, userID, categoryID string) ([]models.Document, error) {
	return s.documents.ListDocuments(ctx, userID, categoryID)
}

// SearchDocuments matches titles case-insensitively across all categories
// of the user. An empty term lists nothing.
func (s *vaultService) SearchDocuments(ctx context.Context, userID, term string) ([]models.Document, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Document{}, nil
	}
	return s.documents.SearchDocuments(ctx, userID, term)
}

// UploadDocument stores the file under "<user_id>/<unix ms>_<file name>"
// and records it. The title defaults to the file name. When the row cannot
// be written the stored file is removed again.
func (s *vaultService) UploadDocument(ctx context.Context, upload models.DocumentUpload, title string, body io.Reader) (models.Document, error) {
	log := logger.FromContext(ctx)

	upload.FileName = filepath.Base(strings.TrimSpace(upload.FileName))
	if upload.FileName == "." || upload.FileName == string(filepath.Separator) {
		upload.FileName = ""
	}
	if err := s.validator.Validate(ctx, upload); err != nil {
		return models.Document{}, err
	}

	if _, err := s.categories.GetCategory(ctx, upload.UserID, upload.CategoryID); err != nil {
		return models.Document{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = upload.FileName
	}
	doc := models.Document{
		DocumentID:  s.ids.Generate(),
		UserID:      upload.UserID,
		CategoryID:  upload.CategoryID,
		Title:       title,
		ObjectKey:   documentKey(upload.UserID, upload.FileName, s.now()),
		Size:        upload.Size,
		ContentType: detectContentType(upload.FileName, upload.ContentType),
	}
	if err := s.validator.Validate(ctx, doc, validators.FieldTitle); err != nil {
		return models.Document{}, err
	}
	doc.FileURL = s.objects.PublicURL(doc.ObjectKey)

	if err := s.objects.PutObject(ctx, doc.ObjectKey, doc.ContentType, doc.Size, body); err != nil {
		log.Err(err).Str("func", "*vaultService.UploadDocument").Msg("file upload failed")
		return models.Document{}, err
	}

	created, err := s.documents.CreateDocument(ctx, doc)
	if err != nil {
		if delErr := s.objects.DeleteObject(ctx, doc.ObjectKey); delErr != nil {
			log.Warn().Err(delErr).Str("func", "*vaultService.UploadDocument").Str("key", doc.ObjectKey).Msg("orphaned document file")
		}
		return models.Document{}, err
	}

	return created, nil
}

func (s *vaultService) RenameDocument(ctx context.Context, userID, documentID, title string) (models.Document, error) {
	title = strings.TrimSpace(title)
	if err := s.validator.Validate(ctx, models.Document{Title: title}, validators.FieldTitle); err != nil {
		return models.Document{}, err
	}

	return s.documents.RenameDocument(ctx, userID, documentID, title)
}

// DeleteDocument removes the stored file first, then the row, so a failed
// file removal leaves the document visible and retryable.
func (s *vaultService) DeleteDocument(ctx context.Context, userID, documentID string) error {
	doc, err := s.documents.GetDocument(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if doc.ObjectKey != "" {
		if err = s.objects.DeleteObject(ctx, doc.ObjectKey); err != nil {
			return err
		}
	}

	return s.documents.DeleteDocument(ctx, userID, documentID)
}

// DocumentURL returns a presigned download URL of the document file.
func (s *vaultService) DocumentURL(ctx context.Context, userID, documentID string) (string, error) {
	doc, err := s.documents.GetDocument(ctx, userID, documentID)
	if err != nil {
		return "", err
	}
	if doc.ObjectKey == "" {
		return "", fmt.Errorf("document %s has no file: %w", documentID, store.ErrNotFound)
	}

	return s.objects.PresignGet(ctx, doc.ObjectKey)
}

func documentKey(userID, fileName string, at time.Time) string {
	return userID + "/" + strconv.FormatInt(at.UnixMilli(), 10) + "_" + sanitizeFileName(fileName)
}

// sanitizeFileName keeps object keys to one path segment of printable
// characters.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, name)
}

// detectContentType prefers the type derived from the extension over the
// declared one; multipart parts often arrive as application/octet-stream.
func detectContentType(fileName, declared string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); ct != "" {
		return ct
	}
	if declared != "" {
		return declared
	}
	return defaultContentType
}
