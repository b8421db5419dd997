package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/internal/validators"
	"github.com/MKhiriev/doc-vault/models"
)

const signaturesDir = "signatures"

type registreService struct {
	folders   store.FolderRepository
	registres store.RegistreRepository
	objects   store.ObjectStorage

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewRegistreService(folders store.FolderRepository, registres store.RegistreRepository, objects store.ObjectStorage, logger *logger.Logger) RegistreService {
	return &registreService{
		folders:   folders,
		registres: registres,
		objects:   objects,
		validator: validators.NewDocVaultValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *registreService) ListFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return s.folders.ListFolders(ctx, userID)
}

func (s *registreService) CreateFolder(ctx context.Context, userID, name string) (models.Folder, error) {
	folder := models.Folder{UserID: userID, Name: strings.TrimSpace(name)}
	if err := s.validator.Validate(ctx, folder); err != nil {
		return models.Folder{}, err
	}

	folder.FolderID = s.ids.Generate()
	return s.folders.CreateFolder(ctx, folder)
}

// ListRegistres lists the folder's entries, newest first. A non-blank term
// searches full name, phone, serial number, plate number and origin.
func (s *registreService) ListRegistres(ctx context.Context, userID, folderID, term string) ([]models.Registre, error) {
	if _, err := s.folders.GetFolder(ctx, userID, folderID); err != nil {
		return nil, err
	}

	if term = strings.TrimSpace(term); term != "" {
		return s.registres.SearchRegistres(ctx, userID, folderID, term)
	}
	return s.registres.ListRegistres(ctx, userID, folderID)
}

func (s *registreService) GetRegistre(ctx context.Context, userID, registreID string) (models.Registre, error) {
	return s.registres.GetRegistre(ctx, userID, registreID)
}

func (s *registreService) CreateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error) {
	registre = trimRegistre(registre)
	if err := s.validator.Validate(ctx, registre); err != nil {
		return models.Registre{}, err
	}
	if !ownsSignature(registre.UserID, registre.SignatureKey) {
		return models.Registre{}, ErrInvalidSignature
	}
	if _, err := s.folders.GetFolder(ctx, registre.UserID, registre.FolderID); err != nil {
		return models.Registre{}, err
	}

	if registre.Date == "" {
		registre.Date = s.now().Format(time.DateOnly)
	}
	registre.RegistreID = s.ids.Generate()
	return s.registres.CreateRegistre(ctx, registre)
}

// UpdateRegistre saves the editable fields. When the signature changed the
// previous image is removed after the row is saved.
func (s *registreService) UpdateRegistre(ctx context.Context, registre models.Registre) (models.Registre, error) {
	registre = trimRegistre(registre)
	err := s.validator.Validate(ctx, registre,
		validators.FieldUserID, validators.FieldRegistreID, validators.FieldFullName, validators.FieldSignatureKey)
	if err != nil {
		return models.Registre{}, err
	}
	if !ownsSignature(registre.UserID, registre.SignatureKey) {
		return models.Registre{}, ErrInvalidSignature
	}

	previous, err := s.registres.GetRegistre(ctx, registre.UserID, registre.RegistreID)
	if err != nil {
		return models.Registre{}, err
	}

	updated, err := s.registres.UpdateRegistre(ctx, registre)
	if err != nil {
		return models.Registre{}, err
	}

	if previous.SignatureKey != "" && previous.SignatureKey != updated.SignatureKey {
		if err = s.objects.DeleteObject(ctx, previous.SignatureKey); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "*registreService.UpdateRegistre").
				Str("key", previous.SignatureKey).
				Msg("orphaned signature file")
		}
	}

	return updated, nil
}

// UploadSignature stores an image under "<user_id>/signatures/<unix ms>.png".
func (s *registreService) UploadSignature(ctx context.Context, userID, contentType string, size int64, body io.Reader) (string, error) {
	if userID == "" {
		return "", validators.ErrInvalidUserID
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: content type %q", ErrInvalidSignature, contentType)
	}
	if contentType == "" {
		contentType = "image/png"
	}

	key := userID + "/" + signaturesDir + "/" + strconv.FormatInt(s.now().UnixMilli(), 10) + ".png"
	if err := s.objects.PutObject(ctx, key, contentType, size, body); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*registreService.UploadSignature").Msg("signature upload failed")
		return "", err
	}

	return key, nil
}

func (s *registreService) SignatureURL(ctx context.Context, userID, registreID string) (string, error) {
	registre, err := s.registres.GetRegistre(ctx, userID, registreID)
	if err != nil {
		return "", err
	}
	if registre.SignatureKey == "" {
		return "", fmt.Errorf("registre %s has no signature: %w", registreID, store.ErrNotFound)
	}

	return s.objects.PresignGet(ctx, registre.SignatureKey)
}

func ownsSignature(userID, key string) bool {
	prefix := userID + "/" + signaturesDir + "/"
	return strings.HasPrefix(key, prefix) && len(key) > len(prefix) && !strings.Contains(key[len(prefix):], "/")
}

func trimRegistre(r models.Registre) models.Registre {
	r.Date = strings.TrimSpace(r.Date)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.SerialNumber = strings.TrimSpace(r.SerialNumber)
	r.PlateNumber = strings.TrimSpace(r.PlateNumber)
	r.Origin = strings.TrimSpace(r.Origin)
	r.SignerName = strings.TrimSpace(r.SignerName)
	r.SignatureKey = strings.TrimSpace(r.SignatureKey)
	return r
}
