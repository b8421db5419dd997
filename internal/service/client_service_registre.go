package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/doc-vault/internal/adapter"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/atotto/clipboard"
)

type clientRegistreService struct {
	adapter adapter.ServerAdapter

	open      fileOpener
	clipboard func(text string) error

	logger *logger.Logger
}

func NewClientRegistreService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientRegistreService {
	return &clientRegistreService{
		adapter:   serverAdapter,
		open:      func(name string) (io.ReadCloser, error) { return os.Open(name) },
		clipboard: clipboard.WriteAll,
		logger:    logger,
	}
}

func (s *clientRegistreService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.adapter.ListFolders(ctx)
	return folders, mapAdapterError(err)
}

func (s *clientRegistreService) CreateFolder(ctx context.Context, name string) (models.Folder, error) {
	folder, err := s.adapter.CreateFolder(ctx, strings.TrimSpace(name))
	return folder, mapAdapterError(err)
}

func (s *clientRegistreService) ListRegistres(ctx context.Context, folderID, term string) ([]models.Registre, error) {
	list, err := s.adapter.ListRegistres(ctx, folderID, strings.TrimSpace(term))
	return list, mapAdapterError(err)
}

func (s *clientRegistreService) GetRegistre(ctx context.Context, registreID string) (models.Registre, error) {
	registre, err := s.adapter.GetRegistre(ctx, registreID)
	return registre, mapAdapterError(err)
}

// SaveRegistre checks the two mandatory fields locally before anything is
// uploaded.
func (s *clientRegistreService) SaveRegistre(ctx context.Context, registre models.Registre, signaturePath string) (models.Registre, error) {
	signaturePath = strings.TrimSpace(signaturePath)
	if strings.TrimSpace(registre.FullName) == "" {
		return models.Registre{}, fmt.Errorf("%w: full name is required", ErrInvalidDataProvided)
	}
	if signaturePath == "" && registre.SignatureKey == "" {
		return models.Registre{}, fmt.Errorf("%w: signature is required", ErrInvalidSignature)
	}

	if signaturePath != "" {
		key, err := s.uploadSignature(ctx, signaturePath)
		if err != nil {
			return models.Registre{}, err
		}
		registre.SignatureKey = key
	}

	var (
		saved models.Registre
		err   error
	)
	if registre.RegistreID == "" {
		saved, err = s.adapter.CreateRegistre(ctx, registre)
	} else {
		saved, err = s.adapter.UpdateRegistre(ctx, registre)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*clientRegistreService.SaveRegistre").Msg("save failed")
		return models.Registre{}, mapAdapterError(err)
	}

	return saved, nil
}

func (s *clientRegistreService) uploadSignature(ctx context.Context, signaturePath string) (string, error) {
	f, err := s.open(signaturePath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", signaturePath, err)
	}
	defer f.Close()

	key, err := s.adapter.UploadSignature(ctx, signaturePath, f)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return key, nil
}

func (s *clientRegistreService) CopySignatureURL(ctx context.Context, registreID string) (string, error) {
	url, err := s.adapter.SignatureURL(ctx, registreID)
	if err != nil {
		return "", mapAdapterError(err)
	}

	if err = s.clipboard(url); err != nil {
		return url, fmt.Errorf("copy to clipboard: %w", err)
	}
	return url, nil
}
