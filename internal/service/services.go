package service

import (
	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/models"
)

type Services struct {
	AuthService     AuthService
	VaultService    VaultService
	RegistreService RegistreService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		VaultService:    NewVaultService(storages.CategoryRepository, storages.DocumentRepository, storages.ObjectStorage, logger),
		RegistreService: NewRegistreService(storages.FolderRepository, storages.RegistreRepository, storages.ObjectStorage, logger),
		AppInfoService:  appInfo,
	}, nil
}
