package service

import (
	"github.com/MKhiriev/doc-vault/internal/adapter"
	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	VaultService    ClientVaultService
	RegistreService ClientRegistreService
	Connectivity    ConnectivityWatcher
}

func NewClientServices(secrets store.SecretStore, serverAdapter adapter.ServerAdapter, probe gate.ConnectivityProbe, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, secrets, logger),
		VaultService:    NewClientVaultService(serverAdapter, logger),
		RegistreService: NewClientRegistreService(serverAdapter, logger),
		Connectivity:    NewConnectivityWatcher(probe, cfg.ConnectivityInterval, logger),
	}
}
