package http

import (
	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// authLimiter throttles /api/auth/* per client address.
	authLimiter *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		cfg:         cfg,
		authLimiter: newRateLimiter(cfg.AuthRateWindow, cfg.AuthRateLimit),
		logger:      logger,
	}
}
