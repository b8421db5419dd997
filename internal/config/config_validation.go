// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validateServer checks the fields the server binary needs.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.Bucket == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.AuthRateLimit < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.GRPCAddress != "" && cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PingTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Gate.MaxPinAttempts < 0 {
		return ErrInvalidGateConfigs
	}

	switch cfg.Gate.Biometric {
	case BiometricFprintd, BiometricNone:
	default:
		return ErrInvalidGateConfigs
	}

	if cfg.Workers.ConnectivityInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
