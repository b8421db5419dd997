package config

import (
	"fmt"
	"time"
)

// Biometric prompt kinds accepted by [Gate.Biometric].
const (
	BiometricFprintd = "fprintd"
	BiometricNone    = "none"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// GRPCAddress is the optional gRPC health endpoint.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// PingTimeout bounds a single connectivity check.
	PingTimeout time.Duration
}

// ClientStorage holds the local secret store location.
type ClientStorage struct {
	Path    string
	KeyPath string
}

// ClientGate holds the unlock gate policy.
type ClientGate struct {
	MaxPinAttempts    int
	StrictSecretReads bool
	Biometric         string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	ConnectivityInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Gate    ClientGate
	Workers ClientWorkers
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	keyPath := cfg.Storage.Local.KeyPath
	if keyPath == "" && cfg.Storage.Local.Path != "" {
		keyPath = cfg.Storage.Local.Path + ".key"
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PingTimeout:    cfg.Adapter.PingTimeout,
		},
		Storage: ClientStorage{
			Path:    cfg.Storage.Local.Path,
			KeyPath: keyPath,
		},
		Gate: ClientGate{
			MaxPinAttempts:    cfg.Gate.MaxPinAttempts,
			StrictSecretReads: cfg.Gate.StrictSecretReads,
			Biometric:         cfg.Gate.Biometric,
		},
		Workers: ClientWorkers{ConnectivityInterval: cfg.Workers.ConnectivityInterval},
		LogFile: cfg.Log.ClientFile,
	}
}
