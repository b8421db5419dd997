package config

import "time"

const (
	defaultTokenDuration        = 30 * 24 * time.Hour
	defaultTokenIssuer          = "docvault"
	defaultPasswordCost         = 12
	defaultRequestTimeout       = 10 * time.Second
	defaultPingTimeout          = 2 * time.Second
	defaultAuthRateLimit        = 10
	defaultAuthRateWindow       = time.Minute
	defaultMaxUploadSize        = 50 << 20
	defaultPresignTTL           = 15 * time.Minute
	defaultRegion               = "us-east-1"
	defaultBucket               = "fichiers_documents"
	defaultLocalStorePath       = "docvault.db"
	defaultBiometric            = "fprintd"
	defaultConnectivityInterval = 15 * time.Second
	defaultHealthInterval       = 30 * time.Second
	defaultServerURL            = "http://localhost:8080"
	defaultServerAddress        = "localhost:8080"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			PasswordCost:  defaultPasswordCost,
		},
		Storage: Storage{
			Files: Files{
				Region:     defaultRegion,
				Bucket:     defaultBucket,
				PresignTTL: defaultPresignTTL,
			},
			Local: Local{Path: defaultLocalStorePath},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
			AuthRateLimit:  defaultAuthRateLimit,
			AuthRateWindow: defaultAuthRateWindow,
			MaxUploadSize:  defaultMaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultServerURL,
			RequestTimeout: defaultRequestTimeout,
			PingTimeout:    defaultPingTimeout,
		},
		Gate:    Gate{Biometric: defaultBiometric},
		Workers: Workers{ConnectivityInterval: defaultConnectivityInterval, HealthInterval: defaultHealthInterval},
	}
}
