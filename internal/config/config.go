// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// DocVault server and client. It is populated by merging defaults,
// environment variables (optionally loaded from a .env file), command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the server database, the object store
	// and the client's local secret store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and rate limits of the server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Gate holds the unlock gate policy of the client.
	Gate Gate `envPrefix:"GATE_"`

	// Workers holds configuration for client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging destinations.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token lifecycle and versioning settings.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordCost is the bcrypt cost used to hash account passwords.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server's relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the object store settings for documents and signatures.
	Files Files `envPrefix:"FILES_"`

	// Local holds the client's local secret store settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds S3-compatible object store settings.
type Files struct {
	// Endpoint is the base endpoint of the S3-compatible service
	// (e.g. "http://localhost:9000" for MinIO). Empty means AWS.
	// Env: STORAGE_FILES_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Region is the bucket region.
	// Env: STORAGE_FILES_REGION
	Region string `env:"REGION"`

	// Bucket is the bucket documents and signatures are stored in.
	// Env: STORAGE_FILES_BUCKET
	Bucket string `env:"BUCKET"`

	// AccessKeyID and SecretAccessKey are static credentials. When empty the
	// default AWS credential chain is used.
	// Env: STORAGE_FILES_ACCESS_KEY_ID, STORAGE_FILES_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// PublicBaseURL is prepended to object keys to build the public file URL
	// stored with each document.
	// Env: STORAGE_FILES_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// PresignTTL is the lifetime of presigned download URLs.
	// Env: STORAGE_FILES_PRESIGN_TTL
	PresignTTL time.Duration `env:"PRESIGN_TTL"`
}

// Local holds the client's secret store location.
type Local struct {
	// Path is the SQLite database file of the secret store.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`

	// KeyPath is the device key file the store encryption key is derived
	// from. Defaults to Path + ".key".
	// Env: STORAGE_LOCAL_KEY_PATH
	KeyPath string `env:"KEY_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthRateLimit is the number of auth requests a client address may make
	// per AuthRateWindow.
	// Env: SERVER_AUTH_RATE_LIMIT, SERVER_AUTH_RATE_WINDOW
	AuthRateLimit  int           `env:"AUTH_RATE_LIMIT"`
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW"`

	// MaxUploadSize caps multipart uploads, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds the client's connection settings to the server.
type Adapter struct {
	// HTTPAddress is the server base URL (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the server's gRPC health endpoint. When set, the
	// connectivity probe uses it instead of the HTTP ping.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the default timeout of outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PingTimeout bounds a single connectivity check.
	// Env: ADAPTER_PING_TIMEOUT
	PingTimeout time.Duration `env:"PING_TIMEOUT"`
}

// Gate holds the unlock gate policy.
type Gate struct {
	// MaxPinAttempts signs the user out after that many wrong PINs in a row.
	// Zero means unlimited.
	// Env: GATE_MAX_PIN_ATTEMPTS
	MaxPinAttempts int `env:"MAX_PIN_ATTEMPTS"`

	// StrictSecretReads sends the user back to login when the PIN cannot be
	// read, instead of offering to create a new one.
	// Env: GATE_STRICT_SECRET_READS
	StrictSecretReads bool `env:"STRICT_SECRET_READS"`

	// Biometric selects the biometric prompt: "fprintd" or "none".
	// Env: GATE_BIOMETRIC
	Biometric string `env:"BIOMETRIC"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ConnectivityInterval is how often the client re-checks reachability
	// of the server while the vault is open.
	// Env: WORKERS_CONNECTIVITY_INTERVAL
	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`

	// HealthInterval is how often the server probes its database and object
	// store to update the gRPC health status.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Log holds logging destinations.
type Log struct {
	// ClientFile is the file the client logs to.
	// Env: LOG_CLIENT_FILE
	ClientFile string `env:"CLIENT_FILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Later sources override non-zero fields of earlier ones:
//  1. Defaults
//  2. Environment variables (after loading .env when present)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
