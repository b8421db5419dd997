package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		PasswordCost  int      `json:"password_cost"`
		Version       string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`

		Files struct {
			Endpoint        string   `json:"endpoint"`
			Region          string   `json:"region"`
			Bucket          string   `json:"bucket"`
			AccessKeyID     string   `json:"access_key_id"`
			SecretAccessKey string   `json:"secret_access_key"`
			PublicBaseURL   string   `json:"public_base_url"`
			PresignTTL      Duration `json:"presign_ttl"`
		} `json:"files"`

		Local struct {
			Path    string `json:"path"`
			KeyPath string `json:"key_path"`
		} `json:"local"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthRateLimit  int      `json:"auth_rate_limit"`
		AuthRateWindow Duration `json:"auth_rate_window"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PingTimeout    Duration `json:"ping_timeout"`
	} `json:"adapter"`

	Gate struct {
		MaxPinAttempts    int    `json:"max_pin_attempts"`
		StrictSecretReads bool   `json:"strict_secret_reads"`
		Biometric         string `json:"biometric"`
	} `json:"gate"`

	Workers struct {
		ConnectivityInterval Duration `json:"connectivity_interval"`
		HealthInterval       Duration `json:"health_interval"`
	} `json:"workers"`

	Log struct {
		ClientFile string `json:"client_file"`
	} `json:"log"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			PasswordCost:  j.App.PasswordCost,
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Files: Files{
				Endpoint:        j.Storage.Files.Endpoint,
				Region:          j.Storage.Files.Region,
				Bucket:          j.Storage.Files.Bucket,
				AccessKeyID:     j.Storage.Files.AccessKeyID,
				SecretAccessKey: j.Storage.Files.SecretAccessKey,
				PublicBaseURL:   j.Storage.Files.PublicBaseURL,
				PresignTTL:      time.Duration(j.Storage.Files.PresignTTL),
			},
			Local: Local{
				Path:    j.Storage.Local.Path,
				KeyPath: j.Storage.Local.KeyPath,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			AuthRateLimit:  j.Server.AuthRateLimit,
			AuthRateWindow: time.Duration(j.Server.AuthRateWindow),
			MaxUploadSize:  j.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			GRPCAddress:    j.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			PingTimeout:    time.Duration(j.Adapter.PingTimeout),
		},
		Gate: Gate{
			MaxPinAttempts:    j.Gate.MaxPinAttempts,
			StrictSecretReads: j.Gate.StrictSecretReads,
			Biometric:         j.Gate.Biometric,
		},
		Workers: Workers{
			ConnectivityInterval: time.Duration(j.Workers.ConnectivityInterval),
			HealthInterval:       time.Duration(j.Workers.HealthInterval),
		},
		Log: Log{ClientFile: j.Log.ClientFile},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
