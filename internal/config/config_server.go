package config

import "fmt"

// GetServerConfig builds the merged configuration and validates the fields
// required by the server binary.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateServer()
}
