package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Defaults matching the original node widget ranges.
const (
	DefaultTimeoutSeconds    = 30
	DefaultRetryCount        = 3
	DefaultRetryDelaySeconds = 1
	DefaultFieldName         = "file"
	DefaultMethod            = "POST"
	DefaultFilestashUrl      = "http://localhost:8334"
	DefaultUploadPath        = "/uploads/"
)

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(c)
}

// LoadConfig loads the configuration from the given TOML file.
// It returns a pointer to the Config struct or an error if loading fails.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	// Get absolute path for better error messages
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		absPath = configPath // fallback to relative path
	}

	_, err = toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", absPath, err)
	}

	config.applyDefaults()

	// Validate the configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// applyDefaults fills zero-valued fields with the node defaults.
func (c *Config) applyDefaults() {
	if c.Upload.TimeoutSeconds == 0 {
		c.Upload.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Upload.RetryCount == 0 {
		c.Upload.RetryCount = DefaultRetryCount
	}
	if c.Upload.RetryDelaySeconds == 0 {
		c.Upload.RetryDelaySeconds = DefaultRetryDelaySeconds
	}
	if c.Filestash.Url == "" {
		c.Filestash.Url = DefaultFilestashUrl
	}
	if c.Filestash.UploadPath == "" {
		c.Filestash.UploadPath = DefaultUploadPath
	}
	if c.Endpoint.Method == "" {
		c.Endpoint.Method = DefaultMethod
	}
	if c.Endpoint.FieldName == "" {
		c.Endpoint.FieldName = DefaultFieldName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
