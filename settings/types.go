package settings

import (
	"uploadnodes/logger"
)

type (
	Config struct {
		Upload    UploadConfig    `toml:"upload" validate:"required"`
		Filestash FilestashConfig `toml:"filestash"`
		Endpoint  EndpointConfig  `toml:"endpoint"`
		Logging   logger.Config   `toml:"logging" validate:"required"`
	}

	// UploadConfig carries the per-attempt defaults shared by every node.
	UploadConfig struct {
		TimeoutSeconds    int    `toml:"timeoutSeconds" validate:"gte=1,lte=300"`
		RetryCount        int    `toml:"retryCount" validate:"gte=1,lte=3"`
		RetryDelaySeconds int    `toml:"retryDelaySeconds" validate:"gte=0,lte=3"`
		FailLogPath       string `toml:"failLogPath"`
		SecretHeadersFile string `toml:"secretHeadersFile"`
	}

	FilestashConfig struct {
		Url        string `toml:"url" validate:"omitempty,url"`
		ApiKey     string `toml:"apiKey"`
		ShareId    string `toml:"shareId"`
		UploadPath string `toml:"uploadPath"`
		Headers    string `toml:"headers"`
	}

	EndpointConfig struct {
		Url       string `toml:"url" validate:"omitempty,url"`
		Method    string `toml:"method" validate:"omitempty,oneof=POST PUT"`
		FieldName string `toml:"fieldName"`
		Headers   string `toml:"headers"`
	}
)
