package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[filestash]
apiKey = "k"
shareId = "s"
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Upload.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("timeout = %d", config.Upload.TimeoutSeconds)
	}
	if config.Upload.RetryCount != DefaultRetryCount {
		t.Errorf("retry count = %d", config.Upload.RetryCount)
	}
	if config.Filestash.Url != DefaultFilestashUrl {
		t.Errorf("filestash url = %q", config.Filestash.Url)
	}
	if config.Filestash.UploadPath != DefaultUploadPath {
		t.Errorf("upload path = %q", config.Filestash.UploadPath)
	}
	if config.Endpoint.Method != DefaultMethod || config.Endpoint.FieldName != DefaultFieldName {
		t.Errorf("endpoint defaults = (%q, %q)", config.Endpoint.Method, config.Endpoint.FieldName)
	}
	if config.Logging.Level != "info" || config.Logging.Format != "text" {
		t.Errorf("logging defaults = (%q, %q)", config.Logging.Level, config.Logging.Format)
	}
}

func TestLoadConfigExplicitValues(t *testing.T) {
	path := writeConfig(t, `
[upload]
timeoutSeconds = 60
retryCount = 2
retryDelaySeconds = 3
failLogPath = "logs/failed.log"

[endpoint]
url = "http://upload.example.test/files"
method = "PUT"
fieldName = "document"
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Upload.TimeoutSeconds != 60 || config.Upload.RetryCount != 2 {
		t.Errorf("upload config = %+v", config.Upload)
	}
	if config.Endpoint.Method != "PUT" || config.Endpoint.FieldName != "document" {
		t.Errorf("endpoint config = %+v", config.Endpoint)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"timeout-too-large", "[upload]\ntimeoutSeconds = 9000\n"},
		{"retry-count-too-large", "[upload]\nretryCount = 10\n"},
		{"bad-method", "[endpoint]\nmethod = \"DELETE\"\n"},
		{"bad-url", "[endpoint]\nurl = \"not a url\"\n"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			path := writeConfig(t, test.content)
			if _, err := LoadConfig(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("got %v", err)
	}
}
