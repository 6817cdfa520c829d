package nodes

import (
	"fmt"
	"strings"

	"uploadnodes/http/headers"
	"uploadnodes/settings"
	"uploadnodes/upload"

	"github.com/schollz/progressbar/v3"
)

// MultipartHTTPUpload sends a single file as a multipart upload with bounded
// retries, a configurable field name and an optional secret headers file.
// Returns the status code and response text.
func MultipartHTTPUpload(filePath, url, method, fieldName, headerBlock, secretHeadersFile string,
	timeoutSeconds, retryCount, retryDelaySeconds int) (int, string) {

	result := upload.Upload(upload.Request{
		LocalPath: filePath,
		Endpoint: &upload.Endpoint{
			Url:       url,
			Method:    method,
			FieldName: fieldName,
		},
		Headers:           headers.Parse(headerBlock),
		SecretHeadersFile: secretHeadersFile,
		TimeoutSeconds:    timeoutSeconds,
		MaxAttempts:       retryCount,
		RetryDelaySeconds: retryDelaySeconds,
	})
	return result.StatusCode, result.Body
}

func runMultipart(config *settings.Config, paths []string) (string, error) {
	var bar *progressbar.ProgressBar
	if len(paths) > 1 {
		bar = progressbar.Default(int64(len(paths)), "uploading")
	}

	var results []string
	for _, path := range paths {
		status, text := MultipartHTTPUpload(path,
			config.Endpoint.Url,
			config.Endpoint.Method,
			config.Endpoint.FieldName,
			config.Endpoint.Headers,
			config.Upload.SecretHeadersFile,
			config.Upload.TimeoutSeconds,
			config.Upload.RetryCount,
			config.Upload.RetryDelaySeconds)
		results = append(results, fmt.Sprintf("%s: HTTP %d: %s", path, status, text))
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return strings.Join(results, "\n"), nil
}
