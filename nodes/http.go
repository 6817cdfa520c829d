package nodes

import (
	"fmt"
	"strings"

	"uploadnodes/http/headers"
	"uploadnodes/settings"
	"uploadnodes/upload"

	"github.com/schollz/progressbar/v3"
)

// HTTPUpload sends a single file as one multipart attempt under the fixed
// "file" field and returns the status code and response text. No retries;
// timeouts and connection failures keep their own status codes.
func HTTPUpload(filePath, url, method, headerBlock string, timeoutSeconds int) (int, string) {
	result := upload.Upload(upload.Request{
		LocalPath: filePath,
		Endpoint: &upload.Endpoint{
			Url:       url,
			Method:    method,
			FieldName: settings.DefaultFieldName,
		},
		Headers:        headers.Parse(headerBlock),
		TimeoutSeconds: timeoutSeconds,
		MaxAttempts:    1,
	})
	return result.StatusCode, result.Body
}

func runHTTP(config *settings.Config, paths []string) (string, error) {
	var bar *progressbar.ProgressBar
	if len(paths) > 1 {
		bar = progressbar.Default(int64(len(paths)), "uploading")
	}

	var results []string
	for _, path := range paths {
		status, text := HTTPUpload(path, config.Endpoint.Url, config.Endpoint.Method,
			config.Endpoint.Headers, config.Upload.TimeoutSeconds)
		results = append(results, fmt.Sprintf("%s: HTTP %d: %s", path, status, text))
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return strings.Join(results, "\n"), nil
}
