package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"uploadnodes/http/headers"
	"uploadnodes/http/request"
	"uploadnodes/logger"
	"uploadnodes/settings"

	"github.com/google/uuid"
)

// Attempts are capped regardless of configuration to avoid retry storms.
const maxAttemptsCap = 3

// Upload performs one file upload with bounded retries. Every failure mode
// resolves to a Result; nothing escapes as an error. Retries apply only to
// transport-level failures: any received HTTP response, 2xx or not, is
// returned immediately.
func Upload(req Request) Result {
	if strings.TrimSpace(req.LocalPath) == "" {
		return Result{StatusCode: 400, Body: "File path is required"}
	}

	httpReq, errResult := buildRequest(&req)
	if errResult != nil {
		return *errResult
	}

	if _, err := os.Stat(req.LocalPath); err != nil {
		return Result{StatusCode: 404, Body: fmt.Sprintf("File not found: %s", req.LocalPath)}
	}

	merged, err := mergeHeaders(&req)
	if err != nil {
		return Result{StatusCode: 400, Body: "Header parsing error - check configuration"}
	}
	httpReq.Headers = merged

	timeoutSeconds := req.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = settings.DefaultTimeoutSeconds
	}
	httpReq.Timeout = time.Duration(timeoutSeconds) * time.Second
	httpReq.Client = req.Client

	attempts := req.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	if attempts > maxAttemptsCap {
		attempts = maxAttemptsCap
	}

	sleep := req.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	log := logger.Upload(uuid.NewString())
	log.Debug("Starting upload", "file", req.LocalPath, "url", httpReq.Url, "attempts", attempts)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(req.RetryDelaySeconds*(attempt-1)) * time.Second
			log.Debug("Retrying upload", "attempt", attempt, "delay", delay)
			sleep(delay)
		}

		resp, err := httpReq.Send()
		if err != nil {
			lastErr = err
			log.Warn("Upload attempt failed",
				"attempt", attempt,
				"error", headers.Sanitize(err.Error()))
			continue
		}

		log.Debug("Upload response received", "attempt", attempt, "status", resp.StatusCode)
		return Result{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	status, message := classifyTransport(lastErr, timeoutSeconds, httpReq.Url)
	if attempts > 1 {
		return Result{
			StatusCode: 500,
			Body:       fmt.Sprintf("Upload failed after %d attempts - %s", attempts, message),
		}
	}
	return Result{StatusCode: status, Body: message}
}

// buildRequest validates the destination and shapes the HTTP attempt for it.
func buildRequest(req *Request) (*request.Request, *Result) {
	switch {
	case req.Filestash != nil:
		dest := req.Filestash
		if strings.TrimSpace(dest.BaseUrl) == "" {
			return nil, &Result{StatusCode: 400, Body: "URL is required"}
		}
		if dest.ApiKey == "" || dest.ShareId == "" {
			return nil, &Result{StatusCode: 400, Body: "API key and Share ID are required"}
		}

		destPath := strings.TrimSuffix(dest.RemoteDir, "/") + "/" + filepath.Base(req.LocalPath)
		return &request.Request{
			Url:      strings.TrimSuffix(dest.BaseUrl, "/") + "/api/files/cat",
			Method:   "POST",
			FileName: req.LocalPath,
			Query: map[string]string{
				"path":  destPath,
				"key":   dest.ApiKey,
				"share": dest.ShareId,
			},
		}, nil

	case req.Endpoint != nil:
		dest := req.Endpoint
		if strings.TrimSpace(dest.Url) == "" {
			return nil, &Result{StatusCode: 400, Body: "URL is required"}
		}
		if strings.TrimSpace(dest.FieldName) == "" {
			return nil, &Result{StatusCode: 400, Body: "Upload field name is required"}
		}
		method := strings.ToUpper(strings.TrimSpace(dest.Method))
		if method == "" {
			method = settings.DefaultMethod
		}
		if method != "POST" && method != "PUT" {
			return nil, &Result{StatusCode: 400, Body: "Method must be POST or PUT"}
		}

		return &request.Request{
			Url:       dest.Url,
			Method:    method,
			FileName:  req.LocalPath,
			FieldName: strings.TrimSpace(dest.FieldName),
		}, nil

	default:
		return nil, &Result{StatusCode: 400, Body: "Destination is required"}
	}
}

// mergeHeaders overlays the secret headers file, when configured, onto the
// request's base headers. Secret entries win ties.
func mergeHeaders(req *Request) (map[string]string, error) {
	merged := make(map[string]string, len(req.Headers))
	for key, value := range req.Headers {
		merged[key] = value
	}

	secretFile := strings.TrimSpace(req.SecretHeadersFile)
	if secretFile != "" {
		secret, err := headers.LoadSecretFile(secretFile)
		if err != nil {
			return nil, err
		}
		for key, value := range secret {
			merged[key] = value
		}
	}

	return merged, nil
}
