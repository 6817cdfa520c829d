package filestash

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"uploadnodes/faillog"
	"uploadnodes/logger"
	"uploadnodes/settings"
	"uploadnodes/upload"

	"github.com/hako/durafmt"
)

// New builds an Uploader for the given Filestash instance using the shared
// upload defaults. The failure log path comes from the upload config.
func New(config settings.FilestashConfig, defaults settings.UploadConfig) *Uploader {
	return &Uploader{
		Config:   config,
		Defaults: defaults,
		FailLog:  defaults.FailLogPath,
	}
}

// UploadBatch uploads every file named in the newline-separated block and
// returns a combined text report, one line per file plus a summary footer.
// A file that fails does not abort the batch. Failed paths are appended to
// the failure log when one is configured; log trouble never alters the
// report.
func (u *Uploader) UploadBatch(filenames string) string {
	if strings.TrimSpace(filenames) == "" {
		return "No filenames provided"
	}

	if u.Config.ApiKey == "" || u.Config.ShareId == "" {
		return "API key and Share ID are required"
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(filenames), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}

	started := time.Now()
	uploaded := 0
	var results []string
	var failed []string

	for _, localPath := range files {
		result := upload.Upload(upload.Request{
			LocalPath: localPath,
			Filestash: &upload.Filestash{
				BaseUrl:   u.Config.Url,
				ApiKey:    u.Config.ApiKey,
				ShareId:   u.Config.ShareId,
				RemoteDir: u.Config.UploadPath,
			},
			Headers:           u.Headers,
			TimeoutSeconds:    u.Defaults.TimeoutSeconds,
			MaxAttempts:       u.Defaults.RetryCount,
			RetryDelaySeconds: u.Defaults.RetryDelaySeconds,
			Sleep:             u.Sleep,
			Client:            u.Client,
		})

		switch result.StatusCode {
		case 200:
			destPath := strings.TrimSuffix(u.Config.UploadPath, "/") + "/" + filepath.Base(localPath)
			results = append(results, fmt.Sprintf("SUCCESS: Uploaded %s to %s", filepath.Base(localPath), destPath))
			uploaded++
		case 404:
			results = append(results, fmt.Sprintf("ERROR: File not found: %s", localPath))
			failed = append(failed, localPath)
		default:
			results = append(results, fmt.Sprintf("ERROR: Failed to upload %s - HTTP %d: %s",
				filepath.Base(localPath), result.StatusCode, result.Body))
			failed = append(failed, localPath)
		}
	}

	if u.FailLog != "" && len(failed) > 0 {
		if err := faillog.Append(u.FailLog, failed); err != nil {
			logger.Error("Failed to record failed uploads", "log", u.FailLog, "error", err)
		}
	}

	elapsed := durafmt.Parse(time.Since(started).Round(time.Second)).String()
	results = append(results, fmt.Sprintf("Uploaded %d/%d files in %s", uploaded, len(files), elapsed))

	return strings.Join(results, "\n")
}
