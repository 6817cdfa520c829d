package nodes

import (
	"strings"

	"uploadnodes/http/headers"
	"uploadnodes/http/uploaders/filestash"
	"uploadnodes/settings"
)

// FilestashUpload uploads every file named in the newline-separated block to
// a Filestash instance and returns the combined report. Matches the original
// node: single attempt per file, default timeout.
func FilestashUpload(filenames, filestashUrl, apiKey, shareId, uploadPath string) string {
	uploader := filestash.New(
		settings.FilestashConfig{
			Url:        filestashUrl,
			ApiKey:     apiKey,
			ShareId:    shareId,
			UploadPath: uploadPath,
		},
		settings.UploadConfig{
			TimeoutSeconds: settings.DefaultTimeoutSeconds,
			RetryCount:     1,
		},
	)
	return uploader.UploadBatch(filenames)
}

func runFilestash(config *settings.Config, paths []string) (string, error) {
	uploader := filestash.New(config.Filestash, config.Upload)
	uploader.Headers = headers.Parse(config.Filestash.Headers)
	return uploader.UploadBatch(strings.Join(paths, "\n")), nil
}
