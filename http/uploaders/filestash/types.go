package filestash

import (
	"time"

	"uploadnodes/http/request"
	"uploadnodes/settings"
)

// Uploader pushes batches of local files to one Filestash instance.
type Uploader struct {
	Config   settings.FilestashConfig
	Defaults settings.UploadConfig
	Headers  map[string]string
	FailLog  string

	// Test hooks passed straight through to the upload layer.
	Client request.Doer
	Sleep  func(d time.Duration)
}
