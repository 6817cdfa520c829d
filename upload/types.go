package upload

import (
	"time"

	"uploadnodes/http/request"
)

type (
	// Filestash addresses a file-manager instance reachable through its
	// "cat" API: raw file bytes, destination path in the query string.
	Filestash struct {
		BaseUrl   string
		ApiKey    string
		ShareId   string
		RemoteDir string
	}

	// Endpoint addresses a generic HTTP endpoint taking a multipart body
	// with a single file part.
	Endpoint struct {
		Url       string
		Method    string
		FieldName string
	}

	// Request describes one upload. Exactly one of Filestash or Endpoint
	// must be set. Headers are the already-parsed base headers; entries
	// from SecretHeadersFile overlay them on key collision.
	Request struct {
		LocalPath         string
		Filestash         *Filestash
		Endpoint          *Endpoint
		Headers           map[string]string
		SecretHeadersFile string
		TimeoutSeconds    int
		MaxAttempts       int
		RetryDelaySeconds int

		// Test hooks. Nil means time.Sleep and a real HTTP client.
		Sleep  func(d time.Duration)
		Client request.Doer
	}

	// Result is what every upload resolves to. Failures never escape as
	// errors past this package; they become a status code and a message.
	Result struct {
		StatusCode int
		Body       string
	}
)
