package request

import (
	"net/http"
	"time"
)

type (
	// Request describes one HTTP attempt carrying a local file. When
	// FieldName is set the file travels as a multipart form part; otherwise
	// the body is the raw file bytes (Filestash style).
	Request struct {
		Url       string
		Method    string
		FileName  string
		FieldName string
		Query     map[string]string
		Headers   map[string]string
		Timeout   time.Duration
		Client    Doer
	}

	// Response is the received half of an attempt: the remote answered,
	// whatever the status code was.
	Response struct {
		StatusCode int
		Body       string
	}

	// Doer abstracts the HTTP client so tests can substitute a fake.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}
)
