package filestash

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"uploadnodes/settings"
)

func testDefaults() settings.UploadConfig {
	return settings.UploadConfig{
		TimeoutSeconds: 5,
		RetryCount:     1,
	}
}

func TestUploadBatchEmptyInput(t *testing.T) {
	uploader := New(settings.FilestashConfig{ApiKey: "k", ShareId: "s"}, testDefaults())

	if got := uploader.UploadBatch("  \n "); got != "No filenames provided" {
		t.Fatalf("got %q", got)
	}
}

func TestUploadBatchMissingCredentials(t *testing.T) {
	uploader := New(settings.FilestashConfig{Url: "http://localhost:8334"}, testDefaults())

	if got := uploader.UploadBatch("/tmp/a.bin"); got != "API key and Share ID are required" {
		t.Fatalf("got %q", got)
	}
}

func TestUploadBatchMixedResults(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(present, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.txt")

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	logPath := filepath.Join(dir, "logs", "failed.log")
	uploader := New(settings.FilestashConfig{
		Url:        server.URL,
		ApiKey:     "k",
		ShareId:    "s",
		UploadPath: "/uploads/",
	}, testDefaults())
	uploader.FailLog = logPath

	report := uploader.UploadBatch(present + "\n" + missing + "\n")
	lines := strings.Split(report, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d report lines, wanted 3: %q", len(lines), report)
	}

	if lines[0] != "SUCCESS: Uploaded present.txt to /uploads/present.txt" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "ERROR: File not found: "+missing {
		t.Errorf("line 2 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Uploaded 1/2 files in ") {
		t.Errorf("footer = %q", lines[2])
	}

	if requests != 1 {
		t.Errorf("server saw %d requests, wanted 1", requests)
	}

	// The missing file lands in the failure log; the successful one does not.
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failure log not written: %v", err)
	}
	if !strings.Contains(string(data), missing) {
		t.Errorf("failure log %q missing %q", data, missing)
	}
	if strings.Contains(string(data), present) {
		t.Errorf("failure log %q records successful path", data)
	}
}

func TestUploadBatchRemoteFailure(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "clip.bin")
	if err := os.WriteFile(local, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("bad share"))
	}))
	defer server.Close()

	uploader := New(settings.FilestashConfig{
		Url:        server.URL,
		ApiKey:     "k",
		ShareId:    "s",
		UploadPath: "/uploads",
	}, testDefaults())

	report := uploader.UploadBatch(local)
	if !strings.Contains(report, "ERROR: Failed to upload clip.bin - HTTP 403: bad share") {
		t.Fatalf("report = %q", report)
	}
}

func TestUploadBatchCustomHeaders(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "clip.bin")
	if err := os.WriteFile(local, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Extra")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	uploader := New(settings.FilestashConfig{
		Url:        server.URL,
		ApiKey:     "k",
		ShareId:    "s",
		UploadPath: "/uploads/",
	}, testDefaults())
	uploader.Headers = map[string]string{"X-Extra": "present"}

	_ = uploader.UploadBatch(local)
	if gotHeader != "present" {
		t.Fatalf("X-Extra = %q, wanted present", gotHeader)
	}
}
