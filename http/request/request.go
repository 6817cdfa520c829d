package request

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"uploadnodes/logger"
)

// FileContentType detects the content type for a file: the first 512 bytes
// are sniffed, then the extension table is consulted for anything the sniffer
// leaves as a generic binary blob.
func FileContentType(file *os.File) (string, error) {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	// Reset the file pointer to the beginning
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(buffer[:n])

	if contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(file.Name())); byExt != "" {
			contentType = byExt
		}
	}

	return contentType, nil
}

// Send performs a single attempt and returns the received response. A non-nil
// error means the transport failed before a response arrived; any received
// response, whatever its status code, comes back as a Response.
func (r *Request) Send() (*Response, error) {
	file, err := os.Open(r.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	contentType, err := FileContentType(file)
	if err != nil {
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}

	reqBody := &bytes.Buffer{}
	bodyContentType := contentType

	if r.FieldName != "" {
		writer := multipart.NewWriter(reqBody)

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			r.FieldName, filepath.Base(r.FileName)))
		h.Set("Content-Type", contentType)

		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("failed to create form part: %w", err)
		}

		bytesWritten, err := io.Copy(part, file)
		if err != nil {
			return nil, fmt.Errorf("failed to copy file content: %w", err)
		}
		logger.Debug("Copied bytes to form file", "bytes", bytesWritten)

		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("failed to close writer: %w", err)
		}

		bodyContentType = writer.FormDataContentType()
	} else {
		bytesWritten, err := io.Copy(reqBody, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file content: %w", err)
		}
		logger.Debug("Copied bytes to request body", "bytes", bytesWritten)
	}

	target := r.Url
	if len(r.Query) > 0 {
		values := url.Values{}
		for key, value := range r.Query {
			values.Set(key, value)
		}
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}
		target = target + separator + values.Encode()
	}

	req, err := http.NewRequest(r.Method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	req.Header.Set("Content-Type", bodyContentType)
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: r.Timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(bodyBytes),
	}, nil
}
