package headers

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"

	"uploadnodes/logger"

	"golang.org/x/crypto/sha3"
)

// ErrSecretHeaders is returned for every secret-file failure. The message is
// deliberately fixed so the file's content cannot leak through error text.
var ErrSecretHeaders = errors.New("failed to load secret headers")

// Parse parses a header block into a key/value map. The block is either a JSON
// object literal or newline-separated "Key: Value" lines. A block that looks
// like JSON but fails to parse falls back to the line grammar.
func Parse(block string) map[string]string {
	parsed := make(map[string]string)
	text := strings.TrimSpace(block)
	if text == "" {
		return parsed
	}

	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		if fromJson, err := parseJsonObject([]byte(text)); err == nil {
			return fromJson
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}

		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			parsed[key] = value
		}
	}

	return parsed
}

// Resolve parses the header block and, when a secret headers file is given,
// overlays its entries onto the result. Secret entries win on key collision.
func Resolve(block string, secretFile string) (map[string]string, error) {
	resolved := Parse(block)

	secretFile = strings.TrimSpace(secretFile)
	if secretFile != "" {
		secret, err := LoadSecretFile(secretFile)
		if err != nil {
			return nil, err
		}
		for key, value := range secret {
			resolved[key] = value
		}
	}

	return resolved, nil
}

// LoadSecretFile loads a JSON object file mapping header names to values. All
// keys and values are coerced to strings. Every failure mode collapses into
// ErrSecretHeaders; diagnostics carry a fingerprint of the file rather than
// its content.
func LoadSecretFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Secret headers file unreadable", "file", path)
		return nil, ErrSecretHeaders
	}

	secret, err := parseJsonObject(data)
	if err != nil {
		fingerprint := sha3.Sum224(data)
		logger.Error("Secret headers file rejected",
			"file", path,
			"sha3", hex.EncodeToString(fingerprint[:]))
		return nil, ErrSecretHeaders
	}

	return secret, nil
}

// parseJsonObject decodes a JSON object into a string map, coercing number
// and bool values to their literal text.
func parseJsonObject(data []byte) (map[string]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}

	object := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			object[key] = v
		case json.Number:
			object[key] = v.String()
		case bool:
			object[key] = strconv.FormatBool(v)
		default:
			return nil, errors.New("header value is not a string, number or bool")
		}
	}

	return object, nil
}
