package faillog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Append records a failed batch in the append-only failure log: a timestamped
// header line followed by one local file path per line. Parent directories
// are created as needed.
func Append(logPath string, failedPaths []string) error {
	if len(failedPaths) == 0 {
		return nil
	}

	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var record strings.Builder
	record.WriteString(fmt.Sprintf("# Failed uploads at %s\n", time.Now().Format("2006-01-02 15:04:05")))
	for _, path := range failedPaths {
		record.WriteString(path)
		record.WriteString("\n")
	}

	if _, err := file.WriteString(record.String()); err != nil {
		return fmt.Errorf("failed to write log record: %w", err)
	}

	return nil
}
