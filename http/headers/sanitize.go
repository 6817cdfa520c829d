package headers

import (
	"strings"
)

// Redacted replaces the remainder of any line carrying a sensitive marker.
const Redacted = "[REDACTED]"

// Markers are matched case-insensitively against each line of a message.
var sensitiveMarkers = []string{
	"Authorization:",
	"Bearer ",
	"api-key:",
	"x-api-key:",
	"token:",
	"password:",
	"secret:",
}

// Sanitize strips credential values from a message before it reaches results
// or logs. Each line containing a sensitive marker keeps the marker itself and
// loses everything after it.
func Sanitize(message string) string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)

		cut := -1
		for _, marker := range sensitiveMarkers {
			idx := strings.Index(lower, strings.ToLower(marker))
			if idx < 0 {
				continue
			}
			end := idx + len(marker)
			if cut == -1 || end < cut {
				cut = end
			}
		}

		if cut >= 0 {
			lines[i] = strings.TrimRight(line[:cut], " ") + " " + Redacted
		}
	}

	return strings.Join(lines, "\n")
}
