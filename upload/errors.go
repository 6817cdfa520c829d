package upload

import (
	"errors"
	"fmt"
	"net"
	"syscall"

	"uploadnodes/http/headers"
)

// classifyTransport maps a transport-level failure to the status code and
// message reported when no server response was ever received. Timeouts and
// connection failures keep their distinct codes from the single-attempt
// nodes; anything else is a generic request error with sanitized text.
func classifyTransport(err error, timeoutSeconds int, url string) (int, string) {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return 408, fmt.Sprintf("Request timeout after %d seconds", timeoutSeconds)
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.Is(err, syscall.ECONNREFUSED) {
		return 503, fmt.Sprintf("Connection error: Unable to connect to %s", url)
	}

	return 500, fmt.Sprintf("HTTP request error: %s", headers.Sanitize(err.Error()))
}
