package inkpress

import (
	"net/url"
	"strings"
)

// isHTTPURL reports whether s is an absolute http(s) URL. Used to decide
// which editor tab a stored image belongs to.
func isHTTPURL(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// IsDataURI reports whether s is an inline base64 payload rather than a URL.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}
