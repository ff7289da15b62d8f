package domain

import (
	"net/url"
	"strings"
)

// UnknownDomain labels imported resources whose URL cannot be parsed.
const UnknownDomain = "UNKNOWN"

// NormalizeURL prefixes https:// to inputs that do not start with "http",
// so bare domains like "example.com" parse as links.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(raw), "http") {
		return raw
	}
	return "https://" + raw
}

// IsValidLink reports whether raw (after NormalizeURL) is an http(s) URL with a host.
func IsValidLink(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	// An explicit non-web scheme must not be rescued by the https:// prefix.
	if i := strings.Index(raw, "://"); i > 0 {
		if scheme := strings.ToLower(raw[:i]); scheme != "http" && scheme != "https" {
			return false
		}
	}
	u, err := url.Parse(NormalizeURL(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}

// DeriveDomain returns the upper-cased hostname of raw.
// ok is false when raw has no parsable host; callers keep their previous value.
// Example: "example.org/path" -> "EXAMPLE.ORG"
func DeriveDomain(raw string) (string, bool) {
	u, err := url.Parse(NormalizeURL(raw))
	if err != nil {
		return "", false
	}
	host := u.Hostname()
	if host == "" {
		return "", false
	}
	return strings.ToUpper(host), true
}
