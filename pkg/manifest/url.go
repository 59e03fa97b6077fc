package manifest

import (
	"errors"
	"strings"
)

const (
	SchemePrefix = "https://"
	// FileSuffix is the path of the manifest document relative to a site root.
	FileSuffix = "/site.json"
)

var ErrEmptyInput = errors.New("site url is empty")

// Normalize turns user input into a manifest URL.
//
// The rules are mechanical: trim, ensure the https:// prefix, ensure the
// /site.json suffix without doubling the separator in front of it. No
// host or path validation is done, a malformed input only surfaces as a
// fetch failure later.
func Normalize(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", ErrEmptyInput
	}
	if !strings.HasPrefix(u, SchemePrefix) {
		u = SchemePrefix + u
	}
	if !strings.HasSuffix(u, FileSuffix) {
		u = strings.TrimSuffix(u, "/") + FileSuffix
	}
	return u, nil
}

// BaseURL strips the manifest file suffix from a normalized manifest URL.
// Repeated suffixes ("/site.json/site.json") and trailing separators are
// stripped as well, the result never ends with "/" or "/site.json".
func BaseURL(manifestURL string) string {
	base := manifestURL
	for {
		trimmed := strings.TrimSuffix(strings.TrimRight(base, "/"), FileSuffix)
		if trimmed == base {
			return base
		}
		base = trimmed
	}
}
