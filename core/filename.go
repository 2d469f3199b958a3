package core

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/smarty/releases/contracts"
)

// schemePattern is compiled once at process start and shared read-only.
var schemePattern = regexp.MustCompile(`^` + contracts.SchemeMarker)

// DecodeName turns a manifest name token into a local filename or literal
// URL. URL tokens (scheme marker prefix) are validated and returned verbatim;
// anything else is treated as a percent-encoded relative path. One leading
// path separator is stripped, an artifact of the historical practice of
// wrapping the token as a local-file URI for decoding.
func DecodeName(raw string) (string, error) {
	if schemePattern.MatchString(raw) {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Host == "" {
			return "", contracts.NewError(contracts.InvalidName, "malformed URL %q", raw)
		}
		return raw, nil
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", contracts.NewError(contracts.InvalidName, "%q: %s", raw, err)
	}
	if !utf8.ValidString(decoded) {
		return "", contracts.NewError(contracts.InvalidName, "%q is not valid UTF-8", raw)
	}
	return strings.TrimPrefix(decoded, "/"), nil
}

// EncodeName is the textual inverse of DecodeName: URLs pass through
// untouched, local filenames are percent-encoded per URL path rules so the
// result never contains literal whitespace. The round-trip is exact only for
// UTF-8 names free of control characters and without a leading separator.
func EncodeName(name string) string {
	if schemePattern.MatchString(name) {
		return name
	}
	return (&url.URL{Path: name}).EscapedPath()
}
