package core

import (
	"regexp"

	"github.com/hashicorp/go-version"

	"github.com/smarty/releases/contracts"
)

// The go-version parser accepts looser forms than the manifest grammar
// ("1.2", "v1.2.3"), so the shape is pinned before delegating. Compiled once
// at process start and shared read-only.
var versionShapePattern = regexp.MustCompile(
	`^\d+\.\d+\.\d+(-[0-9A-Za-z.\-]+)?(\+[0-9A-Za-z.\-]+)?$`)

// ParseVersion parses a strict major.minor.patch semantic version with
// optional pre-release and build metadata.
func ParseVersion(token string) (*version.Version, error) {
	if !versionShapePattern.MatchString(token) {
		return nil, contracts.NewError(contracts.InvalidVersion,
			"%q is not of the form major.minor.patch", token)
	}
	parsed, err := version.NewVersion(token)
	if err != nil {
		return nil, contracts.NewError(contracts.InvalidVersion, "%q: %s", token, err)
	}
	return parsed, nil
}

// FormatVersion renders a version exactly as it was parsed so that
// formatting is the textual inverse of parsing.
func FormatVersion(value *version.Version) string {
	return value.Original()
}
