package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smarty/releases/contracts"
)

// Compiled once at process start and shared read-only. A '#' cannot be
// escaped; everything from the first occurrence to end of line is comment.
var commentPattern = regexp.MustCompile(`#.*$`)

// ParseEntry parses a single manifest line into a ReleaseEntry. Fields are
// validated in a fixed order so that a line with several malformed fields
// always surfaces the same error: token count, package type, name, version,
// length, percentage, and finally hash.
func ParseEntry(line string) (entry contracts.ReleaseEntry, err error) {
	tokens := strings.Fields(line)
	if len(tokens) < 5 || len(tokens) > 6 {
		return entry, contracts.NewError(contracts.InvalidEntryFormat,
			"expected 5 or 6 fields, got %d in %q", len(tokens), line)
	}

	switch tokens[4] {
	case contracts.PackageTypeDelta:
		entry.IsDelta = true
	case contracts.PackageTypeFull:
		entry.IsDelta = false
	default:
		return entry, contracts.NewError(contracts.InvalidPackageType,
			"expected %q or %q, got %q", contracts.PackageTypeDelta, contracts.PackageTypeFull, tokens[4])
	}

	entry.Filename, err = DecodeName(tokens[1])
	if err != nil {
		return contracts.ReleaseEntry{}, err
	}

	entry.Version, err = ParseVersion(tokens[2])
	if err != nil {
		return contracts.ReleaseEntry{}, err
	}

	entry.Length, err = parseLength(tokens[3])
	if err != nil {
		return contracts.ReleaseEntry{}, err
	}

	entry.Percentage = contracts.FullyAvailable
	if len(tokens) == 6 {
		entry.Percentage, err = parsePercentage(tokens[5])
		if err != nil {
			return contracts.ReleaseEntry{}, err
		}
	}

	entry.SHA256, err = DecodeHash(tokens[0])
	if err != nil {
		return contracts.ReleaseEntry{}, err
	}
	return entry, nil
}

func parseLength(token string) (uint64, error) {
	length, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, contracts.NewError(contracts.InvalidLength,
			"expected a non-negative size, got %q", token)
	}
	return length, nil
}

func parsePercentage(token string) (int, error) {
	if !strings.HasSuffix(token, "%") {
		return 0, contracts.NewError(contracts.InvalidPercentage,
			"expected a trailing %% in %q", token)
	}
	percentage, err := strconv.Atoi(strings.TrimSuffix(token, "%"))
	if err != nil {
		return 0, contracts.NewError(contracts.InvalidPercentage, "%q: %s", token, err)
	}
	if percentage < 0 || percentage > contracts.FullyAvailable {
		return 0, contracts.NewError(contracts.InvalidPercentage,
			"%d is outside [0,100]", percentage)
	}
	return percentage, nil
}

// ParseManifest parses a whole manifest document. Comments and blank lines
// are skipped; surviving lines are parsed in order. The first malformed line
// aborts the whole parse and discards any entries already gathered.
func ParseManifest(content string) (entries []contracts.ReleaseEntry, err error) {
	for _, line := range strings.Split(content, "\n") {
		line = commentPattern.ReplaceAllString(line, "")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
