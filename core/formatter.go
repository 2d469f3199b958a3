package core

import (
	"strconv"
	"strings"

	"github.com/smarty/releases/contracts"
)

// FormatEntry renders one manifest line, the exact textual inverse of
// ParseEntry for any entry the parser can produce. The rollout percentage is
// omitted when the entry is fully available.
func FormatEntry(entry contracts.ReleaseEntry) string {
	fields := []string{
		EncodeHash(entry.SHA256),
		EncodeName(entry.Filename),
		FormatVersion(entry.Version),
		strconv.FormatUint(entry.Length, 10),
		entry.PackageType(),
	}
	if entry.Percentage != contracts.FullyAvailable {
		fields = append(fields, strconv.Itoa(entry.Percentage)+"%")
	}
	return strings.Join(fields, " ")
}

// FormatManifest renders the canonical document: the fixed header line, then
// one line per entry in order, with no trailing blank line.
func FormatManifest(entries []contracts.ReleaseEntry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, contracts.ManifestHeader)
	for _, entry := range entries {
		lines = append(lines, FormatEntry(entry))
	}
	return strings.Join(lines, "\n")
}
