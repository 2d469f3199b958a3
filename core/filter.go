package core

import "github.com/smarty/releases/contracts"

// Filter narrows a manifest to the entries whose filenames appear in filter;
// an empty filter keeps everything.
func Filter(original []contracts.ReleaseEntry, filter []string) (filtered []contracts.ReleaseEntry) {
	if len(filter) == 0 {
		return original
	}
	for _, entry := range original {
		if contains(filter, entry.Filename) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func contains(haystack []string, needle string) bool {
	for _, straw := range haystack {
		if straw == needle {
			return true
		}
	}
	return false
}
