package contracts

// IntegrityCheck verifies that the artifacts named by a parsed manifest are
// faithfully present under localPath. Entries referencing remote URLs are
// outside its jurisdiction and are skipped by implementations.
type IntegrityCheck interface {
	Verify(entries []ReleaseEntry, localPath string) error
}
