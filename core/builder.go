package core

import (
	"crypto/sha256"
	"io"
	"path/filepath"

	"github.com/hashicorp/go-version"

	"github.com/smarty/releases/contracts"
)

// FileEntryBuilder computes a ReleaseEntry for a file on disk by streaming
// its contents through a SHA-256 accumulator, keeping memory use bounded
// regardless of file size.
type FileEntryBuilder struct {
	fileSystem contracts.FileOpener
}

func NewFileEntryBuilder(fileSystem contracts.FileOpener) *FileEntryBuilder {
	return &FileEntryBuilder{fileSystem: fileSystem}
}

// BuildEntry hashes the file at path and returns an entry with the streamed
// byte count as its length. Counting the bytes actually hashed, rather than
// trusting filesystem metadata, keeps the recorded size consistent with the
// digest even when the file is mutated mid-read. The filename is the path's
// final segment, verbatim. Version defaults to 0.0.0, the package type to
// full, and the percentage to fully available; callers wanting different
// values derive a modified copy.
func (this *FileEntryBuilder) BuildEntry(path string) (contracts.ReleaseEntry, error) {
	reader, err := this.fileSystem.Open(path)
	if err != nil {
		return contracts.ReleaseEntry{}, contracts.NewIoError(err, "opening %q", path)
	}
	defer func() { _ = reader.Close() }()

	hasher := sha256.New()
	length, err := io.Copy(io.Discard, NewHashReader(reader, hasher))
	if err != nil {
		return contracts.ReleaseEntry{}, contracts.NewIoError(err, "reading %q", path)
	}

	entry := contracts.ReleaseEntry{
		Filename:   filepath.Base(path),
		Version:    initialVersion,
		Length:     uint64(length),
		IsDelta:    false,
		Percentage: contracts.FullyAvailable,
	}
	copy(entry.SHA256[:], hasher.Sum(nil))
	return entry, nil
}

var initialVersion = version.Must(version.NewVersion("0.0.0"))
