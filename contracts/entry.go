package contracts

import (
	"crypto/sha256"
	"strings"

	"github.com/hashicorp/go-version"
)

// HashSize is the length in bytes of an artifact content digest.
const HashSize = sha256.Size

// SchemeMarker prefixes entries that reference a remote artifact by literal
// URL rather than by percent-encoded local filename.
const SchemeMarker = "https:"

const (
	PackageTypeDelta = "delta"
	PackageTypeFull  = "full"
)

// FullyAvailable is the rollout percentage of an unrestricted entry; it is
// omitted from the textual form.
const FullyAvailable = 100

// ManifestHeader is the fixed comment line emitted at the top of every
// formatted manifest.
const ManifestHeader = "# SHA256 of the file                                             Name       Version Size  [delta/full] release%"

// ReleaseEntry is one manifest line: a distributable artifact identified by
// content digest, name or URL, semantic version, byte size, delta/full
// classification, and staged-rollout percentage. Entries are values; a
// "changed" entry is a new value.
type ReleaseEntry struct {
	SHA256     [HashSize]byte
	Filename   string
	Version    *version.Version
	Length     uint64
	IsDelta    bool
	Percentage int
}

func (this ReleaseEntry) IsURL() bool {
	return strings.HasPrefix(this.Filename, SchemeMarker)
}

func (this ReleaseEntry) PackageType() string {
	if this.IsDelta {
		return PackageTypeDelta
	}
	return PackageTypeFull
}

func (this ReleaseEntry) WithVersion(value *version.Version) ReleaseEntry {
	this.Version = value
	return this
}

func (this ReleaseEntry) WithDelta(value bool) ReleaseEntry {
	this.IsDelta = value
	return this
}

func (this ReleaseEntry) WithPercentage(value int) ReleaseEntry {
	this.Percentage = value
	return this
}
