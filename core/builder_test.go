package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/smarty/releases/contracts"
	"github.com/smarty/releases/shell"
)

func TestFileEntryBuilderFixture(t *testing.T) {
	gunit.Run(new(FileEntryBuilderFixture), t)
}

type FileEntryBuilderFixture struct {
	*gunit.Fixture

	builder    *FileEntryBuilder
	fileSystem *shell.InMemoryFileSystem
}

func (this *FileEntryBuilderFixture) Setup() {
	this.fileSystem = shell.NewInMemoryFileSystem()
	this.builder = NewFileEntryBuilder(this.fileSystem)
}

// sha256("Hello World")
const helloWorldDigest = "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e"

func (this *FileEntryBuilderFixture) TestEntryFromKnownContent() {
	_ = this.fileSystem.WriteFile("/release/myproject.7z", []byte("Hello World"))

	entry, err := this.builder.BuildEntry("/release/myproject.7z")

	this.So(err, should.BeNil)
	this.So(EncodeHash(entry.SHA256), should.Equal, helloWorldDigest)
	this.So(entry.Filename, should.Equal, "myproject.7z")
	this.So(entry.Length, should.Equal, len("Hello World"))
	this.So(FormatVersion(entry.Version), should.Equal, "0.0.0")
	this.So(entry.IsDelta, should.BeFalse)
	this.So(entry.Percentage, should.Equal, contracts.FullyAvailable)
}

func (this *FileEntryBuilderFixture) TestFilenameIsFinalPathSegmentVerbatim() {
	_ = this.fileSystem.WriteFile("/release/my project.7z", []byte("Hello World"))

	entry, err := this.builder.BuildEntry("/release/my project.7z")

	this.So(err, should.BeNil)
	this.So(entry.Filename, should.Equal, "my project.7z")
}

func (this *FileEntryBuilderFixture) TestEmptyFile() {
	_ = this.fileSystem.WriteFile("/release/empty.7z", nil)

	entry, err := this.builder.BuildEntry("/release/empty.7z")

	this.So(err, should.BeNil)
	this.So(entry.Length, should.Equal, 0)
}

func (this *FileEntryBuilderFixture) TestMissingFile() {
	_, err := this.builder.BuildEntry("/release/missing.7z")
	this.assertIoFailure(err)
}

func (this *FileEntryBuilderFixture) TestOpenFailure() {
	_ = this.fileSystem.WriteFile("/release/myproject.7z", []byte("Hello World"))
	this.fileSystem.ErrorForPath("/release/myproject.7z", errors.New("permission denied"))

	_, err := this.builder.BuildEntry("/release/myproject.7z")

	this.assertIoFailure(err)
}

func (this *FileEntryBuilderFixture) assertIoFailure(err error) {
	var typed *contracts.Error
	this.So(errors.As(err, &typed), should.BeTrue)
	this.So(typed.Kind, should.Equal, contracts.IoFailure)
}
