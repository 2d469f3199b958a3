package core

import (
	"strings"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/smarty/releases/contracts"
)

func TestFormatterFixture(t *testing.T) {
	gunit.Run(new(FormatterFixture), t)
}

type FormatterFixture struct {
	*gunit.Fixture
}

func (this *FormatterFixture) TestFormatFullyAvailableEntryOmitsPercentage() {
	entry := this.parse(wellKnownHash + " myproject.7z 1.2.3 12345 full")
	this.So(FormatEntry(entry), should.Equal, wellKnownHash+" myproject.7z 1.2.3 12345 full")
}

func (this *FormatterFixture) TestFormatStagedEntryAppendsPercentage() {
	entry := this.parse(wellKnownHash + " myproject.7z 1.2.3 12345 delta 45%")
	this.So(FormatEntry(entry), should.Equal, wellKnownHash+" myproject.7z 1.2.3 12345 delta 45%")
}

func (this *FormatterFixture) TestFormatEncodesLocalFilename() {
	entry := this.parse(wellKnownHash + " my%20project.7z 1.2.3 12345 full")
	this.So(FormatEntry(entry), should.ContainSubstring, " my%20project.7z ")
}

func (this *FormatterFixture) TestFormatNeverReEncodesURL() {
	entry := this.parse(wellKnownHash + " https://example.com/my%20project.7z 1.2.3 12345 full")
	this.So(FormatEntry(entry), should.ContainSubstring, " https://example.com/my%20project.7z ")
}

func (this *FormatterFixture) TestFormatLowercasesHash() {
	entry := this.parse(strings.ToUpper(wellKnownHash) + " myproject.7z 1.2.3 12345 full")
	this.So(FormatEntry(entry), should.StartWith, wellKnownHash+" ")
}

func (this *FormatterFixture) TestFormatParseFormatIsStable() {
	lines := []string{
		wellKnownHash + " myproject.7z 1.2.3 12345 full",
		wellKnownHash + " my%20project.7z 1.2.3-beta.1+build.5 42 delta 45%",
		wellKnownHash + " https://example.com/myproject.7z 0.0.0 0 full 0%",
	}
	for _, line := range lines {
		first := FormatEntry(this.parse(line))
		second := FormatEntry(this.parse(first))
		this.So(second, should.Equal, first)
	}
}

func (this *FormatterFixture) TestFormatManifestEmitsHeaderAndOrderedEntries() {
	entries := []contracts.ReleaseEntry{
		this.parse(wellKnownHash + " first.7z 1.0.0 1 full"),
		this.parse(wellKnownHash + " second.7z 2.0.0 2 delta 45%"),
	}

	document := FormatManifest(entries)

	lines := strings.Split(document, "\n")
	this.So(lines, should.HaveLength, 3)
	this.So(lines[0], should.Equal, contracts.ManifestHeader)
	this.So(lines[1], should.ContainSubstring, "first.7z")
	this.So(lines[2], should.ContainSubstring, "second.7z")
	this.So(strings.HasSuffix(document, "\n"), should.BeFalse)
}

func (this *FormatterFixture) TestFormatParseDocumentRoundTrip() {
	entries := []contracts.ReleaseEntry{
		this.parse(wellKnownHash + " first.7z 1.0.0 1 full"),
		this.parse(wellKnownHash + " my%20project.7z 2.0.0-rc.1 2 delta 45%"),
		this.parse(wellKnownHash + " https://example.com/third.7z 3.0.0 3 full"),
	}
	document := FormatManifest(entries)

	reparsed, err := ParseManifest(document)

	this.So(err, should.BeNil)
	this.So(FormatManifest(reparsed), should.Equal, document)
}

func (this *FormatterFixture) parse(line string) contracts.ReleaseEntry {
	entry, err := ParseEntry(line)
	this.So(err, should.BeNil)
	return entry
}
