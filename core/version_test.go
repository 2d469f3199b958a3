package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/smarty/releases/contracts"
)

func TestVersionFixture(t *testing.T) {
	gunit.Run(new(VersionFixture), t)
}

type VersionFixture struct {
	*gunit.Fixture
}

func (this *VersionFixture) TestParseWellFormedVersions() {
	for _, token := range []string{"0.0.0", "1.2.3", "10.20.30", "1.2.3-beta.1", "1.2.3+build.5", "1.2.3-rc.1+build.5"} {
		parsed, err := ParseVersion(token)
		this.So(err, should.BeNil)
		this.So(FormatVersion(parsed), should.Equal, token)
	}
}

func (this *VersionFixture) TestParseRejectsLooseForms() {
	for _, token := range []string{"", "1", "1.2", "v1.2.3", "1.2.3.4", "1.2.x", "abc", "1.2.3 "} {
		_, err := ParseVersion(token)

		var typed *contracts.Error
		this.So(errors.As(err, &typed), should.BeTrue)
		this.So(typed.Kind, should.Equal, contracts.InvalidVersion)
	}
}

func (this *VersionFixture) TestParsedVersionsCompare() {
	older, _ := ParseVersion("1.2.3")
	newer, _ := ParseVersion("1.10.0")
	this.So(older.LessThan(newer), should.BeTrue)
}
