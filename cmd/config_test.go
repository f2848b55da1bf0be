package cmd

import (
	"sort"
	"testing"

	"github.com/anisan-cli/jikancsv/config"
	"github.com/anisan-cli/jikancsv/key"
	"github.com/anisan-cli/jikancsv/where"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("Given configuration fields", t, func() {
		Convey("Integers should be parsed", func() {
			v, err := parseValue(config.Default[key.HarvestLimit], []string{"25"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 25)

			_, err = parseValue(config.Default[key.HarvestLimit], []string{"many"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans should be parsed", func() {
			v, err := parseValue(config.Default[key.CharactersInclude], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Durations should be validated", func() {
			v, err := parseValue(config.Default[key.JikanInterval], []string{"1500ms"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1500ms")

			_, err = parseValue(config.Default[key.JikanInterval], []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Plain strings should be kept", func() {
			v, err := parseValue(config.Default[key.HarvestGenre], []string{"fantasy"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "fantasy")
		})

		Convey("A missing value should fail", func() {
			_, err := parseValue(config.Default[key.HarvestGenre], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("Given a misspelled key", t, func() {
		err := errUnknownKey("harvest.limt")

		Convey("The closest key should be suggested", func() {
			So(err.Error(), ShouldContainSubstring, key.HarvestLimit)
		})
	})
}

func TestEnvVars(t *testing.T) {
	Convey("Given the registered config fields", t, func() {
		vars := envVars()

		Convey("Every field and the config path override should be listed once, sorted", func() {
			So(vars, ShouldHaveLength, len(config.Default)+1)
			So(vars, ShouldContain, "JIKANCSV_HARVEST_LIMIT")
			So(vars, ShouldContain, where.EnvConfigPath)
			So(sort.StringsAreSorted(vars), ShouldBeTrue)
		})

		Convey("Listing twice should not grow the list", func() {
			So(envVars(), ShouldHaveLength, len(vars))
		})
	})
}
