package config

import (
	"testing"

	"github.com/anisan-cli/jikancsv/filesystem"
	"github.com/anisan-cli/jikancsv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should default to the documented run arguments", func() {
			_ = Setup()
			So(viper.GetInt(key.HarvestLimit), ShouldEqual, 10)
			So(viper.GetBool(key.CharactersInclude), ShouldBeFalse)
			So(viper.GetInt(key.CharactersLimit), ShouldEqual, 10)
			So(viper.GetString(key.OutputAnime), ShouldEqual, "anime.csv")
			So(viper.GetString(key.OutputCharacters), ShouldEqual, "character.csv")
			So(viper.GetString(key.HarvestGenre), ShouldEqual, "62")
		})

		Convey("Duration keys should parse", func() {
			_ = Setup()
			So(viper.GetDuration(key.JikanInterval).Seconds(), ShouldEqual, 1)
			So(viper.GetDuration(key.CacheLifetime).Hours(), ShouldEqual, 24)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("characters.include")
			So(result, ShouldEqual, "characters_include")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.CharactersLimit]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "JIKANCSV_CHARACTERS_LIMIT")
		})

		Convey("typeName should reflect the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
			genre := Default[key.HarvestGenre]
			So(genre.typeName(), ShouldEqual, "string")
		})

		Convey("Every key should be registered exactly once", func() {
			So(len(EnvExposed), ShouldEqual, len(Default))
		})
	})
}
