package where

import (
	"path/filepath"
	"testing"

	"github.com/anisan-cli/jikancsv/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Responses() lives in the cache directory", func() {
			So(filepath.Dir(Responses()), ShouldEqual, Cache())
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/jikancsv-test-config")
			So(Config(), ShouldEqual, "/tmp/jikancsv-test-config")
			So(lo.Must(filesystem.API().IsDir("/tmp/jikancsv-test-config")), ShouldBeTrue)
		})
	})
}
