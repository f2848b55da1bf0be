package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept any afero backend", func() {
			Set(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(API().Name(), ShouldEqual, "ReadOnlyFilter")
			So(API().WriteFile("anime.csv", nil, 0o644), ShouldNotBeNil)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter over an in-memory backend", t, func() {
		SetMemMapFs()
		adapter := GacheFs{}

		Convey("It creates directories and files through the backend", func() {
			So(adapter.MkdirAll("/cache/jikancsv", os.ModePerm), ShouldBeNil)

			f, err := adapter.OpenFile("/cache/jikancsv/responses.json", os.O_CREATE|os.O_RDWR, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, err := API().Exists("/cache/jikancsv/responses.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
