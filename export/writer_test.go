package export

import (
	"context"
	"strings"
	"testing"

	"github.com/anisan-cli/jikancsv/filesystem"
	"github.com/anisan-cli/jikancsv/record"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

type row struct {
	ID   int    `csv:"id"`
	Name string `csv:"name"`
	Tags string `csv:"tags"`
}

func init() {
	filesystem.SetMemMapFs()
}

func read(path string) string {
	contents, err := filesystem.API().ReadFile(path)
	So(err, ShouldBeNil)
	return string(contents)
}

func TestWriter(t *testing.T) {
	Convey("Given a writer", t, func() {
		w, err := Create[row](context.Background(), "out/rows.csv")
		So(err, ShouldBeNil)
		So(w.Path(), ShouldEqual, "out/rows.csv")

		Convey("When records are written in batches", func() {
			So(w.Write(row{1, "Rimuru", "Slime, Demon Lord"}), ShouldBeNil)
			So(w.Write(row{2, "Benimaru", ""}, row{3, "Shuna", "Oni"}), ShouldBeNil)
			So(w.Close(), ShouldBeNil)

			Convey("The header should appear exactly once, before the rows", func() {
				lines := strings.Split(strings.TrimSpace(read("out/rows.csv")), "\n")
				So(lines, ShouldHaveLength, 4)
				So(lines[0], ShouldEqual, "id,name,tags")
				So(strings.Count(read("out/rows.csv"), "id,name,tags"), ShouldEqual, 1)
				So(lines[1], ShouldEqual, `1,Rimuru,"Slime, Demon Lord"`)
				So(lines[2], ShouldEqual, "2,Benimaru,")
				So(lines[3], ShouldEqual, "3,Shuna,Oni")
			})

			Convey("The count should cover every batch", func() {
				So(w.Written(), ShouldEqual, 3)
			})
		})

		Convey("When rows are flushed before closing", func() {
			So(w.Write(row{1, "Rimuru", ""}), ShouldBeNil)

			Convey("They should already be on disk", func() {
				So(read("out/rows.csv"), ShouldContainSubstring, "1,Rimuru,")
			})

			So(w.Close(), ShouldBeNil)
		})

		Convey("When nothing is written", func() {
			So(w.Close(), ShouldBeNil)

			Convey("The file should hold just the header", func() {
				So(read("out/rows.csv"), ShouldEqual, "id,name,tags\n")
			})
		})

		Convey("When the writer is closed", func() {
			So(w.Close(), ShouldBeNil)

			Convey("Writing should fail", func() {
				So(w.Write(row{1, "Rimuru", ""}), ShouldEqual, ErrClosed)
			})

			Convey("Closing again should be a no-op", func() {
				So(w.Close(), ShouldBeNil)
			})
		})
	})
}

func TestWriteAll(t *testing.T) {
	Convey("Given character rows", t, func() {
		rows := []record.Character{
			{CharacterID: 1, AnimeID: 100, Name: "Kazuma", VoiceActorLang: "Japanese, "},
		}

		Convey("WriteAll should produce a header and one line per row", func() {
			So(WriteAll(context.Background(), "character.csv", rows), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(read("character.csv")), "\n")
			So(lines, ShouldHaveLength, 2)
			So(lines[0], ShouldEqual, "character_id,anime_id,name,name_kanji,nicknames,url,image_url,favorites,about,role,voice_actor_name,voice_actor_lang,voice_actor_image_url")
			So(lines[1], ShouldStartWith, "1,100,Kazuma,")
			So(lines[1], ShouldContainSubstring, `"Japanese, "`)
		})

		Convey("Writing again should truncate the previous contents", func() {
			So(WriteAll(context.Background(), "character.csv", rows), ShouldBeNil)
			So(WriteAll(context.Background(), "character.csv", rows[:0]), ShouldBeNil)
			So(read("character.csv"), ShouldStartWith, "character_id,")
			So(strings.Count(read("character.csv"), "\n"), ShouldEqual, 1)
		})
	})
}

func TestUnwritablePath(t *testing.T) {
	Convey("Given a read-only filesystem", t, func() {
		filesystem.Set(afero.NewReadOnlyFs(afero.NewMemMapFs()))
		Reset(filesystem.SetMemMapFs)

		Convey("Create should fail", func() {
			w, err := Create[row](context.Background(), "out/rows.csv")
			So(err, ShouldNotBeNil)
			So(w, ShouldBeNil)
		})

		Convey("WriteAll should fail without leaving a file", func() {
			So(WriteAll(context.Background(), "rows.csv", []row{{1, "Rimuru", ""}}), ShouldNotBeNil)

			exists, err := filesystem.API().Exists("rows.csv")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
