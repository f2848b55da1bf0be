package harvest_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anisan-cli/jikancsv/harvest"
	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/anisan-cli/jikancsv/jikan/jikantest"
	"github.com/anisan-cli/jikancsv/network"
	"github.com/anisan-cli/jikancsv/record"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func newClient(server *jikantest.Server) *jikan.Client {
	return jikan.New(
		jikan.WithBaseURL(server.URL),
		jikan.WithHTTPClient(server.Client()),
		jikan.WithRateLimiter(network.NewRateLimiter(0)),
		jikan.WithMaxRetries(0),
	)
}

func catalog(n int) []jikan.Anime {
	return lo.Times(n, func(i int) jikan.Anime {
		return jikantest.Anime(i+1, fmt.Sprintf("Isekai #%d", i+1))
	})
}

func ids(records []record.Anime) []int {
	return lo.Map(records, func(r record.Anime, _ int) int {
		return r.AnimeID
	})
}

func TestAnimes(t *testing.T) {
	ctx := context.Background()

	Convey("Given a listing of 60 anime", t, func() {
		server := jikantest.NewServer(jikantest.Fixture{Anime: catalog(60)})
		defer server.Close()
		h := &harvest.Animes{Client: newClient(server), Genre: 62, PageSize: 25}

		Convey("A limit within the first page should take a single request", func() {
			records, err := h.Harvest(ctx, 10)
			So(err, ShouldBeNil)
			So(ids(records), ShouldResemble, lo.RangeFrom(1, 10))
			So(server.Queries("/anime"), ShouldResemble, []string{"genres=62&limit=25&page=1"})
		})

		Convey("A limit past the first page should keep the page size fixed", func() {
			records, err := h.Harvest(ctx, 30)
			So(err, ShouldBeNil)
			So(ids(records), ShouldResemble, lo.RangeFrom(1, 30))
			So(server.Queries("/anime"), ShouldResemble, []string{
				"genres=62&limit=25&page=1",
				"genres=62&limit=25&page=2",
			})
		})

		Convey("A limit past the listing should return everything there is", func() {
			records, err := h.Harvest(ctx, 100)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 60)
			So(server.Requests("/anime"), ShouldEqual, 3)
		})

		Convey("Progress should be reported after every page", func() {
			var reported []int
			h.OnProgress = func(n int) { reported = append(reported, n) }

			_, err := h.Harvest(ctx, 30)
			So(err, ShouldBeNil)
			So(reported, ShouldResemble, []int{25, 30})
		})

		Convey("A non-positive limit should be rejected without requests", func() {
			_, err := h.Harvest(ctx, 0)
			So(errors.Is(err, harvest.ErrInvalidLimit), ShouldBeTrue)
			So(server.Requests("/anime"), ShouldEqual, 0)
		})

		Convey("A failing page should abort the harvest", func() {
			server.FailNext("/anime", http.StatusInternalServerError)

			_, err := h.Harvest(ctx, 10)
			var reqErr *jikan.RequestError
			So(errors.As(err, &reqErr), ShouldBeTrue)
			So(reqErr.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})
	})

	Convey("Given a listing shorter than the limit", t, func() {
		server := jikantest.NewServer(jikantest.Fixture{Anime: catalog(3)})
		defer server.Close()
		h := &harvest.Animes{Client: newClient(server), Genre: 62}

		Convey("It should stop when there is no next page", func() {
			records, err := h.Harvest(ctx, 10)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 3)
			So(server.Requests("/anime"), ShouldEqual, 1)
		})
	})

	Convey("Given an empty listing", t, func() {
		server := jikantest.NewServer(jikantest.Fixture{})
		defer server.Close()
		h := &harvest.Animes{Client: newClient(server), Genre: 62}

		Convey("It should return no records and no error", func() {
			records, err := h.Harvest(ctx, 10)
			So(err, ShouldBeNil)
			So(records, ShouldBeEmpty)
		})
	})

	Convey("Given a listing that repeats an entry across pages", t, func() {
		anime := catalog(3)
		server := jikantest.NewServer(jikantest.Fixture{Anime: []jikan.Anime{anime[0], anime[1], anime[1], anime[2]}})
		defer server.Close()
		h := &harvest.Animes{Client: newClient(server), Genre: 62, PageSize: 2}

		Convey("Every anime should be recorded once", func() {
			records, err := h.Harvest(ctx, 10)
			So(err, ShouldBeNil)
			So(ids(records), ShouldResemble, []int{1, 2, 3})
		})
	})
}

func characterFixture() jikantest.Fixture {
	return jikantest.Fixture{
		Characters: map[int][]jikan.CharacterRole{
			1: {
				jikantest.Role(11, "Kazuma", "Main", jikantest.Actor("Fukushima Jun", "Japanese", "")),
				jikantest.Role(12, "Aqua", "Main", jikantest.Actor("Amamiya Sora", "Japanese", ""), jikantest.Actor("Faye Mata", "", "")),
				jikantest.Role(13, "Megumin", "Main"),
			},
		},
		Details: map[int]jikan.Character{
			11: jikantest.Detail(11, "Kazuma", "佐藤和真", "Kazuma-san"),
			12: jikantest.Detail(12, "Aqua", "アクア"),
			13: jikantest.Detail(13, "Megumin", "めぐみん"),
		},
	}
}

func TestCharacters(t *testing.T) {
	ctx := context.Background()

	Convey("Given an anime with three characters", t, func() {
		server := jikantest.NewServer(characterFixture())
		defer server.Close()
		h := &harvest.Characters{Client: newClient(server), Details: true}

		Convey("The limit should cap the characters in API order", func() {
			records, err := h.Harvest(ctx, 1, 2)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 2)
			So(records[0].Name, ShouldEqual, "Kazuma")
			So(records[1].Name, ShouldEqual, "Aqua")
			So(records[0].AnimeID, ShouldEqual, 1)
			So(records[1].AnimeID, ShouldEqual, 1)
			So(server.Requests("/anime/1/characters"), ShouldEqual, 1)
			So(server.Requests("/characters/13"), ShouldEqual, 0)
		})

		Convey("Details should fill the detail columns", func() {
			records, err := h.Harvest(ctx, 1, 10)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 3)
			So(records[0].NameKanji, ShouldEqual, "佐藤和真")
			So(records[0].Nicknames, ShouldEqual, "Kazuma-san")
			So(records[1].VoiceActorName, ShouldEqual, "Amamiya Sora, Faye Mata")
			So(records[1].VoiceActorLang, ShouldEqual, "Japanese, ")
		})

		Convey("Without details only the listing should be requested", func() {
			h.Details = false
			records, err := h.Harvest(ctx, 1, 10)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 3)
			So(records[0].NameKanji, ShouldBeEmpty)
			So(server.Requests("/characters/11"), ShouldEqual, 0)
		})

		Convey("A failed detail call should keep the listing fields", func() {
			server.FailNext("/characters/12", http.StatusInternalServerError)

			records, err := h.Harvest(ctx, 1, 3)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 3)
			So(records[1].Name, ShouldEqual, "Aqua")
			So(records[1].NameKanji, ShouldBeEmpty)
			So(records[1].About, ShouldBeEmpty)
			So(records[2].NameKanji, ShouldEqual, "めぐみん")
		})

		Convey("An unknown anime should fail the harvest", func() {
			_, err := h.Harvest(ctx, 404, 3)
			var reqErr *jikan.RequestError
			So(errors.As(err, &reqErr), ShouldBeTrue)
			So(reqErr.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("A cancelled context should not be swallowed", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := h.Harvest(cancelled, 1, 3)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("A non-positive limit should be rejected", func() {
			_, err := h.Harvest(ctx, 1, 0)
			So(errors.Is(err, harvest.ErrInvalidLimit), ShouldBeTrue)
		})
	})
}

func TestResolveGenre(t *testing.T) {
	ctx := context.Background()

	Convey("Given the genre listing", t, func() {
		server := jikantest.NewServer(jikantest.Fixture{Genres: []jikan.Genre{
			{MalID: 1, Name: "Action"},
			{MalID: 36, Name: "Slice of Life"},
			{MalID: 62, Name: "Isekai"},
		}})
		defer server.Close()
		client := newClient(server)

		Convey("A numeric id should be used as is", func() {
			id, err := harvest.ResolveGenre(ctx, client, "62")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 62)
			So(server.Requests("/genres/anime"), ShouldEqual, 0)
		})

		Convey("A name should match regardless of case", func() {
			id, err := harvest.ResolveGenre(ctx, client, "ISEKAI")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 62)
		})

		Convey("A partial name should match the closest genre", func() {
			id, err := harvest.ResolveGenre(ctx, client, "slice")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 36)
		})

		Convey("An unknown name should fail", func() {
			_, err := harvest.ResolveGenre(ctx, client, "zzz")
			So(errors.Is(err, harvest.ErrUnknownGenre), ShouldBeTrue)
		})

		Convey("A non-positive id should fail", func() {
			_, err := harvest.ResolveGenre(ctx, client, "0")
			So(errors.Is(err, harvest.ErrUnknownGenre), ShouldBeTrue)
		})
	})
}
