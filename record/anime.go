package record

import (
	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/samber/lo"
)

// Anime is one row of the anime dataset. Column order follows field order.
type Anime struct {
	AnimeID       int    `csv:"anime_id" json:"anime_id" jsonschema:"description=MyAnimeList id of the anime."`
	Title         string `csv:"title" json:"title"`
	TitleEnglish  string `csv:"title_english" json:"title_english"`
	TitleJapanese string `csv:"title_japanese" json:"title_japanese"`
	TitleSynonyms string `csv:"title_synonyms" json:"title_synonyms" jsonschema:"description=Alternative titles joined with a comma and a space."`
	URL           string `csv:"url" json:"url"`
	ImageURL      string `csv:"image_url" json:"image_url"`
	TrailerURL    string `csv:"trailer_url" json:"trailer_url"`
	Type          string `csv:"type" json:"type" jsonschema:"description=Media type such as TV or Movie."`
	Source        string `csv:"source" json:"source"`
	Episodes      string `csv:"episodes" json:"episodes" jsonschema:"description=Episode count or empty when unknown."`
	Status        string `csv:"status" json:"status"`
	Airing        bool   `csv:"airing" json:"airing"`
	AiredFrom     string `csv:"aired_from" json:"aired_from" jsonschema:"description=ISO-8601 start of airing or empty when unknown."`
	AiredTo       string `csv:"aired_to" json:"aired_to" jsonschema:"description=ISO-8601 end of airing or empty when unknown."`
	Duration      string `csv:"duration" json:"duration"`
	Rating        string `csv:"rating" json:"rating"`
	Score         string `csv:"score" json:"score"`
	ScoredBy      string `csv:"scored_by" json:"scored_by"`
	Rank          string `csv:"rank" json:"rank"`
	Popularity    string `csv:"popularity" json:"popularity"`
	Members       string `csv:"members" json:"members"`
	Favorites     string `csv:"favorites" json:"favorites"`
	Synopsis      string `csv:"synopsis" json:"synopsis"`
	Background    string `csv:"background" json:"background"`
	Season        string `csv:"season" json:"season"`
	Year          string `csv:"year" json:"year"`
	BroadcastDay  string `csv:"broadcast_day" json:"broadcast_day"`
	BroadcastTime string `csv:"broadcast_time" json:"broadcast_time"`
	Producers     string `csv:"producers" json:"producers"`
	Licensors     string `csv:"licensors" json:"licensors"`
	Studios       string `csv:"studios" json:"studios"`
	Genres        string `csv:"genres" json:"genres"`
	Themes        string `csv:"themes" json:"themes"`
}

// NewAnime flattens a search entry. Absent fields become empty columns.
func NewAnime(a jikan.Anime) Anime {
	return Anime{
		AnimeID:       a.MalID,
		Title:         a.Title,
		TitleEnglish:  str(a.TitleEnglish),
		TitleJapanese: str(a.TitleJapanese),
		TitleSynonyms: JoinDistinct(a.TitleSynonyms),
		URL:           a.URL,
		ImageURL:      str(a.Images.JPG.ImageURL),
		TrailerURL:    str(a.Trailer.URL),
		Type:          str(a.Type),
		Source:        str(a.Source),
		Episodes:      integer(a.Episodes),
		Status:        str(a.Status),
		Airing:        a.Airing,
		AiredFrom:     str(a.Aired.From),
		AiredTo:       str(a.Aired.To),
		Duration:      str(a.Duration),
		Rating:        str(a.Rating),
		Score:         decimal(a.Score),
		ScoredBy:      integer(a.ScoredBy),
		Rank:          integer(a.Rank),
		Popularity:    integer(a.Popularity),
		Members:       integer(a.Members),
		Favorites:     integer(a.Favorites),
		Synopsis:      str(a.Synopsis),
		Background:    str(a.Background),
		Season:        str(a.Season),
		Year:          integer(a.Year),
		BroadcastDay:  str(a.Broadcast.Day),
		BroadcastTime: str(a.Broadcast.Time),
		Producers:     names(a.Producers),
		Licensors:     names(a.Licensors),
		Studios:       names(a.Studios),
		Genres:        names(a.Genres),
		Themes:        names(a.Themes),
	}
}

func names(entities []jikan.Entity) string {
	return JoinDistinct(lo.Map(entities, func(e jikan.Entity, _ int) string {
		return e.Name
	}))
}
