// Package jikan provides a rate-limited client for the Jikan v4 REST API, an unofficial read-only MyAnimeList proxy.
package jikan

// Fields the API may omit or send as null are pointers; nil means absent.

// Images holds the artwork variants of an entry. Only the JPG variant is used.
type Images struct {
	JPG struct {
		ImageURL *string `json:"image_url"`
	} `json:"jpg"`
}

// Entity is a named MyAnimeList resource such as a producer, studio, genre or theme.
type Entity struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// Pagination describes the position of a page within a paginated listing.
type Pagination struct {
	LastVisiblePage int  `json:"last_visible_page"`
	HasNextPage     bool `json:"has_next_page"`
	CurrentPage     int  `json:"current_page"`
	Items           struct {
		Count   int `json:"count"`
		Total   int `json:"total"`
		PerPage int `json:"per_page"`
	} `json:"items"`
}

// Anime is an entry of the anime search endpoint.
type Anime struct {
	MalID   int    `json:"mal_id"`
	URL     string `json:"url"`
	Images  Images `json:"images"`
	Trailer struct {
		URL *string `json:"url"`
	} `json:"trailer"`
	Title         string   `json:"title"`
	TitleEnglish  *string  `json:"title_english"`
	TitleJapanese *string  `json:"title_japanese"`
	TitleSynonyms []string `json:"title_synonyms"`
	Type          *string  `json:"type"`
	Source        *string  `json:"source"`
	Episodes      *int     `json:"episodes"`
	Status        *string  `json:"status"`
	Airing        bool     `json:"airing"`
	Aired         struct {
		From *string `json:"from"`
		To   *string `json:"to"`
	} `json:"aired"`
	Duration   *string  `json:"duration"`
	Rating     *string  `json:"rating"`
	Score      *float64 `json:"score"`
	ScoredBy   *int     `json:"scored_by"`
	Rank       *int     `json:"rank"`
	Popularity *int     `json:"popularity"`
	Members    *int     `json:"members"`
	Favorites  *int     `json:"favorites"`
	Synopsis   *string  `json:"synopsis"`
	Background *string  `json:"background"`
	Season     *string  `json:"season"`
	Year       *int     `json:"year"`
	Broadcast  struct {
		Day  *string `json:"day"`
		Time *string `json:"time"`
	} `json:"broadcast"`
	Producers []Entity `json:"producers"`
	Licensors []Entity `json:"licensors"`
	Studios   []Entity `json:"studios"`
	Genres    []Entity `json:"genres"`
	Themes    []Entity `json:"themes"`
}

// AnimeSearchResponse is one page of the anime search endpoint.
type AnimeSearchResponse struct {
	Data       []Anime    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CharacterSummary is the character part of an anime's character listing.
type CharacterSummary struct {
	MalID  int    `json:"mal_id"`
	URL    string `json:"url"`
	Images Images `json:"images"`
	Name   string `json:"name"`
}

// Person is a voice actor as embedded in a character listing.
type Person struct {
	MalID  int     `json:"mal_id"`
	URL    string  `json:"url"`
	Images Images  `json:"images"`
	Name   *string `json:"name"`
}

// VoiceActor links a person to a character for one dub language.
type VoiceActor struct {
	Person   Person  `json:"person"`
	Language *string `json:"language"`
}

// CharacterRole is an entry of the per-anime character listing.
type CharacterRole struct {
	Character   CharacterSummary `json:"character"`
	Role        *string          `json:"role"`
	Favorites   *int             `json:"favorites"`
	VoiceActors []VoiceActor     `json:"voice_actors"`
}

// CharactersResponse is the payload of the per-anime character listing.
type CharactersResponse struct {
	Data []CharacterRole `json:"data"`
}

// Character is the payload of the character detail endpoint.
type Character struct {
	MalID     int      `json:"mal_id"`
	URL       string   `json:"url"`
	Images    Images   `json:"images"`
	Name      string   `json:"name"`
	NameKanji *string  `json:"name_kanji"`
	Nicknames []string `json:"nicknames"`
	Favorites *int     `json:"favorites"`
	About     *string  `json:"about"`
}

// CharacterResponse wraps a character detail.
type CharacterResponse struct {
	Data Character `json:"data"`
}

// Genre is an anime genre, explicit genre, theme or demographic.
type Genre struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// GenresResponse is the payload of the genre listing.
type GenresResponse struct {
	Data []Genre `json:"data"`
}
