package jikantest

import (
	"fmt"

	"github.com/anisan-cli/jikancsv/jikan"
)

// Ptr returns a pointer to v, for populating optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// Anime builds a search entry with the fields every entry carries.
func Anime(id int, title string) jikan.Anime {
	a := jikan.Anime{
		MalID: id,
		URL:   fmt.Sprintf("https://myanimelist.net/anime/%d", id),
		Title: title,
	}
	a.Images.JPG.ImageURL = Ptr(fmt.Sprintf("https://cdn.myanimelist.net/images/anime/%d.jpg", id))
	a.Genres = []jikan.Entity{{MalID: 10, Type: "anime", Name: "Fantasy"}}
	a.Themes = []jikan.Entity{{MalID: 62, Type: "anime", Name: "Isekai"}}
	return a
}

// Role builds a character listing entry.
func Role(id int, name, role string, actors ...jikan.VoiceActor) jikan.CharacterRole {
	r := jikan.CharacterRole{
		Character: jikan.CharacterSummary{
			MalID: id,
			URL:   fmt.Sprintf("https://myanimelist.net/character/%d", id),
			Name:  name,
		},
		Role:        Ptr(role),
		VoiceActors: actors,
	}
	r.Character.Images.JPG.ImageURL = Ptr(fmt.Sprintf("https://cdn.myanimelist.net/images/characters/%d.jpg", id))
	return r
}

// Actor builds a voice actor entry; an empty language leaves the field absent.
func Actor(name, language, image string) jikan.VoiceActor {
	va := jikan.VoiceActor{Person: jikan.Person{Name: Ptr(name)}}
	if language != "" {
		va.Language = Ptr(language)
	}
	if image != "" {
		va.Person.Images.JPG.ImageURL = Ptr(image)
	}
	return va
}

// Detail builds a character detail page.
func Detail(id int, name, kanji string, nicknames ...string) jikan.Character {
	return jikan.Character{
		MalID:     id,
		URL:       fmt.Sprintf("https://myanimelist.net/character/%d", id),
		Name:      name,
		NameKanji: Ptr(kanji),
		Nicknames: nicknames,
		Favorites: Ptr(id * 10),
		About:     Ptr(fmt.Sprintf("About %s.", name)),
	}
}
