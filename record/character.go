package record

import (
	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Character is one row of the character dataset.
// The voice actor columns are parallel lists: the n-th token of each belongs to the same voice actor.
type Character struct {
	CharacterID        int    `csv:"character_id" json:"character_id" jsonschema:"description=MyAnimeList id of the character."`
	AnimeID            int    `csv:"anime_id" json:"anime_id" jsonschema:"description=Anime the character was harvested for."`
	Name               string `csv:"name" json:"name"`
	NameKanji          string `csv:"name_kanji" json:"name_kanji"`
	Nicknames          string `csv:"nicknames" json:"nicknames"`
	URL                string `csv:"url" json:"url"`
	ImageURL           string `csv:"image_url" json:"image_url"`
	Favorites          string `csv:"favorites" json:"favorites"`
	About              string `csv:"about" json:"about"`
	Role               string `csv:"role" json:"role" jsonschema:"enum=Main,enum=Supporting"`
	VoiceActorName     string `csv:"voice_actor_name" json:"voice_actor_name"`
	VoiceActorLang     string `csv:"voice_actor_lang" json:"voice_actor_lang"`
	VoiceActorImageURL string `csv:"voice_actor_image_url" json:"voice_actor_image_url"`
}

// NewCharacter flattens a character listing entry of the given anime, enriched by its detail page when present.
func NewCharacter(animeID int, role jikan.CharacterRole, detail mo.Option[*jikan.Character]) Character {
	c := Character{
		CharacterID: role.Character.MalID,
		AnimeID:     animeID,
		Name:        role.Character.Name,
		URL:         role.Character.URL,
		ImageURL:    str(role.Character.Images.JPG.ImageURL),
		Favorites:   integer(role.Favorites),
		Role:        str(role.Role),

		VoiceActorName: Join(lo.Map(role.VoiceActors, func(va jikan.VoiceActor, _ int) string {
			return str(va.Person.Name)
		})),
		VoiceActorLang: Join(lo.Map(role.VoiceActors, func(va jikan.VoiceActor, _ int) string {
			return str(va.Language)
		})),
		VoiceActorImageURL: Join(lo.Map(role.VoiceActors, func(va jikan.VoiceActor, _ int) string {
			return str(va.Person.Images.JPG.ImageURL)
		})),
	}

	if d, ok := detail.Get(); ok && d != nil {
		c.NameKanji = str(d.NameKanji)
		c.Nicknames = JoinDistinct(d.Nicknames)
		c.About = str(d.About)
		if d.Favorites != nil {
			c.Favorites = integer(d.Favorites)
		}
	}

	return c
}
