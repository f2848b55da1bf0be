package jikan

import (
	"context"
	"fmt"
)

// AnimeCharacters lists the characters of an anime in the API's relevance order.
func (c *Client) AnimeCharacters(ctx context.Context, animeID int) ([]CharacterRole, error) {
	resp, err := getJSON[CharactersResponse](ctx, c, fmt.Sprintf("anime/%d/characters", animeID), nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Character fetches the detail page of a character.
func (c *Client) Character(ctx context.Context, characterID int) (*Character, error) {
	resp, err := getJSON[CharacterResponse](ctx, c, fmt.Sprintf("characters/%d", characterID), nil)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
