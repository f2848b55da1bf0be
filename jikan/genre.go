package jikan

import "context"

// AnimeGenres lists every anime genre, theme and demographic known to the API.
func (c *Client) AnimeGenres(ctx context.Context) ([]Genre, error) {
	resp, err := getJSON[GenresResponse](ctx, c, "genres/anime", nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
