package jikan

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// SearchQuery holds the parameters of the anime search endpoint.
type SearchQuery struct {
	Genres  []int
	Page    int
	Limit   int
	OrderBy string
	Sort    string
}

// Values encodes the query; zero fields are omitted.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	if len(q.Genres) > 0 {
		v.Set("genres", strings.Join(lo.Map(q.Genres, func(id, _ int) string {
			return strconv.Itoa(id)
		}), ","))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}

// SearchAnime fetches one page of the anime search endpoint.
func (c *Client) SearchAnime(ctx context.Context, q SearchQuery) (*AnimeSearchResponse, error) {
	return getJSON[AnimeSearchResponse](ctx, c, "anime", q.Values())
}
