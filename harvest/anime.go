// Package harvest collects anime and character records from the Jikan API.
package harvest

import (
	"context"
	"errors"
	"fmt"

	"github.com/anisan-cli/jikancsv/constant"
	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/anisan-cli/jikancsv/log"
	"github.com/anisan-cli/jikancsv/record"
	"github.com/anisan-cli/jikancsv/util"
)

// ErrInvalidLimit is returned when a harvest is asked for no records.
var ErrInvalidLimit = errors.New("limit must be positive")

// Animes pages through the anime search endpoint for one genre.
type Animes struct {
	Client *jikan.Client
	Genre  int

	// PageSize is the number of entries requested per page.
	// It stays fixed during a harvest so page offsets line up.
	PageSize int

	// OnProgress, if set, is called after each page with the number of anime collected so far.
	OnProgress func(collected int)
}

// Harvest returns up to limit distinct anime in API order.
// Fewer are returned when the listing runs out first.
func (h *Animes) Harvest(ctx context.Context, limit int) ([]record.Anime, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("anime harvest: %w", ErrInvalidLimit)
	}

	size := h.PageSize
	if size <= 0 {
		size = constant.JikanMaxPageSize
	}
	size = util.Clamp(size, 1, constant.JikanMaxPageSize)

	var (
		records = make([]record.Anime, 0, limit)
		seen    = make(map[int]struct{}, limit)
	)

	for page := 1; len(records) < limit; page++ {
		logger := log.FromContext(ctx).WithField("genre", h.Genre).WithField("page", page)
		logger.Debug("searching anime")

		resp, err := h.Client.SearchAnime(ctx, jikan.SearchQuery{
			Genres: []int{h.Genre},
			Page:   page,
			Limit:  size,
		})
		if err != nil {
			return records, fmt.Errorf("anime harvest: page %d: %w", page, err)
		}

		for _, anime := range resp.Data {
			if len(records) == limit {
				break
			}

			// Entries can shift between pages while the listing changes upstream.
			if _, ok := seen[anime.MalID]; ok {
				continue
			}
			seen[anime.MalID] = struct{}{}
			records = append(records, record.NewAnime(anime))
		}

		if h.OnProgress != nil {
			h.OnProgress(len(records))
		}

		if len(resp.Data) == 0 || !resp.Pagination.HasNextPage {
			logger.WithField("collected", len(records)).Info("no more pages")
			break
		}
	}

	return records, nil
}
