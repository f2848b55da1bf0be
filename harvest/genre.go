package harvest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// ErrUnknownGenre is returned when a genre name matches nothing.
var ErrUnknownGenre = errors.New("unknown genre")

// ResolveGenre turns a genre id or name into a Jikan genre id.
// Names are compared case-insensitively, exact matches first, then the closest fuzzy match.
func ResolveGenre(ctx context.Context, client *jikan.Client, genre string) (int, error) {
	genre = strings.TrimSpace(genre)

	if id, err := strconv.Atoi(genre); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("%w: %d", ErrUnknownGenre, id)
		}
		return id, nil
	}

	if genre == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownGenre)
	}

	genres, err := client.AnimeGenres(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve genre: %w", err)
	}

	if found, ok := lo.Find(genres, func(g jikan.Genre) bool {
		return strings.EqualFold(g.Name, genre)
	}); ok {
		return found.MalID, nil
	}

	names := lo.Map(genres, func(g jikan.Genre, _ int) string {
		return g.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(genre, names)
	if len(ranks) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGenre, genre)
	}

	sort.Sort(ranks)
	return genres[ranks[0].OriginalIndex].MalID, nil
}
