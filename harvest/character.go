package harvest

import (
	"context"
	"errors"
	"fmt"

	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/anisan-cli/jikancsv/log"
	"github.com/anisan-cli/jikancsv/record"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Characters collects the characters of a single anime.
type Characters struct {
	Client *jikan.Client

	// Details enables one detail call per character for kanji name, nicknames and biography.
	Details bool
}

// Harvest returns up to limit characters of the anime in API order.
// A failed detail call degrades the record to the listing fields.
func (h *Characters) Harvest(ctx context.Context, animeID, limit int) ([]record.Character, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("character harvest: %w", ErrInvalidLimit)
	}

	roles, err := h.Client.AnimeCharacters(ctx, animeID)
	if err != nil {
		return nil, fmt.Errorf("character harvest: anime %d: %w", animeID, err)
	}

	roles = lo.Subset(roles, 0, uint(limit))
	records := make([]record.Character, 0, len(roles))

	for _, role := range roles {
		detail, err := h.detail(ctx, role.Character.MalID)
		if err != nil {
			return records, fmt.Errorf("character harvest: anime %d: %w", animeID, err)
		}

		records = append(records, record.NewCharacter(animeID, role, detail))
	}

	return records, nil
}

func (h *Characters) detail(ctx context.Context, characterID int) (mo.Option[*jikan.Character], error) {
	if !h.Details {
		return mo.None[*jikan.Character](), nil
	}

	character, err := h.Client.Character(ctx, characterID)
	if err == nil {
		return mo.Some(character), nil
	}

	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return mo.None[*jikan.Character](), err
	}

	log.FromContext(ctx).WithField("character", characterID).Warn("detail unavailable, keeping listing fields: ", err)
	return mo.None[*jikan.Character](), nil
}
