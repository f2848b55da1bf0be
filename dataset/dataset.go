// Package dataset runs a full harvest and writes the anime and character CSV files.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/anisan-cli/jikancsv/export"
	"github.com/anisan-cli/jikancsv/harvest"
	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/anisan-cli/jikancsv/log"
	"github.com/anisan-cli/jikancsv/record"
	"github.com/google/uuid"
)

// Options selects what is harvested and where it is written.
type Options struct {
	Limit             int
	Genre             int
	IncludeCharacters bool
	CharacterLimit    int
	CharacterDetails  bool
	AnimeOutput       string
	CharacterOutput   string

	// PageSize of the anime search; zero uses the API maximum.
	PageSize int

	// Progress, if set, receives a short status line whenever the run advances.
	Progress func(status string)
}

// Summary describes a finished run.
type Summary struct {
	// RunID tags every log entry of the run.
	RunID           string
	Anime           int
	Characters      int
	AnimeOutput     string
	CharacterOutput string
}

// Build harvests anime and, optionally, their characters and writes both datasets.
// Rows are flushed as they are harvested, so an interrupted run leaves valid partial files.
func Build(ctx context.Context, client *jikan.Client, opts Options) (Summary, error) {
	summary := Summary{RunID: uuid.NewString(), AnimeOutput: opts.AnimeOutput}
	logger := log.WithField("run", summary.RunID)
	ctx = log.NewContext(ctx, logger)

	if opts.Limit <= 0 {
		return summary, fmt.Errorf("anime %w", harvest.ErrInvalidLimit)
	}
	if opts.IncludeCharacters && opts.CharacterLimit <= 0 {
		return summary, fmt.Errorf("character %w", harvest.ErrInvalidLimit)
	}

	progress := func(format string, args ...any) {
		if opts.Progress != nil {
			opts.Progress(fmt.Sprintf(format, args...))
		}
	}

	animes := &harvest.Animes{
		Client:   client,
		Genre:    opts.Genre,
		PageSize: opts.PageSize,
		OnProgress: func(collected int) {
			progress("Harvesting anime %d/%d", collected, opts.Limit)
		},
	}

	logger.WithField("genre", opts.Genre).WithField("limit", opts.Limit).Info("harvesting anime")
	progress("Harvesting anime 0/%d", opts.Limit)

	harvested, err := animes.Harvest(ctx, opts.Limit)
	if err != nil {
		return summary, err
	}

	if err = export.WriteAll(ctx, opts.AnimeOutput, harvested); err != nil {
		return summary, err
	}
	summary.Anime = len(harvested)

	if !opts.IncludeCharacters {
		return summary, nil
	}

	summary.CharacterOutput = opts.CharacterOutput
	summary.Characters, err = writeCharacters(ctx, client, opts, harvested, progress)
	return summary, err
}

func writeCharacters(
	ctx context.Context,
	client *jikan.Client,
	opts Options,
	animes []record.Anime,
	progress func(string, ...any),
) (int, error) {
	out, err := export.Create[record.Character](ctx, opts.CharacterOutput)
	if err != nil {
		return 0, err
	}

	characters := &harvest.Characters{Client: client, Details: opts.CharacterDetails}

	for i, anime := range animes {
		progress("Harvesting characters of %s (%d/%d)", anime.Title, i+1, len(animes))
		log.FromContext(ctx).WithField("anime", anime.AnimeID).Info("harvesting characters")

		// Characters gathered before a failure are still written.
		records, err := characters.Harvest(ctx, anime.AnimeID, opts.CharacterLimit)
		if writeErr := out.Write(records...); writeErr != nil {
			err = errors.Join(err, writeErr)
		}

		if err != nil {
			return out.Written(), errors.Join(err, out.Close())
		}
	}

	return out.Written(), out.Close()
}
