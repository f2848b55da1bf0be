// Package cmd implements the command-line interface for jikancsv.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anisan-cli/jikancsv/color"
	"github.com/anisan-cli/jikancsv/constant"
	"github.com/anisan-cli/jikancsv/dataset"
	"github.com/anisan-cli/jikancsv/harvest"
	"github.com/anisan-cli/jikancsv/icon"
	"github.com/anisan-cli/jikancsv/key"
	"github.com/anisan-cli/jikancsv/log"
	"github.com/anisan-cli/jikancsv/style"
	"github.com/anisan-cli/jikancsv/util"
	"github.com/anisan-cli/jikancsv/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().IntP("limit", "l", 10, "Maximum number of anime to harvest")
	lo.Must0(viper.BindPFlag(key.HarvestLimit, rootCmd.Flags().Lookup("limit")))

	rootCmd.Flags().StringP("genre", "g", "62", "Jikan genre id or name to filter anime by")
	lo.Must0(viper.BindPFlag(key.HarvestGenre, rootCmd.Flags().Lookup("genre")))

	rootCmd.Flags().BoolP("characters", "c", false, "Also harvest the characters of every anime")
	lo.Must0(viper.BindPFlag(key.CharactersInclude, rootCmd.Flags().Lookup("characters")))

	rootCmd.Flags().IntP("character-limit", "L", 10, "Maximum number of characters per anime")
	lo.Must0(viper.BindPFlag(key.CharactersLimit, rootCmd.Flags().Lookup("character-limit")))

	rootCmd.Flags().BoolP("character-details", "d", true, "Fetch the detail page of every character")
	lo.Must0(viper.BindPFlag(key.CharactersDetails, rootCmd.Flags().Lookup("character-details")))

	rootCmd.Flags().StringP("anime-file", "a", "anime.csv", "Path of the anime CSV file")
	lo.Must0(viper.BindPFlag(key.OutputAnime, rootCmd.Flags().Lookup("anime-file")))

	rootCmd.Flags().StringP("character-file", "f", "character.csv", "Path of the character CSV file")
	lo.Must0(viper.BindPFlag(key.OutputCharacters, rootCmd.Flags().Lookup("character-file")))

	rootCmd.Flags().BoolP("yes", "y", false, "Overwrite existing output files without asking")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

}

// rootCmd harvests the datasets.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Harvest Isekai anime and their characters from MyAnimeList into CSV files",
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Harvest anime and character datasets from the Jikan API"),
	Example: fmt.Sprintf("  %[1]s --limit 50\n  %[1]s -c -L 5 --genre fantasy", constant.App),
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := run(ctx, lo.Must(cmd.Flags().GetBool("yes")))
		if errors.Is(err, errDeclined) {
			return
		}
		handleErr(err)
	},
}

// run is the whole harvest: resolve the genre, collect, write and report.
func run(ctx context.Context, yes bool) error {
	client := newJikanClient()

	genre, err := harvest.ResolveGenre(ctx, client, viper.GetString(key.HarvestGenre))
	if err != nil {
		return err
	}

	opts := dataset.Options{
		Limit:             viper.GetInt(key.HarvestLimit),
		Genre:             genre,
		IncludeCharacters: viper.GetBool(key.CharactersInclude),
		CharacterLimit:    viper.GetInt(key.CharactersLimit),
		CharacterDetails:  viper.GetBool(key.CharactersDetails),
		AnimeOutput:       viper.GetString(key.OutputAnime),
		CharacterOutput:   viper.GetString(key.OutputCharacters),
		PageSize:          viper.GetInt(key.JikanPageSize),
	}

	outputs := []string{opts.AnimeOutput}
	if opts.IncludeCharacters {
		outputs = append(outputs, opts.CharacterOutput)
	}

	if !yes && viper.GetBool(key.OutputConfirmOverwrite) {
		if err = confirmOverwrite(outputs); err != nil {
			return err
		}
	}

	erase := func() {}
	if util.IsTerminal() {
		opts.Progress = func(status string) {
			erase()
			erase = util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), status))
		}
	}

	summary, err := dataset.Build(ctx, client, opts)
	erase()

	if err != nil {
		if ctx.Err() != nil {
			fmt.Printf("%s interrupted, rows written so far are kept\n", style.Fg(style.WarningColor)(icon.Get(icon.Warn)))
		}
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(s dataset.Summary) {
	accent := style.Fg(style.AccentColor)

	fmt.Printf(
		"%s %s %s written to %s\n",
		style.Fg(style.SuccessColor)(icon.Get(icon.Success)),
		icon.Get(icon.Anime),
		util.Quantify(s.Anime, "anime", "anime"),
		accent(s.AnimeOutput),
	)

	if s.CharacterOutput != "" {
		fmt.Printf(
			"%s %s %s written to %s\n",
			style.Fg(style.SuccessColor)(icon.Get(icon.Success)),
			icon.Get(icon.Character),
			util.Quantify(s.Characters, "character", "characters"),
			accent(s.CharacterOutput),
		)
	}

	log.WithField("run", s.RunID).WithField("anime", s.Anime).WithField("characters", s.Characters).Info("harvest finished")
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
