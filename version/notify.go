package version

import (
	"context"
	"fmt"
	"time"

	"github.com/anisan-cli/jikancsv/color"
	"github.com/anisan-cli/jikancsv/constant"
	"github.com/anisan-cli/jikancsv/icon"
	"github.com/anisan-cli/jikancsv/key"
	"github.com/anisan-cli/jikancsv/style"
	"github.com/anisan-cli/jikancsv/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release exists. Failures are silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, latest)),
	)
}
