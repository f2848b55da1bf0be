package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/jikancsv/filesystem"
	"github.com/anisan-cli/jikancsv/util"
	"github.com/samber/lo"
)

// errDeclined is returned when the user refuses to overwrite existing output.
var errDeclined = errors.New("overwrite declined")

// confirmOverwrite asks before replacing existing files. Non-interactive runs are never prompted.
func confirmOverwrite(paths []string) error {
	if !util.IsTerminal() {
		return nil
	}

	existing := lo.Filter(paths, func(path string, _ int) bool {
		exists, err := filesystem.API().Exists(path)
		return err == nil && exists
	})

	if len(existing) == 0 {
		return nil
	}

	confirm := survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s?", strings.Join(existing, " and ")),
		Default: false,
	}

	var response bool
	if err := survey.AskOne(&confirm, &response); err != nil {
		return err
	}

	if !response {
		return errDeclined
	}

	return nil
}
