// Package main is the entry point for jikancsv.
package main

import (
	"github.com/anisan-cli/jikancsv/cmd"
	"github.com/anisan-cli/jikancsv/config"
	"github.com/anisan-cli/jikancsv/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
