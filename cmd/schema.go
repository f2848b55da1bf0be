package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/anisan-cli/jikancsv/record"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("characters", "c", false, "Generate the JSON Schema of a character row instead of an anime row")
}

// schemaCmd describes the CSV rows as JSON Schema, one property per column.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON Schema of the dataset rows",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.DoNotReference = true
		reflector.Namer = func(t reflect.Type) string {
			return "record." + t.Name()
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("characters")):
			schema = reflector.Reflect(&record.Character{})
		default:
			schema = reflector.Reflect(&record.Anime{})
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
