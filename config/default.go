// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/anisan-cli/jikancsv/color"
	"github.com/anisan-cli/jikancsv/constant"
	"github.com/anisan-cli/jikancsv/key"
	"github.com/anisan-cli/jikancsv/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.HarvestLimit, 10, "Number of anime to collect")
	register(key.HarvestGenre, strconv.Itoa(constant.GenreIsekai), "Jikan genre filter for the anime search.\nEither a numeric genre id or a genre name (e.g. isekai)")
	register(key.CharactersInclude, false, "Also collect the characters of every harvested anime")
	register(key.CharactersLimit, 10, "Maximum number of characters to collect per anime")
	register(key.CharactersDetails, true, "Fetch each character's detail page for kanji name, nicknames and biography.\nOne extra request per character")
	register(key.OutputAnime, "anime.csv", "Path of the anime dataset")
	register(key.OutputCharacters, "character.csv", "Path of the character dataset")
	register(key.OutputConfirmOverwrite, false, "Ask before overwriting an existing dataset file")
	register(key.JikanBaseURL, constant.JikanBaseURL, "Base URL of the Jikan v4 API")
	register(key.JikanInterval, "1s", "Minimum interval between two API requests")
	register(key.JikanBackoff, "2s", "Wait before retrying a rate limited (429) request when the API gives no Retry-After")
	register(key.JikanMaxRetries, 5, "How many times a rate limited request is retried before giving up")
	register(key.JikanPageSize, constant.JikanMaxPageSize, "Anime per search page. From 1 to 25")
	register(key.JikanTimeout, "1m", "Timeout of a single HTTP request")
	register(key.CacheEnabled, true, "Cache successful API responses on disk")
	register(key.CacheLifetime, "24h", "How long the response cache stays valid")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsKeep, 7, "Days to keep rotated log files")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release when showing help or version")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
