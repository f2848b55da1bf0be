package cmd

import (
	"github.com/anisan-cli/jikancsv/jikan"
	"github.com/anisan-cli/jikancsv/key"
	"github.com/anisan-cli/jikancsv/network"
	"github.com/anisan-cli/jikancsv/where"
	"github.com/spf13/viper"
)

// newJikanClient builds the API client from the jikan.* and cache.* settings.
func newJikanClient() *jikan.Client {
	opts := []jikan.Option{
		jikan.WithBaseURL(viper.GetString(key.JikanBaseURL)),
		jikan.WithHTTPClient(network.NewClient(viper.GetDuration(key.JikanTimeout))),
		jikan.WithRateLimiter(network.NewRateLimiter(viper.GetDuration(key.JikanInterval))),
		jikan.WithBackoff(viper.GetDuration(key.JikanBackoff)),
		jikan.WithMaxRetries(viper.GetInt(key.JikanMaxRetries)),
	}

	if viper.GetBool(key.CacheEnabled) {
		opts = append(opts, jikan.WithCache(where.Responses(), viper.GetDuration(key.CacheLifetime)))
	}

	return jikan.New(opts...)
}
