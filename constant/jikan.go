package constant

// Jikan API defaults.
const (
	// JikanBaseURL is the root of the Jikan v4 REST API.
	JikanBaseURL = "https://api.jikan.moe/v4"

	// GenreIsekai is the Jikan genre id of the Isekai theme.
	GenreIsekai = 62

	// JikanMaxPageSize is the largest page the search endpoint will serve.
	JikanMaxPageSize = 25
)
