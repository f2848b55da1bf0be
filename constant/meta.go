// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "jikancsv"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// Repository is the GitHub owner/name the releases are published under.
	Repository = "anisan-cli/jikancsv"

	// UserAgent identifies the application to the Jikan API.
	UserAgent = App + "/" + Version + " (+https://github.com/" + Repository + ")"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Logo is printed above the root command's help.
//
//go:embed ascii.txt
var Logo string
