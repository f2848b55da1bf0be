// Package filesystem holds the afero backend every file access in jikancsv goes through.
// Tests swap it for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the current backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches back to the real filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Set switches to fs, e.g. a read-only or base-path wrapper.
func Set(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
