// Package export writes flattened records to CSV files.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anisan-cli/jikancsv/filesystem"
	"github.com/anisan-cli/jikancsv/log"
	"github.com/gocarina/gocsv"
	"github.com/spf13/afero"
)

// ErrClosed is returned when writing to a closed Writer.
var ErrClosed = errors.New("writer is closed")

// Writer streams records of type T into a CSV file.
// The header, taken from the csv struct tags of T, is written exactly once.
type Writer[T any] struct {
	path    string
	logger  log.Entry
	file    afero.File
	out     *gocsv.SafeCSVWriter
	started bool
	closed  bool
	written int
}

// Create truncates or creates the file at path, creating missing parent directories.
// Log entries of the writer inherit the fields of the entry carried by ctx.
func Create[T any](ctx context.Context, path string) (*Writer[T], error) {
	fs := filesystem.API()

	if dir := filepath.Dir(path); dir != "" {
		if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	return &Writer[T]{
		path:   path,
		logger: log.FromContext(ctx).WithField("file", path),
		file:   file,
		out:    gocsv.NewSafeCSVWriter(csv.NewWriter(file)),
	}, nil
}

// Path returns the file the writer writes to.
func (w *Writer[T]) Path() string {
	return w.path
}

// Written returns how many records have been written so far.
func (w *Writer[T]) Written() int {
	return w.written
}

// Write appends records and flushes them to the file.
// The header precedes the first batch.
func (w *Writer[T]) Write(records ...T) error {
	if w.closed {
		return ErrClosed
	}

	if len(records) == 0 {
		return nil
	}

	var err error
	if w.started {
		err = gocsv.MarshalCSVWithoutHeaders(records, w.out)
	} else {
		err = gocsv.MarshalCSV(records, w.out)
	}

	if err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}

	w.started = true
	w.written += len(records)
	w.logger.WithField("rows", len(records)).Debug("rows written")
	return nil
}

// Close writes the header if nothing was written yet, then closes the file.
// Closing twice is a no-op.
func (w *Writer[T]) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if !w.started {
		if err := gocsv.MarshalCSV([]T{}, w.out); err != nil {
			_ = w.file.Close()
			return fmt.Errorf("write header to %s: %w", w.path, err)
		}
		w.started = true
	}

	w.out.Flush()
	if err := w.out.Error(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("flush %s: %w", w.path, err)
	}

	return w.file.Close()
}

// WriteAll writes records, header included, to the file at path in one go.
func WriteAll[T any](ctx context.Context, path string, records []T) error {
	w, err := Create[T](ctx, path)
	if err != nil {
		return err
	}

	if err = w.Write(records...); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}
