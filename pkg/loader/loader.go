// Package loader reads input files into normalized records.
//
// Failures are contained per file: a missing or unreadable file, or a row
// that cannot be normalized, is logged and the loader moves on to the next
// path. Rows collected from a file before its failing row are kept.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"payreport/pkg/parser"
	"payreport/pkg/schema"
)

// ErrFileNotFound marks a path that does not exist.
var ErrFileNotFound = errors.New("file not found")

// FileError is a failure that ended processing of one input file.
// Row is the line of the failing row, or 0 for file-level failures.
type FileError struct {
	Path string
	Row  int
	Err  error
}

func (e *FileError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Loader loads files in order and logs per-file failures.
type Loader struct {
	logger *zap.Logger
}

// New returns a Loader. A nil logger discards diagnostics.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load returns the records of all paths, in path order then row order.
// The error combines every per-file failure (see multierr.Errors); it is
// informational and the returned records are usable regardless.
func (l *Loader) Load(paths []string) ([]schema.Record, error) {
	var (
		records []schema.Record
		errs    error
	)

	for _, path := range paths {
		var err error
		records, err = l.loadFile(records, path)
		if err == nil {
			continue
		}
		errs = multierr.Append(errs, err)

		if errors.Is(err, ErrFileNotFound) {
			l.logger.Error("input file not found", zap.String("path", path))
			continue
		}
		fields := []zap.Field{zap.String("path", path)}
		var fe *FileError
		if errors.As(err, &fe) && fe.Row > 0 {
			fields = append(fields, zap.Int("row", fe.Row))
			err = fe.Err
		}
		fields = append(fields, zap.Error(err))
		l.logger.Error("failed to process input file", fields...)
	}

	return records, errs
}

// loadFile appends the records of path to dst. On failure it returns dst
// with the rows accepted so far.
func (l *Loader) loadFile(dst []schema.Record, path string) ([]schema.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dst, &FileError{Path: path, Err: ErrFileNotFound}
		}
		return dst, &FileError{Path: path, Err: err}
	}

	table, err := parser.Parse(data)
	if err != nil {
		return dst, &FileError{Path: path, Err: err}
	}
	l.logger.Debug("parsed input file",
		zap.String("path", path),
		zap.String("encoding", table.Encoding),
		zap.Int("rows", len(table.Rows)),
		zap.Int("skipped", table.Skipped),
	)

	for _, row := range table.Rows {
		rec, err := schema.NormalizeRow(row.Fields)
		if err != nil {
			return dst, &FileError{Path: path, Row: row.Line, Err: err}
		}
		rec.SourceFile = path
		rec.SourceRow = row.Line
		dst = append(dst, rec)
	}
	return dst, nil
}
