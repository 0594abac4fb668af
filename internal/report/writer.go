package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"howett.net/plist"

	"stock-watchlist-go/internal/config"
	"stock-watchlist-go/internal/models"
)

// WriteError wraps any failure to produce the output file. The previous file,
// if any, is left untouched.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func plistFormat(format string) (int, error) {
	switch format {
	case config.FormatBinary, "":
		return plist.BinaryFormat, nil
	case config.FormatXML:
		return plist.XMLFormat, nil
	}
	return 0, fmt.Errorf("unknown output format %q", format)
}

// Write serializes r to path, replacing any previous content atomically.
func Write(path, format string, r *Report) error {
	pf, err := plistFormat(format)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	data, err := plist.Marshal(r.Records(), pf)
	if err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("failed to encode: %w", err)}
	}

	// renameio writes a temp file in the target directory, fsyncs it and
	// renames it over path; the temp file is removed on any error.
	if err := renameio.WriteFile(path, data, 0o644, renameio.WithTempDir(filepath.Dir(path))); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Read decodes a report file written by Write, in either format.
func Read(path string) (map[string]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var records map[string]models.Record
	if _, err := plist.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	return records, nil
}
