// Package holdings reads the watchlist CSV: one position per row with the
// columns symbol, quantity held and original price per unit.
package holdings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"stock-watchlist-go/internal/models"
)

const minFields = 3

// ErrTooFewFields is returned when a row has fewer than three columns.
var ErrTooFewFields = errors.New("row has fewer than 3 fields")

// ParseError describes a row that could not be turned into a Position.
type ParseError struct {
	Line  int    // 1-based line in the input
	Field string // column name, empty for row-level errors
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadFile parses the watchlist at path.
func ReadFile(path string) ([]models.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holdings: %w", err)
	}
	defer f.Close()

	positions, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read holdings %s: %w", path, err)
	}
	return positions, nil
}

// Read parses positions from r in file order. Any malformed row fails the
// whole read; no partial result is returned. A leading row whose numeric
// columns are both non-numeric is taken as a header and skipped.
func Read(r io.Reader) ([]models.Position, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width is checked below

	var positions []models.Position
	first := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var cerr *csv.ParseError
			if errors.As(err, &cerr) {
				return nil, &ParseError{Line: cerr.Line, Err: cerr.Err}
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}

		p, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

func parseRow(row []string, line int) (models.Position, error) {
	if len(row) < minFields {
		return models.Position{}, &ParseError{Line: line, Err: ErrTooFewFields}
	}

	quantity, err := parseNumber(row[1])
	if err != nil {
		return models.Position{}, &ParseError{Line: line, Field: "quantity", Err: err}
	}
	price, err := parseNumber(row[2])
	if err != nil {
		return models.Position{}, &ParseError{Line: line, Field: "original price", Err: err}
	}

	return models.Position{
		Symbol:        row[0],
		Quantity:      quantity,
		OriginalPrice: price,
	}, nil
}

func parseNumber(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

func isHeader(row []string) bool {
	if len(row) < minFields {
		return false
	}
	_, errQty := parseNumber(row[1])
	_, errPrice := parseNumber(row[2])
	return errQty != nil && errPrice != nil
}
