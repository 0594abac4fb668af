// Package report accumulates per-symbol records and persists them as a
// property list.
package report

import "stock-watchlist-go/internal/models"

// Report is the result of one tracking cycle keyed by symbol. Adding a
// symbol twice keeps the last record but the first position in Symbols.
type Report struct {
	order   []string
	records map[string]models.Record
}

// New returns an empty report.
func New() *Report {
	return &Report{records: make(map[string]models.Record)}
}

// Add stores rec under its symbol.
func (r *Report) Add(rec models.Record) {
	if _, ok := r.records[rec.Symbol]; !ok {
		r.order = append(r.order, rec.Symbol)
	}
	r.records[rec.Symbol] = rec
}

// Get returns the record for symbol.
func (r *Report) Get(symbol string) (models.Record, bool) {
	rec, ok := r.records[symbol]
	return rec, ok
}

// Len is the number of distinct symbols.
func (r *Report) Len() int { return len(r.order) }

// Symbols lists symbols in first-seen order.
func (r *Report) Symbols() []string {
	return append([]string(nil), r.order...)
}

// Records returns a copy of the symbol to record mapping.
func (r *Report) Records() map[string]models.Record {
	out := make(map[string]models.Record, len(r.records))
	for k, v := range r.records {
		out[k] = v
	}
	return out
}
