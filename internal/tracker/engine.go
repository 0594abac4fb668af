// Package tracker drives the watchlist: it prices every position, derives
// values and margins, and hands the result to the report writer.
package tracker

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stock-watchlist-go/internal/config"
	"stock-watchlist-go/internal/holdings"
	"stock-watchlist-go/internal/models"
	"stock-watchlist-go/internal/quote"
	"stock-watchlist-go/internal/report"
)

// Engine runs tracking cycles over the configured watchlist.
type Engine struct {
	logger  *zap.Logger
	cfg     *config.Config
	fetcher quote.Fetcher
	out     io.Writer
}

// NewEngine creates a new tracking engine. Summary lines are printed to out.
func NewEngine(logger *zap.Logger, cfg *config.Config, fetcher quote.Fetcher, out io.Writer) *Engine {
	return &Engine{
		logger:  logger.Named("tracker"),
		cfg:     cfg,
		fetcher: fetcher,
		out:     out,
	}
}

// Summary counts the outcome of one cycle.
type Summary struct {
	Positions int
	Fetched   int
	Failed    int
}

// AllFailed reports whether there was something to price and nothing was.
func (s Summary) AllFailed() bool {
	return s.Positions > 0 && s.Fetched == 0
}

// Run performs one cycle, or keeps cycling every tracker.interval until ctx
// is cancelled. In interval mode a failed cycle is logged and the next one
// still runs; the summary of the last successful cycle is returned.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	summary, err := e.Cycle(ctx)
	interval := e.cfg.Tracker.Interval
	if interval <= 0 {
		return summary, err
	}
	if err != nil {
		e.logger.Error("Cycle failed", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("Starting refresh loop", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Stopping tracker...")
			return summary, nil
		case <-ticker.C:
			s, err := e.Cycle(ctx)
			if err != nil {
				if ctx.Err() == nil {
					e.logger.Error("Cycle failed", zap.Error(err))
				}
				continue
			}
			summary = s
		}
	}
}

// Cycle reads the watchlist, prices it and writes the report.
func (e *Engine) Cycle(ctx context.Context) (Summary, error) {
	positions, err := holdings.ReadFile(e.cfg.Input.Path)
	if err != nil {
		return Summary{}, err
	}
	e.logger.Info("Loaded watchlist", zap.String("path", e.cfg.Input.Path), zap.Int("positions", len(positions)))

	rep, summary := e.Track(ctx, positions)
	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("cycle interrupted: %w", err)
	}

	if missing := incomplete(rep); len(missing) > 0 {
		e.logger.Warn("Report has records without a price", zap.Strings("symbols", missing))
	}

	if err := report.Write(e.cfg.Output.Path, e.cfg.Output.Format, rep); err != nil {
		return summary, err
	}
	e.logger.Info("Report written",
		zap.String("path", e.cfg.Output.Path),
		zap.Int("records", rep.Len()),
		zap.Int("fetched", summary.Fetched),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// incomplete lists the symbols of rep whose record has no price, in
// first-seen order.
func incomplete(rep *report.Report) []string {
	var missing []string
	for _, symbol := range rep.Symbols() {
		if rec, ok := rep.Get(symbol); ok && !rec.Complete() {
			missing = append(missing, symbol)
		}
	}
	return missing
}

type fetchResult struct {
	quote models.Quote
	err   error
}

// Track prices every position and returns the accumulated report. A failed
// fetch is logged and yields a record without price, value or margin.
func (e *Engine) Track(ctx context.Context, positions []models.Position) (*report.Report, Summary) {
	rep := report.New()
	summary := Summary{Positions: len(positions)}

	prefetched := e.prefetch(ctx, positions)

	for i, p := range positions {
		var res fetchResult
		if prefetched != nil {
			res = prefetched[i]
		} else {
			res = e.fetch(ctx, p.Symbol)
		}

		switch {
		case res.err != nil:
			e.logger.Error("Failed to fetch quote", zap.String("symbol", p.Symbol), zap.Error(res.err))
			res.quote = models.Quote{Symbol: p.Symbol}
		case !res.quote.Found():
			e.logger.Error("Fetcher returned no price", zap.String("symbol", p.Symbol))
		}

		rec := Evaluate(p, res.quote)
		if rec.Complete() {
			summary.Fetched++
		} else {
			summary.Failed++
		}
		rep.Add(rec)
		e.print(rec)
	}
	return rep, summary
}

func (e *Engine) fetch(ctx context.Context, symbol string) fetchResult {
	q, err := e.fetcher.Fetch(ctx, symbol)
	return fetchResult{quote: q, err: err}
}

// prefetch fetches all quotes through a bounded pool when more than one
// worker is configured. It returns nil in sequential mode.
func (e *Engine) prefetch(ctx context.Context, positions []models.Position) []fetchResult {
	workers := e.cfg.Tracker.Workers
	if workers <= 1 || len(positions) <= 1 {
		return nil
	}

	results := make([]fetchResult, len(positions))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range positions {
		i, p := i, p
		g.Go(func() error {
			results[i] = e.fetch(ctx, p.Symbol)
			return nil
		})
	}
	_ = g.Wait() // per-symbol errors live in results
	return results
}

func (e *Engine) print(rec models.Record) {
	margin := "n/a"
	if rec.Margin != nil {
		margin = formatFloat(rec.Margin) + "%"
	}
	timeOfDay := "n/a"
	if rec.Time != nil {
		timeOfDay = *rec.Time
	}

	fmt.Fprintf(e.out, "Stock Details for %s: Symbol: %s Current Price: %s Time: %s Original Price: %s Value: %s Original Value: %s Margin: %s\n",
		rec.Symbol,
		rec.Symbol,
		formatFloat(rec.Price),
		timeOfDay,
		formatFloat(&rec.OriginalPrice),
		formatFloat(rec.Value),
		formatFloat(&rec.OriginalValue),
		margin,
	)
}

func formatFloat(f *float64) string {
	if f == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
