// Package quote scrapes current prices from a public quote page.
package quote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"stock-watchlist-go/internal/config"
	"stock-watchlist-go/internal/models"
)

// TimeLayout is the 12-hour wall-clock format stored with each quote.
const TimeLayout = "03:04 PM"

// ErrUnexpectedStatus is wrapped when the quote page answers with anything but 200.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Fetcher returns the current quote for a symbol.
// On failure the returned Quote has no price and err is a *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (models.Quote, error)
}

// FetchError reports why a symbol could not be priced.
type FetchError struct {
	Symbol     string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client scrapes the quote page over HTTP.
// It implements the Fetcher interface.
type Client struct {
	client  *resty.Client
	path    string
	logger  *zap.Logger
	limiter *rate.Limiter
	now     func() time.Time
}

// ensure Client implements the interface
var _ Fetcher = (*Client)(nil)

// NewClient creates a quote page client.
func NewClient(cfg *config.Quote, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept-Language", cfg.AcceptLanguage)

	return &Client{
		client:  client,
		path:    cfg.Path,
		logger:  logger.Named("quote"),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
		now:     time.Now,
	}
}

// Fetch performs a single GET of the quote page for symbol and extracts the
// live price. Failures are not retried.
func (c *Client) Fetch(ctx context.Context, symbol string) (models.Quote, error) {
	missing := models.Quote{Symbol: symbol}

	if err := c.limiter.Wait(ctx); err != nil {
		return missing, &FetchError{Symbol: symbol, Err: fmt.Errorf("rate limiter wait failed: %w", err)}
	}

	c.logger.Debug("Fetching quote page", zap.String("symbol", symbol))
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		Get(c.path)
	if err != nil {
		return missing, &FetchError{Symbol: symbol, Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return missing, &FetchError{
			Symbol:     symbol,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status()),
		}
	}

	price, err := ExtractPrice(bytes.NewReader(resp.Body()))
	if err != nil {
		return missing, &FetchError{Symbol: symbol, StatusCode: resp.StatusCode(), Err: err}
	}

	q := models.NewQuote(symbol, price, c.now().Format(TimeLayout))
	c.logger.Debug("Fetched quote", zap.String("symbol", symbol), zap.Float64("price", price))
	return q, nil
}
