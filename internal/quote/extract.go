package quote

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// priceSelector locates the live price widget on the quote page. The price
// text lives in the first span below it.
const priceSelector = "fin-streamer.livePrice"

var (
	ErrPriceTagNotFound  = errors.New("price tag not found")
	ErrPriceSpanNotFound = errors.New("price span not found")
	ErrInvalidPrice      = errors.New("invalid price")
)

// ExtractPrice parses the quote page markup in r and returns the live price.
func ExtractPrice(r io.Reader) (float64, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0, fmt.Errorf("failed to parse page: %w", err)
	}

	tag := doc.Find(priceSelector).First()
	if tag.Length() == 0 {
		return 0, ErrPriceTagNotFound
	}
	span := tag.Find("span").First()
	if span.Length() == 0 {
		return 0, ErrPriceSpanNotFound
	}

	return parsePrice(span.Text())
}

// parsePrice accepts "1,234.56" style text.
func parsePrice(text string) (float64, error) {
	text = strings.TrimSpace(text)
	d, err := decimal.NewFromString(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidPrice, text)
	}
	price, _ := d.Float64()
	return price, nil
}
