package models

// Quote is the current price of a symbol as scraped from the quote page.
// Price and FetchedAt are nil when the fetch failed.
type Quote struct {
	Symbol    string
	Price     *float64
	FetchedAt *string // 12-hour "03:04 PM" wall-clock time
}

// NewQuote returns a populated quote.
func NewQuote(symbol string, price float64, fetchedAt string) Quote {
	return Quote{Symbol: symbol, Price: &price, FetchedAt: &fetchedAt}
}

// Found reports whether the quote carries a price.
func (q Quote) Found() bool {
	return q.Price != nil
}
