package tracker

import "stock-watchlist-go/internal/models"

// Evaluate combines a position with its quote. Without a price the record
// only carries the original figures; without an original price there is no
// margin.
func Evaluate(p models.Position, q models.Quote) models.Record {
	rec := models.Record{
		Symbol:        p.Symbol,
		Time:          q.FetchedAt,
		OriginalPrice: p.OriginalPrice,
		OriginalValue: p.OriginalValue(),
	}
	if !q.Found() {
		rec.Time = nil
		return rec
	}

	price := *q.Price
	value := price * p.Quantity
	rec.Price = &price
	rec.Value = &value

	if p.OriginalPrice != 0 {
		margin := (price - p.OriginalPrice) / p.OriginalPrice * 100
		rec.Margin = &margin
	}
	return rec
}
