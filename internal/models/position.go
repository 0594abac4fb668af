package models

// Position is one watchlist row: a held quantity of a symbol and the price
// it was originally bought at.
type Position struct {
	Symbol        string
	Quantity      float64
	OriginalPrice float64
}

// OriginalValue is the acquisition cost of the whole position.
func (p Position) OriginalValue() float64 {
	return p.OriginalPrice * p.Quantity
}
