package models

// Record is the per-symbol report entry combining a Position with its Quote.
// Optional fields are nil when no price was fetched, or for Margin when the
// original price is zero. The plist tags are the keys read by the home screen
// widget.
type Record struct {
	Symbol        string   `plist:"Symbol"`
	Price         *float64 `plist:"Price,omitempty"`
	Time          *string  `plist:"Time,omitempty"`
	OriginalPrice float64  `plist:"Original Price"`
	Value         *float64 `plist:"Value,omitempty"`
	OriginalValue float64  `plist:"Original Value"`
	Margin        *float64 `plist:"Margin,omitempty"` // percent
}

// Complete reports whether the record has a price and a value.
func (r Record) Complete() bool {
	return r.Price != nil && r.Value != nil
}
