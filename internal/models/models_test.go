package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	q := NewQuote("AAA", 110.5, "02:00 PM")
	assert.True(t, q.Found())
	assert.Equal(t, 110.5, *q.Price)
	assert.Equal(t, "02:00 PM", *q.FetchedAt)

	missing := Quote{Symbol: "BBB"}
	assert.False(t, missing.Found())
}

func TestPosition_OriginalValue(t *testing.T) {
	p := Position{Symbol: "AAA", Quantity: 2.5, OriginalPrice: 40}
	assert.InDelta(t, 100.0, p.OriginalValue(), 1e-9)
}
