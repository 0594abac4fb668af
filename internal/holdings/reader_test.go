package holdings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-watchlist-go/internal/models"
)

func TestRead(t *testing.T) {
	t.Run("Rows", func(t *testing.T) {
		in := "AAPL,10,150.25\nMSFT, 2.5 ,300\n\nGOOG,1,99.5,ignored\n"

		positions, err := Read(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, []models.Position{
			{Symbol: "AAPL", Quantity: 10, OriginalPrice: 150.25},
			{Symbol: "MSFT", Quantity: 2.5, OriginalPrice: 300},
			{Symbol: "GOOG", Quantity: 1, OriginalPrice: 99.5},
		}, positions)
	})

	t.Run("Header", func(t *testing.T) {
		in := "symbol,amount,starting price\nAAPL,1,2\n"

		positions, err := Read(strings.NewReader(in))

		require.NoError(t, err)
		assert.Len(t, positions, 1)
		assert.Equal(t, "AAPL", positions[0].Symbol)
	})

	t.Run("HeaderOnlyOnFirstRow", func(t *testing.T) {
		in := "AAPL,1,2\nsymbol,amount,starting price\n"

		_, err := Read(strings.NewReader(in))

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Line)
	})

	t.Run("Empty", func(t *testing.T) {
		positions, err := Read(strings.NewReader(""))
		assert.NoError(t, err)
		assert.Empty(t, positions)
	})

	t.Run("DuplicateSymbolsKept", func(t *testing.T) {
		positions, err := Read(strings.NewReader("AAA,1,2\nAAA,3,4\n"))
		require.NoError(t, err)
		assert.Len(t, positions, 2)
	})
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		line  int
		field string
	}{
		{"TooFewFields", "AAPL,1,2\nMSFT,3\n", 2, ""},
		{"BadQuantity", "AAPL,ten,2\n", 1, "quantity"},
		{"BadPrice", "AAPL,1,2\nMSFT,3,$300\n", 2, "original price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions, err := Read(strings.NewReader(tt.in))

			assert.Nil(t, positions)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, tt.field, perr.Field)
		})
	}

	t.Run("TooFewFieldsSentinel", func(t *testing.T) {
		_, err := Read(strings.NewReader("AAPL\n"))
		assert.True(t, errors.Is(err, ErrTooFewFields))
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "StockInfo.csv")
	require.NoError(t, os.WriteFile(path, []byte("AAA,10,100.0\nBBB,5,50.0\n"), 0o644))

	positions, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, positions, 2)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open holdings")
}
