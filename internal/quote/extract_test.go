package quote

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPrice(t *testing.T) {
	t.Run("FirstMatch", func(t *testing.T) {
		page := `<fin-streamer class="livePrice"><span> 12.5 </span></fin-streamer>
<fin-streamer class="livePrice"><span>99</span></fin-streamer>`

		price, err := ExtractPrice(strings.NewReader(page))

		require.NoError(t, err)
		assert.Equal(t, 12.5, price)
	})

	t.Run("ThousandsSeparator", func(t *testing.T) {
		page := `<div><fin-streamer class="price livePrice"><div><span>1,234.56</span></div></fin-streamer></div>`

		price, err := ExtractPrice(strings.NewReader(page))

		require.NoError(t, err)
		assert.InDelta(t, 1234.56, price, 1e-9)
	})

	t.Run("OtherStreamersIgnored", func(t *testing.T) {
		page := `<fin-streamer class="priceChange"><span>+1.20</span></fin-streamer>`

		_, err := ExtractPrice(strings.NewReader(page))

		assert.ErrorIs(t, err, ErrPriceTagNotFound)
	})

	t.Run("EmptySpan", func(t *testing.T) {
		page := `<fin-streamer class="livePrice"><span></span></fin-streamer>`

		_, err := ExtractPrice(strings.NewReader(page))

		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}
