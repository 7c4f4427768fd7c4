package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesCurrency(t *testing.T) {
	_, err := New(100, "US")
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	m, err := New(100, "usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)
}

func TestAddRequiresSameCurrency(t *testing.T) {
	_, err := Must(100, "USD").Add(Must(100, "EUR"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	sum, err := Must(100, "USD").Add(Must(250, "USD"))
	require.NoError(t, err)
	assert.Equal(t, int64(350), sum.Amount)
}

func TestPercentRoundsToNearestCent(t *testing.T) {
	assert.Equal(t, int64(1000), Must(10000, "USD").Percent(10).Amount)
	assert.Equal(t, int64(495), Must(9900, "USD").Percent(5).Amount)
	// 333 * 10% = 33.3 -> 33
	assert.Equal(t, int64(33), Must(333, "USD").Percent(10).Amount)
	// 335 * 10% = 33.5 -> 34
	assert.Equal(t, int64(34), Must(335, "USD").Percent(10).Amount)
}

func TestMultiplyAndSub(t *testing.T) {
	total := Must(1500, "USD").Multiply(4)
	assert.Equal(t, int64(6000), total.Amount)

	diff, err := total.Sub(Must(1000, "USD"))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), diff.Amount)
	assert.False(t, diff.IsZero())
}
