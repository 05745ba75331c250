package checkout

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	conv := NewConverter(big.NewRat(1, 291))

	tests := []struct {
		amount string
		cents  int64
		dest   string
	}{
		{"29100", 10000, "100.00"},
		{"291", 100, "1.00"},
		// 0.34 cents truncates to zero.
		{"1", 0, "0.00"},
		// 99.66 cents truncates while the display amount rounds.
		{"290", 99, "1.00"},
		{"12500.5", 4295, "42.96"},
		{"1.455e4", 5000, "50.00"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := conv.Convert(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.cents, got.MinorUnits)
			assert.Equal(t, tt.dest, got.DestString())
		})
	}
}

func TestToMinorUnitsTruncates(t *testing.T) {
	conv := NewConverter(big.NewRat(1, 1))
	for _, amount := range []string{"0.019", "1.999", "10.005", "123.456"} {
		got, err := conv.Convert(amount)
		require.NoError(t, err)

		want, _ := new(big.Rat).SetString(amount)
		want.Mul(want, big.NewRat(100, 1))
		floor := new(big.Int).Quo(want.Num(), want.Denom())
		assert.Equal(t, floor.Int64(), got.MinorUnits, amount)
		assert.GreaterOrEqual(t, got.MinorUnits, int64(0))
	}
}

func TestToMinorUnitsRejectsNonPositive(t *testing.T) {
	conv := NewConverter(big.NewRat(1, 291))
	for _, amount := range []string{"0", "-1", "-29100", "0.0"} {
		_, err := conv.Convert(amount)
		require.Error(t, err, amount)

		var ce *Error
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, KindInvalidAmount, ce.Kind)
		assert.ErrorIs(t, err, ErrNotPositive)
	}

	_, err := conv.ToMinorUnits(nil)
	assert.ErrorIs(t, err, ErrNotPositive)
}

func TestConvertRejectsNonNumeric(t *testing.T) {
	conv := NewConverter(big.NewRat(1, 291))
	for _, amount := range []string{"", "abc", "1/2", "NaN", "Inf", "1e999", "true"} {
		_, err := conv.Convert(amount)
		require.Error(t, err, amount)
		assert.Equal(t, KindInvalidAmount, AsError(err).Kind)
		assert.ErrorIs(t, err, ErrNotNumeric)
	}
}

func TestConverterCopiesRate(t *testing.T) {
	rate := big.NewRat(1, 2)
	conv := NewConverter(rate)
	rate.SetInt64(1000)

	got, err := conv.Convert("2")
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.MinorUnits)
}
