package checkout

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	ErrNotPositive = errors.New("total price must be a positive number")
	ErrNotNumeric  = errors.New("total price is not a number")
	ErrTooLarge    = errors.New("total price is out of range")
)

var hundred = big.NewInt(100)

// Converter turns a source currency amount into destination minor units at a
// fixed rate. All arithmetic is exact.
type Converter struct {
	rate *big.Rat
}

func NewConverter(rate *big.Rat) *Converter {
	return &Converter{rate: new(big.Rat).Set(rate)}
}

// Conversion is the result of converting one amount.
type Conversion struct {
	Source     *big.Rat
	Dest       *big.Rat
	MinorUnits int64
}

// SourceString formats the source amount with two decimals.
func (c Conversion) SourceString() string { return c.Source.FloatString(2) }

// DestString formats the destination amount rounded to two decimals.
func (c Conversion) DestString() string { return c.Dest.FloatString(2) }

// ParseAmount reads a decimal amount such as "29100", "12500.5" or "1.2e4".
func ParseAmount(text string) (*big.Rat, error) {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsRune(s, '/') {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}
	// ParseFloat rejects exponents that would make the exact value huge.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}
	return r, nil
}

// ToMinorUnits multiplies amount by the rate and by 100, then truncates.
func (c *Converter) ToMinorUnits(amount *big.Rat) (Conversion, error) {
	if amount == nil || amount.Sign() <= 0 {
		return Conversion{}, NewInvalidAmountError(ErrNotPositive)
	}

	dest := new(big.Rat).Mul(amount, c.rate)
	cents := new(big.Rat).Mul(dest, new(big.Rat).SetInt(hundred))
	truncated := new(big.Int).Quo(cents.Num(), cents.Denom())
	if !truncated.IsInt64() {
		return Conversion{}, NewInvalidAmountError(ErrTooLarge)
	}

	return Conversion{
		Source:     new(big.Rat).Set(amount),
		Dest:       dest,
		MinorUnits: truncated.Int64(),
	}, nil
}

// Convert parses text and converts it.
func (c *Converter) Convert(text string) (Conversion, error) {
	amount, err := ParseAmount(text)
	if err != nil {
		return Conversion{}, NewInvalidAmountError(err)
	}
	return c.ToMinorUnits(amount)
}
