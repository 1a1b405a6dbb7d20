package models

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a currency amount in minor units (cents). It is stored as a
// bigint and rendered in JSON as a decimal number with two places.
type Money int64

// MaxMoney bounds entry amounts and wallet balances in either direction.
const MaxMoney Money = 1_000_000_000_000_000

var ErrMoneyOutOfRange = errors.New("amount out of range")

var maxCents = decimal.NewFromInt(int64(MaxMoney))

// MoneyFromDecimal rounds d to two places and converts it to cents. Values
// beyond MaxMoney are rejected before the int64 conversion.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Round(2).Shift(2)
	if cents.Abs().Cmp(maxCents) > 0 {
		return 0, ErrMoneyOutOfRange
	}
	return Money(cents.IntPart()), nil
}

// ParseMoney parses "12.5", "12.50" or "-3" into Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	m, err := MoneyFromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return m, nil
}

// NewMoney builds Money from whole units and cents, e.g. NewMoney(12, 50) = 12.50.
func NewMoney(units, cents int64) Money {
	if units < 0 {
		return Money(units*100 - cents)
	}
	return Money(units*100 + cents)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) Cents() int64 {
	return int64(m)
}

// InRange reports whether |m| <= MaxMoney.
func (m Money) InRange() bool {
	return m >= -MaxMoney && m <= MaxMoney
}

func (m Money) Neg() Money {
	return -m
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	data = bytes.Trim(data, `"`)
	parsed, err := ParseMoney(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
