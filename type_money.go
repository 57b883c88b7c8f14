package dashboard

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a balance in the single display currency.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic(fmt.Sprintf("unsupported money value %T", value))
	}
}

// ParseMoney parses a decimal string such as "-1234.5".
func ParseMoney(str string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

// Currency formats money for display, the zero Currency formats in euros.
type Currency struct{ c *money.Currency }

// DefaultCurrency is the euro.
func DefaultCurrency() Currency { return Currency{c: money.GetCurrency(money.EUR)} }

// LookupCurrency returns the currency of ISO code, case insensitive.
func LookupCurrency(code string) (Currency, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return Currency{}, fmt.Errorf("unknown currency %q", code)
	}
	return Currency{c: cur}, nil
}

// Code returns the ISO code of the currency.
func (c Currency) Code() string {
	if c.c == nil {
		return money.EUR
	}
	return c.c.Code
}

// Format formats m with 2 decimals, a thousand separator, and a trailing currency symbol.
func (c Currency) Format(m Money) string {
	cur := c.c
	if cur == nil {
		cur = money.GetCurrency(money.EUR)
	}
	f := money.NewFormatter(2, cur.Decimal, cur.Thousand, cur.Grapheme, "1$")
	return f.Format(m.value.Shift(2).Round(0).IntPart())
}

// String formats the money in the default currency.
func (m Money) String() string { return DefaultCurrency().Format(m) }

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) Cmp(n Money) int { return m.value.Cmp(n.value) }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Round() Money { return Money{value: m.value.Round(2)} }

// Sum adds all the amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Mean returns the arithmetic mean of the amounts, zero when there are none.
func Mean(amounts ...Money) Money {
	if len(amounts) == 0 {
		return Money{}
	}
	return Money{value: Sum(amounts...).value.Div(decimal.NewFromInt(int64(len(amounts))))}
}

// MarshalJSON writes the amount as a json number with 2 decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(2)), nil
}

// UnmarshalJSON reads a json number (or a quoted decimal).
func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := decimal.NewFromString(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	m.value = v
	return nil
}
