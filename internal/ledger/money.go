package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Money is an exact decimal amount. It is stored as the decimal string
// the user typed, so "42.50" round-trips without float drift.
type Money struct {
	d decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d: d}
}

// ParseAmount validates a form value. Anything that is not a strictly
// positive decimal is rejected with ErrInvalidAmount.
func ParseAmount(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || !d.IsPositive() {
		return Money{}, ErrInvalidAmount
	}

	return Money{d: d}, nil
}

func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

func (m Money) IsZero() bool {
	return m.d.IsZero()
}

func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// String keeps decimal's minimal form: "70", not "70.00".
func (m Money) String() string {
	return m.d.String()
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(m.d.String())
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var raw string
	if err := bson.UnmarshalValue(t, data, &raw); err != nil {
		return fmt.Errorf("unmarshaling money value: %w", err)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("parsing money value %q: %w", raw, err)
	}

	m.d = d

	return nil
}
