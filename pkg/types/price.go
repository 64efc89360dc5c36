package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a non-negative monetary amount stored as numeric(10,2).
// JSON input accepts both a number and a decimal string; output is always
// the canonical two-decimal string, so 19.99 and "19.99" round-trip
// identically.
type Price struct {
	amount decimal.Decimal
}

// NewPrice wraps a decimal amount without validation.
func NewPrice(amount decimal.Decimal) Price {
	return Price{amount: amount}
}

// ParsePrice converts raw input into a Price, rejecting negatives.
func ParsePrice(value string) (Price, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", value, err)
	}
	if amount.IsNegative() {
		return Price{}, fmt.Errorf("price cannot be negative")
	}
	return Price{amount: amount}, nil
}

// Decimal returns the underlying amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String returns the canonical two-decimal representation.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// Equal reports whether two prices represent the same amount.
func (p Price) Equal(other Price) bool {
	return p.amount.Equal(other.amount)
}

// UnmarshalJSON accepts "19.99" and 19.99 interchangeably.
func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return fmt.Errorf("price cannot be null")
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalJSON emits the canonical decimal string.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Value implements driver.Valuer for GORM.
func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner for GORM.
func (p *Price) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Price{}
		return nil
	case []byte:
		parsed, err := ParsePrice(string(v))
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case string:
		parsed, err := ParsePrice(v)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case float64:
		*p = Price{amount: decimal.NewFromFloat(v)}
		return nil
	case int64:
		*p = Price{amount: decimal.NewFromInt(v)}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Price", src)
	}
}
