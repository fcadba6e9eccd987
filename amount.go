package pocket

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// integerSyntax is the only accepted spelling of an amount: an optional sign and decimal digits.
var integerSyntax = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Amount is a signed integer amount of money, of unbounded size.
//
// An Amount parsed from user input remembers its original spelling (e.g. "+50" or "007")
// so that a stored record is written back exactly as it was typed.
type Amount struct {
	value decimal.Decimal
	text  string
}

// NewAmount returns the amount for v.
func NewAmount(v int64) Amount {
	return Amount{value: decimal.NewFromInt(v)}
}

// ParseAmount parses s as an integer amount.
func ParseAmount(s string) (Amount, error) {
	if !integerSyntax.MatchString(s) {
		return Amount{}, fmt.Errorf("%w: %q", ErrNonIntegerAmount, s)
	}
	v, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrNonIntegerAmount, s, err)
	}
	return Amount{value: v, text: s}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the amount as it was parsed, or its canonical decimal form.
func (a Amount) String() string {
	if a.text != "" {
		return a.text
	}
	return a.value.String()
}

// Add returns a+b. The result has no remembered spelling.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }

// Equal reports whether a and b are the same amount, whatever their spelling.
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool { return a.value.IsZero() }

// IsNegative reports whether a is an expense, i.e. below zero.
func (a Amount) IsNegative() bool { return a.value.IsNegative() }

// Sum returns the total of all amounts, zero for none.
func Sum(amounts ...Amount) Amount {
	total := NewAmount(0)
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
