package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	dErrors "realestate/pkg/domain-errors"
)

var groupSeparator, decimalSeparator = localeSeparators(message.NewPrinter(language.Russian))

// localeSeparators reads the digit-group and decimal separators off a
// formatted sample ("10 000,5" for Russian).
func localeSeparators(pr *message.Printer) (group, dec string) {
	sample := []rune(pr.Sprintf("%.1f", 10000.5))
	return string(sample[2]), string(sample[len(sample)-2])
}

// Price is a strictly positive amount in roubles.
type Price struct {
	value decimal.Decimal
	set   bool
}

func NewPrice(value decimal.Decimal) (Price, error) {
	if !value.IsPositive() {
		return Price{}, dErrors.New(dErrors.CodeValidation, "price must be greater than zero")
	}
	return Price{value: value, set: true}, nil
}

func NewPriceFromInt(value int64) (Price, error) {
	return NewPrice(decimal.NewFromInt(value))
}

// ParsePrice accepts a decimal string such as "5000000" or "1250.50".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, dErrors.New(dErrors.CodeValidation, "price must be a decimal number")
	}
	return NewPrice(d)
}

// MustPrice panics on invalid input. Use only in tests and fixtures.
func MustPrice(value int64) Price {
	p, err := NewPriceFromInt(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the exact amount.
func (p Price) Value() decimal.Decimal { return p.value }

func (p Price) IsZero() bool { return !p.set }

// Equal is numeric equality: 100 and 100.00 are the same price.
func (p Price) Equal(other Price) bool {
	return p.set == other.set && p.value.Equal(other.value)
}

// String renders the exact amount with two decimals and Russian digit grouping.
func (p Price) String() string {
	whole, frac, _ := strings.Cut(p.value.StringFixed(2), ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(r)
	}
	return b.String() + decimalSeparator + frac + " ₽"
}
