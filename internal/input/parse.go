// Package input turns raw text entry into optional loan fields and validates
// a filled-in comparison before it reaches the calculator.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/refi/internal/model"
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrNotANumber           = errors.New("not a number")
	ErrNegative             = errors.New("must not be negative")
	ErrOutOfRange           = errors.New("out of range")
	ErrUnknownTerm          = errors.New("unsupported loan term")
	ErrCashInExceedsBalance = errors.New("cash-in exceeds current balance")
)

var amountReplacer = strings.NewReplacer("$", "", ",", "", "_", "", " ", "")

// ParseAmount parses a currency amount such as "1,575,000" or "$6,666.50".
// Blank text is unset and returns nil.
func ParseAmount(s string) (*float64, error) {
	return parseDecimal(amountReplacer.Replace(strings.TrimSpace(s)))
}

// ParseRate parses an annual percentage rate such as "5.875" or "5.875%".
func ParseRate(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	return parseDecimal(s)
}

// ParseYear parses a calendar year. Blank text is unset.
func ParseYear(s string) (*int, error) {
	return parseInt(strings.TrimSpace(s))
}

// ParseTerm parses a loan term in years. The term must be one of
// model.TermOptions; an optional "y"/"years" suffix is accepted.
func ParseTerm(s string) (*int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "years"), "y"))
	v, err := parseInt(s)
	if err != nil || v == nil {
		return v, err
	}
	if !model.ValidTerm(*v) {
		return nil, fmt.Errorf("%d years: %w", *v, ErrUnknownTerm)
	}
	return v, nil
}

func parseDecimal(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%s: %w", d.String(), ErrNegative)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("%s: %w", s, ErrOutOfRange)
	}
	return &f, nil
}

func parseInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return &v, nil
}

// FormatAmount renders an optional amount back into editable text.
// Unset becomes the empty string.
func FormatAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}

// FormatInt renders an optional year or term back into editable text.
func FormatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
