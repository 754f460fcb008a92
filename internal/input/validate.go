package input

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/refi/internal/model"
)

// MinOriginationYear is the earliest origination year accepted for either loan.
const MinOriginationYear = 1980

// MaxRatePercent bounds annual rates.
const MaxRatePercent = 100

// FieldError reports a problem with one named input field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Field names used in FieldError.
const (
	FieldOriginalAmount         = "original amount"
	FieldCurrentRate            = "current rate"
	FieldCurrentOriginationYear = "current origination year"
	FieldCurrentTerm            = "current term"
	FieldCurrentBalance         = "current balance"
	FieldNewRate                = "new rate"
	FieldNewOriginationYear     = "new origination year"
	FieldClosingCosts           = "closing costs"
	FieldCashIn                 = "cash-in amount"
	FieldNewTerm                = "new term"
)

// Validate checks every set field of in. Unset fields are always valid; they
// are defaulted by the calculator. All problems are returned joined.
func Validate(in model.Input, currentYear int) error {
	var errs []error
	add := func(field string, err error) {
		if err != nil {
			errs = append(errs, &FieldError{Field: field, Err: err})
		}
	}

	add(FieldOriginalAmount, checkAmount(in.Current.OriginalAmount))
	add(FieldCurrentRate, checkRate(in.Current.Rate))
	add(FieldCurrentOriginationYear, checkYear(in.Current.OriginationYear, currentYear))
	add(FieldCurrentTerm, checkTerm(in.Current.Term))

	add(FieldCurrentBalance, checkAmount(in.New.CurrentBalance))
	add(FieldNewRate, checkRate(in.New.Rate))
	add(FieldNewOriginationYear, checkYear(in.New.OriginationYear, currentYear+1))
	add(FieldClosingCosts, checkAmount(in.New.ClosingCosts))
	add(FieldCashIn, checkAmount(in.New.CashIn))
	add(FieldNewTerm, checkTerm(in.New.Term))

	if in.New.CashIn != nil {
		balance := 0.0
		if in.New.CurrentBalance != nil {
			balance = *in.New.CurrentBalance
		}
		if *in.New.CashIn > balance {
			add(FieldCashIn, ErrCashInExceedsBalance)
		}
	}

	return errors.Join(errs...)
}

func checkAmount(v *float64) error {
	if v != nil && *v < 0 {
		return ErrNegative
	}
	return nil
}

func checkRate(v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 {
		return ErrNegative
	}
	if *v > MaxRatePercent {
		return fmt.Errorf("%.3f%% above %d%%: %w", *v, MaxRatePercent, ErrOutOfRange)
	}
	return nil
}

func checkYear(v *int, maxYear int) error {
	if v == nil {
		return nil
	}
	if *v < MinOriginationYear || *v > maxYear {
		return fmt.Errorf("%d not in %d-%d: %w", *v, MinOriginationYear, maxYear, ErrOutOfRange)
	}
	return nil
}

func checkTerm(v *int) error {
	if v != nil && !model.ValidTerm(*v) {
		return fmt.Errorf("%d years: %w", *v, ErrUnknownTerm)
	}
	return nil
}
