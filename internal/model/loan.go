// Package model defines the loan records and calculation results shared by
// the calculator, the CLI, and the TUI.
package model

// TermOptions are the loan terms, in years, a borrower can choose from.
var TermOptions = []int{10, 15, 20, 30}

// DefaultTerm is used when a loan's term is unset.
const DefaultTerm = 30

// AssumedLoanAge is how many years old an existing loan is taken to be when
// its origination year is unset.
const AssumedLoanAge = 5

// ValidTerm reports whether years is one of TermOptions.
func ValidTerm(years int) bool {
	for _, t := range TermOptions {
		if t == years {
			return true
		}
	}
	return false
}

// CurrentLoan describes the mortgage being refinanced.
// A nil field means the value has not been entered.
type CurrentLoan struct {
	OriginalAmount  *float64 `json:"original_amount,omitempty" yaml:"original_amount,omitempty"`
	Rate            *float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	OriginationYear *int     `json:"origination_year,omitempty" yaml:"origination_year,omitempty"`
	Term            *int     `json:"term,omitempty" yaml:"term,omitempty"`
}

// NewLoan describes the proposed replacement mortgage.
type NewLoan struct {
	CurrentBalance  *float64 `json:"current_balance,omitempty" yaml:"current_balance,omitempty"`
	Rate            *float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	OriginationYear *int     `json:"origination_year,omitempty" yaml:"origination_year,omitempty"`
	ClosingCosts    *float64 `json:"closing_costs,omitempty" yaml:"closing_costs,omitempty"`
	CashIn          *float64 `json:"cash_in,omitempty" yaml:"cash_in,omitempty"`
	Term            *int     `json:"term,omitempty" yaml:"term,omitempty"`
}

// Input is everything the calculator needs for one comparison.
type Input struct {
	Current          CurrentLoan `json:"current" yaml:"current"`
	New              NewLoan     `json:"new" yaml:"new"`
	RollClosingCosts bool        `json:"roll_closing_costs" yaml:"roll_closing_costs"`
}

// Normalized is an Input with every unset field replaced by its default.
type Normalized struct {
	OriginalAmount         float64
	CurrentRate            float64
	CurrentOriginationYear int
	CurrentTerm            int

	CurrentBalance     float64
	NewRate            float64
	NewOriginationYear int
	ClosingCosts       float64
	CashIn             float64
	NewTerm            int

	RollClosingCosts bool
}

// Float returns a pointer to v. Handy for building inputs in code.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
