package tui

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/refi/internal/input"
	"github.com/theirongolddev/refi/internal/model"

	"github.com/charmbracelet/huh"
)

// formValues holds the raw text of every field, bound to the huh form.
// Blank text means the field is unset.
type formValues struct {
	OriginalAmount         string
	CurrentRate            string
	CurrentOriginationYear string
	CurrentTerm            int

	CurrentBalance     string
	CashIn             string
	NewRate            string
	NewTerm            int
	NewOriginationYear string
	ClosingCosts       string
	RollClosingCosts   bool
}

func valuesFromInput(in model.Input) formValues {
	term := func(p *int) int {
		if p == nil || !model.ValidTerm(*p) {
			return model.DefaultTerm
		}
		return *p
	}
	return formValues{
		OriginalAmount:         input.FormatAmount(in.Current.OriginalAmount),
		CurrentRate:            input.FormatAmount(in.Current.Rate),
		CurrentOriginationYear: input.FormatInt(in.Current.OriginationYear),
		CurrentTerm:            term(in.Current.Term),

		CurrentBalance:     input.FormatAmount(in.New.CurrentBalance),
		CashIn:             input.FormatAmount(in.New.CashIn),
		NewRate:            input.FormatAmount(in.New.Rate),
		NewTerm:            term(in.New.Term),
		NewOriginationYear: input.FormatInt(in.New.OriginationYear),
		ClosingCosts:       input.FormatAmount(in.New.ClosingCosts),
		RollClosingCosts:   in.RollClosingCosts,
	}
}

// toInput parses every text field. Fields that fail to parse are reported
// together as joined *input.FieldError values.
func (v formValues) toInput() (model.Input, error) {
	var in model.Input
	var errs []error
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, &input.FieldError{Field: field, Err: err})
		}
	}

	var err error
	in.Current.OriginalAmount, err = input.ParseAmount(v.OriginalAmount)
	check(input.FieldOriginalAmount, err)
	in.Current.Rate, err = input.ParseRate(v.CurrentRate)
	check(input.FieldCurrentRate, err)
	in.Current.OriginationYear, err = input.ParseYear(v.CurrentOriginationYear)
	check(input.FieldCurrentOriginationYear, err)
	in.Current.Term = model.Int(v.CurrentTerm)

	in.New.CurrentBalance, err = input.ParseAmount(v.CurrentBalance)
	check(input.FieldCurrentBalance, err)
	in.New.CashIn, err = input.ParseAmount(v.CashIn)
	check(input.FieldCashIn, err)
	in.New.Rate, err = input.ParseRate(v.NewRate)
	check(input.FieldNewRate, err)
	in.New.OriginationYear, err = input.ParseYear(v.NewOriginationYear)
	check(input.FieldNewOriginationYear, err)
	in.New.ClosingCosts, err = input.ParseAmount(v.ClosingCosts)
	check(input.FieldClosingCosts, err)
	in.New.Term = model.Int(v.NewTerm)

	in.RollClosingCosts = v.RollClosingCosts

	return in, errors.Join(errs...)
}

func termOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(model.TermOptions))
	for _, t := range model.TermOptions {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d years", t), t))
	}
	return opts
}

func validateWith[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}

// newCalculatorForm builds the two-page loan form bound to v.
func newCalculatorForm(v *formValues) *huh.Form {
	return huh.NewForm(loanGroups(v)...).
		WithShowHelp(false)
}

// loanGroups returns the current and new mortgage pages bound to v.
func loanGroups(v *formValues) []*huh.Group {
	amount := validateWith(input.ParseAmount)
	rate := validateWith(input.ParseRate)
	year := validateWith(input.ParseYear)

	current := huh.NewGroup(
		huh.NewInput().
			Title("Original Mortgage Amount ($)").
			Placeholder("0").
			Value(&v.OriginalAmount).
			Validate(amount),
		huh.NewInput().
			Title("Original Interest Rate (%)").
			Placeholder("0").
			Value(&v.CurrentRate).
			Validate(rate),
		huh.NewInput().
			Title("Origination Year").
			Placeholder(fmt.Sprintf("%d years ago", model.AssumedLoanAge)).
			Value(&v.CurrentOriginationYear).
			Validate(year),
		huh.NewSelect[int]().
			Title("Loan Term").
			Options(termOptions()...).
			Value(&v.CurrentTerm),
	).Title("Current Mortgage")

	proposed := huh.NewGroup(
		huh.NewInput().
			Title("Current Mortgage Balance ($)").
			Placeholder("0").
			Value(&v.CurrentBalance).
			Validate(amount),
		huh.NewInput().
			Title("Cash-In Amount ($)").
			Placeholder("0").
			Value(&v.CashIn).
			Validate(amount),
		huh.NewInput().
			Title("New Interest Rate (%)").
			Placeholder("0").
			Value(&v.NewRate).
			Validate(rate),
		huh.NewSelect[int]().
			Title("Loan Term").
			Options(termOptions()...).
			Value(&v.NewTerm),
		huh.NewInput().
			Title("Origination Year").
			Placeholder("this year").
			Value(&v.NewOriginationYear).
			Validate(year),
		huh.NewInput().
			Title("Closing Costs ($)").
			Placeholder("0").
			Value(&v.ClosingCosts).
			Validate(amount),
		huh.NewConfirm().
			Title("Roll closing costs into new mortgage?").
			Affirmative("Yes").
			Negative("No").
			Value(&v.RollClosingCosts),
	).Title("New Mortgage")

	return []*huh.Group{current, proposed}
}
