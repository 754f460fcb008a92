// Package refi computes refinance savings: monthly payments for the current
// and proposed loans and the net lifetime benefit of switching.
package refi

import (
	"math"
	"time"

	"github.com/theirongolddev/refi/internal/model"
)

// RemainingTermYears returns how many years are left on a loan's original
// schedule. A loan past its nominal term is treated as having one year left.
func RemainingTermYears(originationYear, originalTermYears, currentYear int) int {
	yearsPassed := currentYear - originationYear
	return max(originalTermYears-yearsPassed, 1)
}

// MonthlyPayment returns the fixed payment that retires principal over
// termYears at annualRatePercent. termYears must be positive.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	monthlyRate := annualRatePercent / 100 / 12
	n := float64(termYears * 12)

	if monthlyRate == 0 {
		return principal / n
	}

	// Discounting form of the annuity formula: (1+r)^-n underflows to zero
	// for huge rates where (1+r)^n would overflow to +Inf.
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
}

// Normalize replaces every unset field of in with its default so the
// formulas only ever see concrete numbers.
func Normalize(in model.Input, currentYear int) model.Normalized {
	return model.Normalized{
		OriginalAmount:         floatOr(in.Current.OriginalAmount, 0),
		CurrentRate:            floatOr(in.Current.Rate, 0),
		CurrentOriginationYear: intOr(in.Current.OriginationYear, currentYear-model.AssumedLoanAge),
		CurrentTerm:            intOr(in.Current.Term, model.DefaultTerm),

		CurrentBalance:     floatOr(in.New.CurrentBalance, 0),
		NewRate:            floatOr(in.New.Rate, 0),
		NewOriginationYear: intOr(in.New.OriginationYear, currentYear),
		ClosingCosts:       floatOr(in.New.ClosingCosts, 0),
		CashIn:             floatOr(in.New.CashIn, 0),
		NewTerm:            intOr(in.New.Term, model.DefaultTerm),

		RollClosingCosts: in.RollClosingCosts,
	}
}

// ComputeSavings compares the current loan against the proposed one as of
// currentYear.
//
// The current payment is rebuilt from the loan's original amount, rate and
// term: it is the payment the borrower has been making, not a re-amortization
// of today's balance over the remaining years.
func ComputeSavings(in model.Input, currentYear int) model.Result {
	n := Normalize(in, currentYear)

	remainingYears := RemainingTermYears(n.CurrentOriginationYear, n.CurrentTerm, currentYear)
	currentPayment := MonthlyPayment(n.OriginalAmount, n.CurrentRate, n.CurrentTerm)

	effectiveBalance := n.CurrentBalance - n.CashIn
	newPrincipal := effectiveBalance
	if n.RollClosingCosts {
		newPrincipal += n.ClosingCosts
	}

	newPayment := MonthlyPayment(newPrincipal, n.NewRate, n.NewTerm)
	monthlySavings := currentPayment - newPayment

	currentRemainingCost := currentPayment * float64(remainingYears*12)
	newTotalCost := newPayment * float64(n.NewTerm*12)

	var totalSavings float64
	var branch model.Branch
	if remainingYears < n.NewTerm {
		totalSavings = currentRemainingCost - newTotalCost
		branch = model.BranchFullCost
	} else {
		totalSavings = monthlySavings * float64(n.NewTerm*12)
		branch = model.BranchSharedTerm
	}

	// Closing costs paid out of pocket reduce the benefit.
	if !n.RollClosingCosts {
		totalSavings -= n.ClosingCosts
	}
	totalSavings -= n.CashIn

	return model.Result{
		CurrentMonthlyPayment: currentPayment,
		NewMonthlyPayment:     newPayment,
		MonthlySavings:        monthlySavings,
		TotalSavings:          totalSavings,
		RemainingYears:        remainingYears,
		Breakdown: model.Breakdown{
			EffectiveBalance:     effectiveBalance,
			NewPrincipal:         newPrincipal,
			CurrentRemainingCost: currentRemainingCost,
			NewTotalCost:         newTotalCost,
			Branch:               branch,
		},
	}
}

// Compute is ComputeSavings for the current calendar year.
func Compute(in model.Input) model.Result {
	return ComputeSavings(in, time.Now().Year())
}

func floatOr(p *float64, def float64) float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
