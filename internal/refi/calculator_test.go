package refi

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/theirongolddev/refi/internal/model"
)

const testYear = 2026

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.4f, want %.4f (±%g)", name, got, want, tol)
	}
}

func scenarioA() model.Input {
	return model.Input{
		Current: model.CurrentLoan{
			OriginalAmount:  model.Float(1_575_000),
			Rate:            model.Float(5.875),
			OriginationYear: model.Int(testYear - 2),
			Term:            model.Int(30),
		},
		New: model.NewLoan{
			CurrentBalance:  model.Float(1_543_107.76),
			Rate:            model.Float(5.375),
			OriginationYear: model.Int(testYear),
			ClosingCosts:    model.Float(6666),
			CashIn:          model.Float(0),
			Term:            model.Int(30),
		},
	}
}

func TestMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	for _, tc := range []struct {
		principal float64
		term      int
	}{
		{120_000, 30},
		{1, 10},
		{0, 15},
		{987_654.32, 20},
	} {
		got := MonthlyPayment(tc.principal, 0, tc.term)
		want := tc.principal / float64(tc.term*12)
		if got != want {
			t.Errorf("MonthlyPayment(%v, 0, %d) = %v, want %v", tc.principal, tc.term, got, want)
		}
	}
}

func TestMonthlyPayment_InterestIsPositive(t *testing.T) {
	for _, principal := range []float64{1_000, 250_000, 1_575_000} {
		for _, rate := range []float64{0.125, 3, 5.875, 12} {
			for _, term := range model.TermOptions {
				m := MonthlyPayment(principal, rate, term)
				if total := m * float64(term*12); total <= principal {
					t.Errorf("P=%v r=%v T=%d: total paid %.2f <= principal", principal, rate, term, total)
				}
			}
		}
	}
}

func TestMonthlyPayment_KnownValue(t *testing.T) {
	approx(t, "payment", MonthlyPayment(1_575_000, 5.875, 30), 9316.72, 0.005)
	approx(t, "payment", MonthlyPayment(200_000, 6.5, 30), 1264.14, 0.005)
}

func TestMonthlyPayment_HugeRateIsFinite(t *testing.T) {
	got := MonthlyPayment(200_000, 1e6, 30)
	if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
		t.Fatalf("MonthlyPayment(200000, 1e6, 30) = %v, want finite and >= 0", got)
	}
	// At such a rate the payment is just the monthly interest.
	approx(t, "payment", got, 200_000*1e6/100/12, 1e-3)
}

func TestRemainingTermYears(t *testing.T) {
	tests := []struct {
		origination, term, year int
		want                    int
	}{
		{2024, 30, 2026, 28},
		{2026, 15, 2026, 15},
		{2001, 30, 2026, 5},
		{1996, 30, 2026, 1},
		{1980, 10, 2026, 1},
		{2025, 10, 2026, 9},
	}
	for _, tc := range tests {
		if got := RemainingTermYears(tc.origination, tc.term, tc.year); got != tc.want {
			t.Errorf("RemainingTermYears(%d, %d, %d) = %d, want %d",
				tc.origination, tc.term, tc.year, got, tc.want)
		}
	}
}

func TestRemainingTermYears_NeverBelowOne(t *testing.T) {
	for elapsed := 0; elapsed <= 60; elapsed++ {
		for _, term := range model.TermOptions {
			if got := RemainingTermYears(testYear-elapsed, term, testYear); got < 1 {
				t.Fatalf("elapsed=%d term=%d: got %d", elapsed, term, got)
			}
		}
	}
}

func TestComputeSavings_ScenarioA(t *testing.T) {
	r := ComputeSavings(scenarioA(), testYear)

	approx(t, "CurrentMonthlyPayment", r.CurrentMonthlyPayment, 9316.72, 0.005)
	approx(t, "NewMonthlyPayment", r.NewMonthlyPayment, 8640.96, 0.005)
	approx(t, "MonthlySavings", r.MonthlySavings, 675.76, 0.005)

	if r.RemainingYears != 28 {
		t.Fatalf("RemainingYears = %d, want 28", r.RemainingYears)
	}
	if r.Breakdown.Branch != model.BranchFullCost {
		t.Fatalf("Branch = %q, want %q", r.Breakdown.Branch, model.BranchFullCost)
	}

	want := r.CurrentMonthlyPayment*28*12 - r.NewMonthlyPayment*30*12 - 6666
	approx(t, "TotalSavings", r.TotalSavings, want, 1e-6)
	approx(t, "TotalSavings", r.TotalSavings, 13006.37, 0.01)
	if r.Negative() {
		t.Error("scenario A should not be flagged negative")
	}
}

func TestComputeSavings_ScenarioB_ZeroRate(t *testing.T) {
	in := model.Input{
		Current: model.CurrentLoan{
			OriginalAmount:  model.Float(120_000),
			Rate:            model.Float(0),
			OriginationYear: model.Int(testYear - 10),
			Term:            model.Int(30),
		},
	}
	r := ComputeSavings(in, testYear)
	if got := math.Round(r.CurrentMonthlyPayment*100) / 100; got != 333.33 {
		t.Fatalf("CurrentMonthlyPayment = %.2f, want 333.33", got)
	}
	if r.RemainingYears != 20 {
		t.Errorf("RemainingYears = %d, want 20", r.RemainingYears)
	}
}

func TestComputeSavings_ScenarioC_NewPrincipal(t *testing.T) {
	in := scenarioA()
	in.New.CurrentBalance = model.Float(400_000)
	in.New.CashIn = model.Float(25_000)
	in.New.ClosingCosts = model.Float(7_500)

	in.RollClosingCosts = true
	rolled := ComputeSavings(in, testYear)
	if rolled.Breakdown.NewPrincipal != 400_000-25_000+7_500 {
		t.Errorf("rolled NewPrincipal = %v, want %v", rolled.Breakdown.NewPrincipal, 382_500.0)
	}

	in.RollClosingCosts = false
	paid := ComputeSavings(in, testYear)
	if paid.Breakdown.NewPrincipal != 400_000-25_000 {
		t.Errorf("out-of-pocket NewPrincipal = %v, want %v", paid.Breakdown.NewPrincipal, 375_000.0)
	}
	if paid.Breakdown.EffectiveBalance != 375_000 {
		t.Errorf("EffectiveBalance = %v, want 375000", paid.Breakdown.EffectiveBalance)
	}
	approx(t, "rolled payment", rolled.NewMonthlyPayment, MonthlyPayment(382_500, 5.375, 30), 1e-9)
}

func TestComputeSavings_ScenarioD_ShortRemainingUsesFullCost(t *testing.T) {
	in := model.Input{
		Current: model.CurrentLoan{
			OriginalAmount:  model.Float(200_000),
			Rate:            model.Float(6.5),
			OriginationYear: model.Int(testYear - 25),
			Term:            model.Int(30),
		},
		New: model.NewLoan{
			CurrentBalance: model.Float(150_000),
			Rate:           model.Float(5),
			ClosingCosts:   model.Float(2_000),
			Term:           model.Int(30),
		},
	}
	r := ComputeSavings(in, testYear)

	if r.RemainingYears != 5 {
		t.Fatalf("RemainingYears = %d, want 5", r.RemainingYears)
	}
	if r.Breakdown.Branch != model.BranchFullCost {
		t.Fatalf("Branch = %q, want full-cost comparison", r.Breakdown.Branch)
	}

	fullCost := r.CurrentMonthlyPayment*5*12 - r.NewMonthlyPayment*30*12 - 2_000
	sharedTerm := r.MonthlySavings*30*12 - 2_000
	approx(t, "TotalSavings", r.TotalSavings, fullCost, 1e-6)
	if math.Abs(r.TotalSavings-sharedTerm) < 1 {
		t.Fatal("TotalSavings matches the shared-term formula; wrong branch")
	}
	if !r.Negative() {
		t.Errorf("TotalSavings = %.2f, want negative", r.TotalSavings)
	}
}

func TestComputeSavings_SharedTermBranch(t *testing.T) {
	in := model.Input{
		Current: model.CurrentLoan{
			OriginalAmount:  model.Float(300_000),
			Rate:            model.Float(7),
			OriginationYear: model.Int(testYear),
			Term:            model.Int(30),
		},
		New: model.NewLoan{
			CurrentBalance: model.Float(290_000),
			Rate:           model.Float(6),
			ClosingCosts:   model.Float(3_000),
			Term:           model.Int(15),
		},
		RollClosingCosts: true,
	}
	r := ComputeSavings(in, testYear)

	if r.Breakdown.Branch != model.BranchSharedTerm {
		t.Fatalf("Branch = %q, want %q", r.Breakdown.Branch, model.BranchSharedTerm)
	}
	// Rolled closing costs are not subtracted again.
	approx(t, "TotalSavings", r.TotalSavings, r.MonthlySavings*15*12, 1e-6)
	approx(t, "TotalSavings", r.TotalSavings, -85786.74, 0.01)
}

func TestComputeSavings_CashInAlwaysSubtracted(t *testing.T) {
	for _, roll := range []bool{false, true} {
		in := scenarioA()
		in.RollClosingCosts = roll
		base := ComputeSavings(in, testYear)

		in.New.CashIn = model.Float(50_000)
		with := ComputeSavings(in, testYear)

		// Cash-in lowers the new payment and is also charged as a cost.
		lowerPayment := (base.NewMonthlyPayment - with.NewMonthlyPayment) * 30 * 12
		approx(t, "cash-in effect", with.TotalSavings-base.TotalSavings, lowerPayment-50_000, 1e-6)
	}
}

func TestComputeSavings_Idempotent(t *testing.T) {
	in := scenarioA()
	first := ComputeSavings(in, testYear)
	second := ComputeSavings(in, testYear)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestCompute_UsesCalendarYear(t *testing.T) {
	in := scenarioA()
	in.Current.OriginationYear = nil
	want := ComputeSavings(in, time.Now().Year())
	if got := Compute(in); got != want {
		t.Fatalf("Compute = %+v, want %+v", got, want)
	}
}

func TestComputeSavings_UnsetBehavesAsDefault(t *testing.T) {
	full := scenarioA()
	full.New.CashIn = model.Float(10_000)

	fields := []struct {
		name    string
		unset   func(*model.Input)
		setZero func(*model.Input)
	}{
		{"original amount",
			func(in *model.Input) { in.Current.OriginalAmount = nil },
			func(in *model.Input) { in.Current.OriginalAmount = model.Float(0) }},
		{"current rate",
			func(in *model.Input) { in.Current.Rate = nil },
			func(in *model.Input) { in.Current.Rate = model.Float(0) }},
		{"current origination year",
			func(in *model.Input) { in.Current.OriginationYear = nil },
			func(in *model.Input) { in.Current.OriginationYear = model.Int(testYear - model.AssumedLoanAge) }},
		{"current term",
			func(in *model.Input) { in.Current.Term = nil },
			func(in *model.Input) { in.Current.Term = model.Int(model.DefaultTerm) }},
		{"balance",
			func(in *model.Input) { in.New.CurrentBalance = nil },
			func(in *model.Input) { in.New.CurrentBalance = model.Float(0) }},
		{"new rate",
			func(in *model.Input) { in.New.Rate = nil },
			func(in *model.Input) { in.New.Rate = model.Float(0) }},
		{"new origination year",
			func(in *model.Input) { in.New.OriginationYear = nil },
			func(in *model.Input) { in.New.OriginationYear = model.Int(testYear) }},
		{"closing costs",
			func(in *model.Input) { in.New.ClosingCosts = nil },
			func(in *model.Input) { in.New.ClosingCosts = model.Float(0) }},
		{"cash-in",
			func(in *model.Input) { in.New.CashIn = nil },
			func(in *model.Input) { in.New.CashIn = model.Float(0) }},
		{"new term",
			func(in *model.Input) { in.New.Term = nil },
			func(in *model.Input) { in.New.Term = model.Int(model.DefaultTerm) }},
	}

	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			unset, zero := full, full
			f.unset(&unset)
			f.setZero(&zero)

			got := ComputeSavings(unset, testYear)
			want := ComputeSavings(zero, testYear)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("unset %s:\n got %+v\nwant %+v", f.name, got, want)
			}
		})
	}
}

func TestComputeSavings_AllUnsetIsFinite(t *testing.T) {
	r := ComputeSavings(model.Input{}, testYear)
	for name, v := range map[string]float64{
		"current": r.CurrentMonthlyPayment,
		"new":     r.NewMonthlyPayment,
		"monthly": r.MonthlySavings,
		"total":   r.TotalSavings,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
	if r.RemainingYears != model.DefaultTerm-model.AssumedLoanAge {
		t.Errorf("RemainingYears = %d, want %d", r.RemainingYears, model.DefaultTerm-model.AssumedLoanAge)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	n := Normalize(model.Input{RollClosingCosts: true}, testYear)
	if n.CurrentOriginationYear != testYear-5 {
		t.Errorf("CurrentOriginationYear = %d, want %d", n.CurrentOriginationYear, testYear-5)
	}
	if n.NewOriginationYear != testYear {
		t.Errorf("NewOriginationYear = %d, want %d", n.NewOriginationYear, testYear)
	}
	if n.CurrentTerm != 30 || n.NewTerm != 30 {
		t.Errorf("terms = %d/%d, want 30/30", n.CurrentTerm, n.NewTerm)
	}
	if !n.RollClosingCosts {
		t.Error("RollClosingCosts lost during normalization")
	}
}

func TestNormalize_NonFiniteTreatedAsUnset(t *testing.T) {
	in := model.Input{New: model.NewLoan{CurrentBalance: model.Float(math.NaN())}}
	if got := Normalize(in, testYear).CurrentBalance; got != 0 {
		t.Fatalf("CurrentBalance = %v, want 0", got)
	}
}
