package refi

import (
	"testing"

	"github.com/theirongolddev/refi/internal/model"
)

func TestTermMatrix_OneRowPerOption(t *testing.T) {
	in := scenarioA()
	rows := TermMatrix(in, testYear)

	if len(rows) != len(model.TermOptions) {
		t.Fatalf("rows = %d, want %d", len(rows), len(model.TermOptions))
	}
	for i, row := range rows {
		if row.Term != model.TermOptions[i] {
			t.Errorf("row %d term = %d, want %d", i, row.Term, model.TermOptions[i])
		}
		candidate := in
		candidate.New.Term = model.Int(row.Term)
		if want := ComputeSavings(candidate, testYear); row.Result != want {
			t.Errorf("term %d: matrix result differs from direct computation", row.Term)
		}
	}

	// The caller's input must not be modified.
	if *in.New.Term != 30 {
		t.Fatalf("input term changed to %d", *in.New.Term)
	}
}

func TestTermMatrix_ShorterTermsCostMoreMonthly(t *testing.T) {
	rows := TermMatrix(scenarioA(), testYear)
	for i := 1; i < len(rows); i++ {
		if rows[i].Result.NewMonthlyPayment >= rows[i-1].Result.NewMonthlyPayment {
			t.Errorf("term %d payment %.2f not below term %d payment %.2f",
				rows[i].Term, rows[i].Result.NewMonthlyPayment,
				rows[i-1].Term, rows[i-1].Result.NewMonthlyPayment)
		}
	}
}

func TestBestTerm(t *testing.T) {
	rows := []TermRow{
		{Term: 10, Result: model.Result{TotalSavings: 100}},
		{Term: 15, Result: model.Result{TotalSavings: 300}},
		{Term: 20, Result: model.Result{TotalSavings: 300}},
		{Term: 30, Result: model.Result{TotalSavings: -50}},
	}
	best, ok := BestTerm(rows)
	if !ok {
		t.Fatal("BestTerm returned !ok")
	}
	if best.Term != 15 {
		t.Fatalf("best term = %d, want 15 (tie goes to shorter)", best.Term)
	}

	if _, ok := BestTerm(nil); ok {
		t.Fatal("BestTerm(nil) returned ok")
	}
}
