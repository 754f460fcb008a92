package refi

import "github.com/theirongolddev/refi/internal/model"

// TermRow is the comparison result for one candidate new-loan term.
type TermRow struct {
	Term   int
	Result model.Result
}

// TermMatrix evaluates the comparison once per term in model.TermOptions,
// keeping every other input fixed. Rows are in ascending term order.
func TermMatrix(in model.Input, currentYear int) []TermRow {
	rows := make([]TermRow, 0, len(model.TermOptions))
	for _, term := range model.TermOptions {
		candidate := in
		candidate.New.Term = model.Int(term)
		rows = append(rows, TermRow{
			Term:   term,
			Result: ComputeSavings(candidate, currentYear),
		})
	}
	return rows
}

// BestTerm returns the row with the highest total savings. Ties go to the
// shorter term. ok is false when rows is empty.
func BestTerm(rows []TermRow) (best TermRow, ok bool) {
	for i, r := range rows {
		if i == 0 || r.Result.TotalSavings > best.Result.TotalSavings {
			best = r
			ok = true
		}
	}
	return best, ok
}
