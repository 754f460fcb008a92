package model

// Branch identifies how lifetime savings were compared.
type Branch string

const (
	// BranchFullCost compares the remaining cost of the current loan against
	// the full cost of the new loan. Used when the current loan has fewer
	// years left than the new loan's term.
	BranchFullCost Branch = "full_cost"
	// BranchSharedTerm compares both loans over the new loan's term only.
	BranchSharedTerm Branch = "shared_term"
)

// Breakdown holds the intermediate values of a calculation.
type Breakdown struct {
	EffectiveBalance     float64 `json:"effective_balance" yaml:"effective_balance"`
	NewPrincipal         float64 `json:"new_principal" yaml:"new_principal"`
	CurrentRemainingCost float64 `json:"current_remaining_cost" yaml:"current_remaining_cost"`
	NewTotalCost         float64 `json:"new_total_cost" yaml:"new_total_cost"`
	Branch               Branch  `json:"branch" yaml:"branch"`
}

// Result is the outcome of comparing a current and a new loan.
type Result struct {
	CurrentMonthlyPayment float64   `json:"current_monthly_payment" yaml:"current_monthly_payment"`
	NewMonthlyPayment     float64   `json:"new_monthly_payment" yaml:"new_monthly_payment"`
	MonthlySavings        float64   `json:"monthly_savings" yaml:"monthly_savings"`
	TotalSavings          float64   `json:"total_savings" yaml:"total_savings"`
	RemainingYears        int       `json:"remaining_years" yaml:"remaining_years"`
	Breakdown             Breakdown `json:"breakdown" yaml:"breakdown"`
}

// Negative reports whether the refinance loses money over its lifetime.
func (r Result) Negative() bool {
	return r.TotalSavings < 0
}
