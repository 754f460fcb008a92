package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/refi/internal/cli"
	"github.com/theirongolddev/refi/internal/model"
	"github.com/theirongolddev/refi/internal/refi"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagOutput string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the current and new mortgage (default command)",
	RunE:  runCompare,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "table", "Output format: table, json, yaml")
	rootCmd.AddCommand(compareCmd)
}

// report is the machine-readable output of compare.
type report struct {
	Year   int          `json:"year" yaml:"year"`
	Input  model.Input  `json:"input" yaml:"input"`
	Result model.Result `json:"result" yaml:"result"`
}

func runCompare(cmd *cobra.Command, _ []string) error {
	in, err := loadInput(cmd.Flags())
	if err != nil {
		return err
	}

	result, year := compute(in)
	logBreakdown(in, result, year)

	return writeReport(cmd.OutOrStdout(), report{Year: year, Input: in, Result: result})
}

// compute runs the calculator as of --year, or as of today.
func compute(in model.Input) (model.Result, int) {
	if flagYear > 0 {
		return refi.ComputeSavings(in, flagYear), flagYear
	}
	return refi.Compute(in), time.Now().Year()
}

func writeReport(w io.Writer, rep report) error {
	if done, err := writeStructured(w, rep); done || err != nil {
		return err
	}
	fmt.Fprint(w, renderComparison(rep))
	return nil
}

// writeStructured writes v as JSON or YAML when --output asks for it.
// done is false for table output, which the caller renders itself.
func writeStructured(w io.Writer, v any) (done bool, err error) {
	switch flagOutput {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	case "table", "":
		return false, nil
	default:
		return true, fmt.Errorf("unknown output format %q (want table, json or yaml)", flagOutput)
	}
}

func renderComparison(rep report) string {
	r := rep.Result
	newTerm := model.DefaultTerm
	if rep.Input.New.Term != nil {
		newTerm = *rep.Input.New.Term
	}

	out := "\n" + cli.RenderTitle(fmt.Sprintf("REFINANCE SAVINGS  %d", rep.Year)) + "\n\n"

	rows := [][]string{
		{"Current Monthly Payment", cli.FormatCurrency(r.CurrentMonthlyPayment)},
		{"New Monthly Payment", fmt.Sprintf("%s  (%d year term)", cli.FormatCurrency(r.NewMonthlyPayment), newTerm)},
		{"Monthly Savings", cli.FormatCurrency(r.MonthlySavings)},
		{"Current Mortgage Remaining", cli.FormatYears(float64(r.RemainingYears))},
		cli.SeparatorRow,
		{"Total Lifetime Savings", cli.FormatCurrency(r.TotalSavings)},
	}
	highlight := 0
	if !r.Negative() {
		highlight = len(rows)
	}
	out += cli.RenderTable(cli.Table{
		Headers:   []string{"Metric", "Value"},
		Rows:      rows,
		Highlight: highlight,
	})
	out += cli.RenderMuted(fmt.Sprintf("  Comparing your current remaining term to a new %d-year mortgage", newTerm)) + "\n\n"

	maxCost := max(r.Breakdown.CurrentRemainingCost, r.Breakdown.NewTotalCost)
	out += cli.RenderHorizontalBar("Stay", r.Breakdown.CurrentRemainingCost, maxCost, 30) +
		"  " + cli.FormatCurrency(r.Breakdown.CurrentRemainingCost) + "\n"
	out += cli.RenderHorizontalBar("Refi", r.Breakdown.NewTotalCost, maxCost, 30) +
		"  " + cli.FormatCurrency(r.Breakdown.NewTotalCost) + "\n"

	if r.Negative() {
		out += "\n" + cli.RenderCaution("This refinance may not be financially beneficial in the long term.") + "\n"
	}
	return out + "\n"
}

// logBreakdown dumps the intermediate values of a calculation when --verbose
// is set.
func logBreakdown(in model.Input, r model.Result, year int) {
	l := logger()
	n := refi.Normalize(in, year)
	b := r.Breakdown

	l.Printf("year=%d current: amount=%.2f rate=%.3f term=%d originated=%d",
		year, n.OriginalAmount, n.CurrentRate, n.CurrentTerm, n.CurrentOriginationYear)
	l.Printf("current payment=%.2f remaining=%dy remaining cost=%.2f",
		r.CurrentMonthlyPayment, r.RemainingYears, b.CurrentRemainingCost)
	l.Printf("new: balance=%.2f cash-in=%.2f effective=%.2f closing=%.2f rolled=%t principal=%.2f",
		n.CurrentBalance, n.CashIn, b.EffectiveBalance, n.ClosingCosts, n.RollClosingCosts, b.NewPrincipal)
	l.Printf("new: rate=%.3f term=%d payment=%.2f total cost=%.2f",
		n.NewRate, n.NewTerm, r.NewMonthlyPayment, b.NewTotalCost)
	l.Printf("monthly savings=%.2f total savings=%.2f branch=%s",
		r.MonthlySavings, r.TotalSavings, b.Branch)
}
