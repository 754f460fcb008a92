package cmd

import (
	"fmt"

	"github.com/theirongolddev/refi/internal/cli"
	"github.com/theirongolddev/refi/internal/refi"

	"github.com/spf13/cobra"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Compare every new-loan term side by side",
	RunE:  runTerms,
}

func init() {
	rootCmd.AddCommand(termsCmd)
}

type termReport struct {
	Term           int     `json:"term" yaml:"term"`
	NewPayment     float64 `json:"new_monthly_payment" yaml:"new_monthly_payment"`
	MonthlySavings float64 `json:"monthly_savings" yaml:"monthly_savings"`
	TotalSavings   float64 `json:"total_savings" yaml:"total_savings"`
	Best           bool    `json:"best" yaml:"best"`
}

func runTerms(cmd *cobra.Command, _ []string) error {
	in, err := loadInput(cmd.Flags())
	if err != nil {
		return err
	}

	year := currentYear()
	rows := refi.TermMatrix(in, year)
	best, _ := refi.BestTerm(rows)

	reports := make([]termReport, 0, len(rows))
	for _, row := range rows {
		logger().Printf("term=%d payment=%.2f total savings=%.2f branch=%s",
			row.Term, row.Result.NewMonthlyPayment, row.Result.TotalSavings, row.Result.Breakdown.Branch)
		reports = append(reports, termReport{
			Term:           row.Term,
			NewPayment:     row.Result.NewMonthlyPayment,
			MonthlySavings: row.Result.MonthlySavings,
			TotalSavings:   row.Result.TotalSavings,
			Best:           row.Term == best.Term,
		})
	}

	w := cmd.OutOrStdout()
	if done, err := writeStructured(w, reports); done || err != nil {
		return err
	}

	tableRows := make([][]string, 0, len(reports))
	highlight := 0
	for i, r := range reports {
		tableRows = append(tableRows, []string{
			cli.FormatTerm(r.Term),
			cli.FormatCurrency(r.NewPayment),
			cli.FormatSignedCurrency(r.MonthlySavings),
			cli.FormatSignedCurrency(r.TotalSavings),
		})
		if r.Best {
			highlight = i + 1
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("NEW LOAN TERMS  %d", year)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers:   []string{"Term", "New Payment", "Monthly Savings", "Lifetime Savings"},
		Rows:      tableRows,
		Highlight: highlight,
	}))
	fmt.Fprintf(w, "  Best lifetime savings: %s at %s\n\n",
		cli.FormatCurrency(best.Result.TotalSavings), cli.FormatTerm(best.Term))
	return nil
}
