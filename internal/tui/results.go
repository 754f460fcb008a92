package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/refi/internal/cli"
	"github.com/theirongolddev/refi/internal/refi"
	"github.com/theirongolddev/refi/internal/tui/components"
	"github.com/theirongolddev/refi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) newTerm() int {
	if a.input.New.Term != nil {
		return *a.input.New.Term
	}
	return a.vals.NewTerm
}

func (a App) renderResults(width int) string {
	t := theme.Active
	r := a.result

	var b strings.Builder

	if a.inputErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Width(width)
		for _, line := range fieldErrorLines(a.inputErr) {
			b.WriteString(errStyle.Render("✗ " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if !a.computed {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Enter loan details to see savings."))
		return b.String()
	}

	newTerm := a.newTerm()
	b.WriteString(components.MetricLines([]components.Metric{
		{Label: "Current Monthly Payment", Value: cli.FormatCurrency(r.CurrentMonthlyPayment)},
		{Label: "New Monthly Payment", Value: cli.FormatCurrency(r.NewMonthlyPayment),
			Note: fmt.Sprintf("(%d year term)", newTerm)},
		{Label: "Monthly Savings", Value: cli.FormatCurrency(r.MonthlySavings),
			Color: t.Signed(r.MonthlySavings)},
		{Label: "Current Mortgage Remaining", Value: cli.FormatYears(float64(r.RemainingYears))},
		{Label: "Total Lifetime Savings", Value: cli.FormatCurrency(r.TotalSavings),
			Color: t.Signed(r.TotalSavings)},
	}))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Width(width).Render(
		fmt.Sprintf("Comparing your current remaining term to a new %d-year mortgage", newTerm)))
	b.WriteString("\n\n")

	maxCost := max(r.Breakdown.CurrentRemainingCost, r.Breakdown.NewTotalCost)
	barW := max(width-30, 8)
	b.WriteString(components.CostBar("Stay", cli.FormatCurrency(r.Breakdown.CurrentRemainingCost),
		r.Breakdown.CurrentRemainingCost, maxCost, t.Blue, 6, barW))
	b.WriteString("\n")
	b.WriteString(components.CostBar("Refi", cli.FormatCurrency(r.Breakdown.NewTotalCost),
		r.Breakdown.NewTotalCost, maxCost, t.Accent, 6, barW))

	if r.Negative() {
		b.WriteString("\n\n")
		b.WriteString(components.Caution(cautionMessage, width-2))
	}

	if a.warnErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Width(width)
		b.WriteString("\n")
		for _, line := range fieldErrorLines(a.warnErr) {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render("! " + line))
		}
	}

	return b.String()
}

func (a App) renderTerms() string {
	t := theme.Active

	rows := refi.TermMatrix(a.input, a.year)
	best, _ := refi.BestTerm(rows)

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bestStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	line := func(cols ...string) string {
		return fmt.Sprintf("%-10s %14s %16s %18s", cols[0], cols[1], cols[2], cols[3])
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(line("Term", "New Payment", "Monthly Savings", "Lifetime Savings")))
	for _, row := range rows {
		text := line(
			cli.FormatTerm(row.Term),
			cli.FormatCurrency(row.Result.NewMonthlyPayment),
			cli.FormatCurrency(row.Result.MonthlySavings),
			cli.FormatCurrency(row.Result.TotalSavings),
		)
		style := rowStyle
		if row.Term == best.Term {
			style = bestStyle
			text += "  ← best"
		}
		b.WriteString("\n")
		b.WriteString(style.Render(text))
	}
	return b.String()
}
