package components

import (
	"fmt"
	"math"

	"github.com/theirongolddev/refi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CostBar renders a labeled bar showing value as a share of maxValue.
func CostBar(label, value string, amount, maxValue float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if maxValue > 0 {
		pct = amount / maxValue
	}
	if math.IsNaN(pct) {
		pct = 0
	}
	pct = min(max(pct, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(pct) + " " + valueStyle.Render(value)
}
