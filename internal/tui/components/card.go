// Package components provides reusable TUI widgets for the refi calculator.
package components

import (
	"github.com/theirongolddev/refi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one labeled figure in a results panel.
type Metric struct {
	Label string
	Value string
	Note  string
	Color lipgloss.Color // value color; zero uses the theme's primary text
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricLines renders metrics stacked vertically: muted label, bold value,
// optional dim note, with a blank line between entries.
func MetricLines(metrics []Metric) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var out string
	for i, m := range metrics {
		color := m.Color
		if color == "" {
			color = t.TextPrimary
		}
		valueStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

		if i > 0 {
			out += "\n\n"
		}
		out += labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
		if m.Note != "" {
			out += "  " + noteStyle.Render(m.Note)
		}
	}
	return out
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int, focused bool) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border chars
	if contentWidth < 10 {
		contentWidth = 10
	}

	border := t.Border
	if focused {
		border = t.BorderAccent
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}

// Caution renders a warning banner sized to width.
func Caution(msg string, width int) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Orange).
		Foreground(t.Orange).
		Bold(true).
		Width(width).
		PaddingLeft(1).
		Render(msg)
}
