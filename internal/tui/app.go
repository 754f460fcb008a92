// Package tui provides the interactive Bubble Tea refinance calculator.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/refi/internal/config"
	"github.com/theirongolddev/refi/internal/input"
	"github.com/theirongolddev/refi/internal/model"
	"github.com/theirongolddev/refi/internal/refi"
	"github.com/theirongolddev/refi/internal/tui/components"
	"github.com/theirongolddev/refi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
)

// cautionMessage is shown whenever total savings come out negative.
const cautionMessage = "This refinance may not be financially beneficial in the long term."

// App is the root Bubble Tea model.
type App struct {
	// Input state. vals is shared with the huh form's field bindings, so it
	// lives on the heap and survives App being copied by value.
	form    *huh.Form
	vals    *formValues
	profile config.Profile
	year    int

	// Latest calculation. lastVals is the snapshot it was computed from.
	lastVals formValues
	input    model.Input
	result   model.Result
	computed bool
	inputErr error // parse failures; the previous result is kept
	warnErr  error // validation problems with an otherwise computed result

	// UI state
	width     int
	height    int
	showHelp  bool
	showTerms bool
	status    string
	keys      keyMap
	help      help.Model
}

// NewApp creates the calculator, pre-filled from profile, computing as of year.
func NewApp(profile config.Profile, year int) App {
	vals := valuesFromInput(profile.Input())
	a := App{
		vals:    &vals,
		profile: profile,
		year:    year,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	a.form = newCalculatorForm(a.vals)
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Result returns the most recent calculation.
func (a App) Result() model.Result {
	return a.result
}

// recompute rebuilds the input from the complete set of field values and
// reruns the calculator. Unchanged values keep the current result.
func (a *App) recompute() {
	snapshot := *a.vals
	if a.computed && snapshot == a.lastVals {
		return
	}
	a.lastVals = snapshot

	in, err := snapshot.toInput()
	if err != nil {
		a.inputErr = err
		return
	}

	a.inputErr = nil
	a.warnErr = input.Validate(in, a.year)
	a.input = in
	a.result = refi.ComputeSavings(in, a.year)
	a.computed = true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		case key.Matches(msg, a.keys.Terms):
			a.showTerms = !a.showTerms
			return a, nil
		case key.Matches(msg, a.keys.Reset):
			*a.vals = valuesFromInput(a.profile.Input())
			a.form = newCalculatorForm(a.vals)
			a.recompute()
			a.status = "reset to saved profile"
			return a, a.form.Init()
		case key.Matches(msg, a.keys.Save):
			a.status = a.saveProfile()
			return a, nil
		}
		a.status = ""
	}

	return a.updateForm(msg)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	// The message has been fully applied to the form; only now is the
	// input snapshot complete.
	a.recompute()

	switch a.form.State {
	case huh.StateCompleted:
		// Submitting the last field starts another editing pass.
		a.form = newCalculatorForm(a.vals)
		return a, a.form.Init()
	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

func (a *App) saveProfile() string {
	if a.inputErr != nil {
		return "fix input errors before saving"
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Sprintf("could not load config: %s", err)
	}
	cfg.Profile = config.ProfileFromInput(a.input)
	if err := config.Save(cfg); err != nil {
		return fmt.Sprintf("could not save config: %s", err)
	}
	a.profile = cfg.Profile
	return "saved to " + config.Path()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  refi needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(" ◈ refi"))
	b.WriteString(subtitleStyle.Render(" · Mortgage Refinance Calculator"))
	b.WriteString("\n\n")

	widths := components.LayoutRow(cw, 2)
	formCard := components.ContentCard("", a.form.View(), widths[0], true)
	resultsCard := components.ContentCard("Refinance Savings", a.renderResults(components.CardInnerWidth(widths[1])), widths[1], false)
	b.WriteString(components.CardRow([]string{formCard, resultsCard}))
	b.WriteString("\n")

	if a.showTerms {
		b.WriteString(components.ContentCard("Compare New Loan Terms", a.renderTerms(), cw, false))
		b.WriteString("\n")
	}

	b.WriteString(components.RenderStatusBar(cw, a.help.ShortHelpView(a.keys.ShortHelp()), a.status))
	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := titleStyle.Render("Keys") + "\n\n" +
		a.help.FullHelpView(a.keys.FullHelp()) + "\n\n" +
		noteStyle.Render("tab / enter next field, shift+tab previous field.") + "\n" +
		noteStyle.Render("Leave a field blank to treat it as unset.") + "\n" +
		noteStyle.Render("Press f1 to close.")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

// fieldErrorLines lists every field error in err, one per line.
func fieldErrorLines(err error) []string {
	var lines []string
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		var fe *input.FieldError
		if errors.As(e, &fe) {
			lines = append(lines, fe.Error())
			return
		}
		lines = append(lines, e.Error())
	}
	if err != nil {
		walk(err)
	}
	return lines
}
