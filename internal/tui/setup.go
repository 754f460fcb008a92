package tui

import (
	"fmt"

	"github.com/theirongolddev/refi/internal/config"
	"github.com/theirongolddev/refi/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupResult is what the setup wizard collected.
type SetupResult struct {
	Profile config.Profile
	Theme   string
}

// newSetupForm builds the wizard: theme choice followed by the loan pages.
func newSetupForm(v *formValues, themeName *string) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	welcome := huh.NewGroup(
		huh.NewNote().
			Title("Welcome to refi!").
			Description("Save the mortgage you compare against by default.\nBlank fields stay unset and use the calculator defaults."),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(themes...).
			Value(themeName),
	)

	groups := append([]*huh.Group{welcome}, loanGroups(v)...)
	return huh.NewForm(groups...)
}

// RunSetup runs the interactive setup wizard, pre-filled from cfg, and
// returns the collected profile and theme. The caller persists them.
func RunSetup(cfg config.Config) (SetupResult, error) {
	vals := valuesFromInput(cfg.Profile.Input())
	themeName := theme.ByName(cfg.Appearance.Theme).Name

	if err := newSetupForm(&vals, &themeName).Run(); err != nil {
		return SetupResult{}, fmt.Errorf("setup: %w", err)
	}

	in, err := vals.toInput()
	if err != nil {
		return SetupResult{}, err
	}
	return SetupResult{
		Profile: config.ProfileFromInput(in),
		Theme:   themeName,
	}, nil
}
