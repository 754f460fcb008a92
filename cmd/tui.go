package cmd

import (
	"fmt"

	"github.com/theirongolddev/refi/internal/config"
	"github.com/theirongolddev/refi/internal/tui"
	"github.com/theirongolddev/refi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Loan flags pre-fill the form on top of the saved profile.
	in := cfg.Profile.Input()
	if err := applyLoanFlags(cmd.Flags(), &in); err != nil {
		return err
	}

	if !flagNoColor {
		// Force TrueColor so themed output renders even when lipgloss
		// cannot detect the terminal's profile.
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := tui.NewApp(config.ProfileFromInput(in), currentYear())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
