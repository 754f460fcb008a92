package cmd

import (
	"fmt"

	"github.com/theirongolddev/refi/internal/config"
	"github.com/theirongolddev/refi/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive first-time setup (default loan profile, theme)",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// A config that fails to parse is reported, not overwritten.
	existing, err := config.Load()
	if err != nil {
		return err
	}

	res, err := tui.RunSetup(existing)
	if err != nil {
		return err
	}

	existing.Profile = res.Profile
	existing.Appearance.Theme = res.Theme
	if err := config.Save(existing); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "  Saved to %s\n", config.Path())
	fmt.Fprintln(cmd.OutOrStdout(), "  Run `refi setup` anytime to reconfigure.")
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
