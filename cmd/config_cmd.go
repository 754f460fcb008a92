package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/refi/internal/cli"
	"github.com/theirongolddev/refi/internal/config"
	"github.com/theirongolddev/refi/internal/input"
	"github.com/theirongolddev/refi/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintf(w, "    Available: %s\n", strings.Join(theme.Names(), ", "))
	fmt.Fprintln(w)

	p := cfg.Profile
	fmt.Fprintln(w, "  [Current Mortgage]")
	fmt.Fprintf(w, "    Original amount:   %s\n", amountOrUnset(p.Current.OriginalAmount))
	fmt.Fprintf(w, "    Rate:              %s\n", rateOrUnset(p.Current.Rate))
	fmt.Fprintf(w, "    Origination year:  %s\n", intOrUnset(p.Current.OriginationYear))
	fmt.Fprintf(w, "    Term:              %s\n", intOrUnset(p.Current.Term))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [New Mortgage]")
	fmt.Fprintf(w, "    Current balance:   %s\n", amountOrUnset(p.New.CurrentBalance))
	fmt.Fprintf(w, "    Cash-in:           %s\n", amountOrUnset(p.New.CashIn))
	fmt.Fprintf(w, "    Rate:              %s\n", rateOrUnset(p.New.Rate))
	fmt.Fprintf(w, "    Term:              %s\n", intOrUnset(p.New.Term))
	fmt.Fprintf(w, "    Origination year:  %s\n", intOrUnset(p.New.OriginationYear))
	fmt.Fprintf(w, "    Closing costs:     %s\n", amountOrUnset(p.New.ClosingCosts))
	fmt.Fprintf(w, "    Roll closing costs: %v\n", p.RollClosingCosts)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `refi setup` to reconfigure.")
	return nil
}

func amountOrUnset(v *float64) string {
	if v == nil {
		return "unset"
	}
	return cli.FormatCurrency(*v)
}

func rateOrUnset(v *float64) string {
	if v == nil {
		return "unset"
	}
	return cli.FormatRate(*v)
}

func intOrUnset(v *int) string {
	if v == nil {
		return "unset"
	}
	return input.FormatInt(v)
}
