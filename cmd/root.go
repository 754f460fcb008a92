// Package cmd implements the refi CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/theirongolddev/refi/internal/config"
	"github.com/theirongolddev/refi/internal/input"
	"github.com/theirongolddev/refi/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Loan field flags. Values are raw text so that an explicitly empty flag
// means "unset", the same as a blank form field.
const (
	flagOriginalAmount     = "original-amount"
	flagCurrentRate        = "current-rate"
	flagOriginationYear    = "origination-year"
	flagCurrentTerm        = "current-term"
	flagBalance            = "balance"
	flagNewRate            = "new-rate"
	flagNewOriginationYear = "new-origination-year"
	flagClosingCosts       = "closing-costs"
	flagCashIn             = "cash-in"
	flagNewTerm            = "new-term"
	flagRollClosingCosts   = "roll-closing-costs"
)

var (
	flagYear    int
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:           "refi",
	Short:         "Mortgage refinance savings calculator",
	Long:          "Compare your current mortgage with a proposed refinance: monthly payments, monthly savings, and lifetime savings.",
	RunE:          runCompare,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

// newLoanFlagSet declares the loan field flags.
func newLoanFlagSet() *pflag.FlagSet {
	loanFlags := pflag.NewFlagSet("loan", pflag.ContinueOnError)
	loanFlags.String(flagOriginalAmount, "", "Current loan: original mortgage amount ($)")
	loanFlags.String(flagCurrentRate, "", "Current loan: original interest rate (%)")
	loanFlags.String(flagOriginationYear, "", fmt.Sprintf("Current loan: origination year (default %d years ago)", model.AssumedLoanAge))
	loanFlags.String(flagCurrentTerm, "", "Current loan: term in years (10, 15, 20, 30)")
	loanFlags.String(flagBalance, "", "New loan: current mortgage balance ($)")
	loanFlags.String(flagNewRate, "", "New loan: interest rate (%)")
	loanFlags.String(flagNewOriginationYear, "", "New loan: origination year (default this year)")
	loanFlags.String(flagClosingCosts, "", "New loan: closing costs ($)")
	loanFlags.String(flagCashIn, "", "New loan: cash paid in at closing ($)")
	loanFlags.String(flagNewTerm, "", "New loan: term in years (10, 15, 20, 30)")
	loanFlags.Bool(flagRollClosingCosts, false, "Roll closing costs into the new loan")
	return loanFlags
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "Calculate as of this calendar year (default current year)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log calculation details to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().AddFlagSet(newLoanFlagSet())
}

// currentYear returns the --year override or the calendar year.
func currentYear() int {
	if flagYear > 0 {
		return flagYear
	}
	return time.Now().Year()
}

// logger returns the diagnostics logger; silent unless --verbose.
func logger() *log.Logger {
	if !flagVerbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "refi: ", 0)
}

// loadInput builds calculator input from the saved profile, overridden by
// any loan flag passed on the command line, and validates it.
func loadInput(fs *pflag.FlagSet) (model.Input, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Input{}, err
	}
	in := cfg.Profile.Input()

	if err := applyLoanFlags(fs, &in); err != nil {
		return model.Input{}, err
	}
	if err := input.Validate(in, currentYear()); err != nil {
		return model.Input{}, fmt.Errorf("invalid input:\n%w", err)
	}
	return in, nil
}

func applyLoanFlags(fs *pflag.FlagSet, in *model.Input) error {
	amounts := []struct {
		name  string
		dst   **float64
		parse func(string) (*float64, error)
	}{
		{flagOriginalAmount, &in.Current.OriginalAmount, input.ParseAmount},
		{flagCurrentRate, &in.Current.Rate, input.ParseRate},
		{flagBalance, &in.New.CurrentBalance, input.ParseAmount},
		{flagNewRate, &in.New.Rate, input.ParseRate},
		{flagClosingCosts, &in.New.ClosingCosts, input.ParseAmount},
		{flagCashIn, &in.New.CashIn, input.ParseAmount},
	}
	for _, f := range amounts {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := f.parse(fs.Lookup(f.name).Value.String())
		if err != nil {
			return fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = v
	}

	ints := []struct {
		name  string
		dst   **int
		parse func(string) (*int, error)
	}{
		{flagOriginationYear, &in.Current.OriginationYear, input.ParseYear},
		{flagCurrentTerm, &in.Current.Term, input.ParseTerm},
		{flagNewOriginationYear, &in.New.OriginationYear, input.ParseYear},
		{flagNewTerm, &in.New.Term, input.ParseTerm},
	}
	for _, f := range ints {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := f.parse(fs.Lookup(f.name).Value.String())
		if err != nil {
			return fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = v
	}

	if fs.Changed(flagRollClosingCosts) {
		roll, err := fs.GetBool(flagRollClosingCosts)
		if err != nil {
			return err
		}
		in.RollClosingCosts = roll
	}
	return nil
}
