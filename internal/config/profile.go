package config

import "github.com/theirongolddev/refi/internal/model"

// Profile is the loan comparison the calculator starts from.
// Omitted numbers stay unset.
type Profile struct {
	RollClosingCosts bool           `toml:"roll_closing_costs"`
	Current          CurrentProfile `toml:"current"`
	New              NewProfile     `toml:"new"`
}

// CurrentProfile holds the saved current-loan fields.
type CurrentProfile struct {
	OriginalAmount  *float64 `toml:"original_amount,omitempty"`
	Rate            *float64 `toml:"rate,omitempty"`
	OriginationYear *int     `toml:"origination_year,omitempty"`
	Term            *int     `toml:"term,omitempty"`
}

// NewProfile holds the saved new-loan fields.
type NewProfile struct {
	CurrentBalance  *float64 `toml:"current_balance,omitempty"`
	Rate            *float64 `toml:"rate,omitempty"`
	OriginationYear *int     `toml:"origination_year,omitempty"`
	ClosingCosts    *float64 `toml:"closing_costs,omitempty"`
	CashIn          *float64 `toml:"cash_in,omitempty"`
	Term            *int     `toml:"term,omitempty"`
}

// Input converts the profile into calculator input.
func (p Profile) Input() model.Input {
	return model.Input{
		Current: model.CurrentLoan{
			OriginalAmount:  p.Current.OriginalAmount,
			Rate:            p.Current.Rate,
			OriginationYear: p.Current.OriginationYear,
			Term:            p.Current.Term,
		},
		New: model.NewLoan{
			CurrentBalance:  p.New.CurrentBalance,
			Rate:            p.New.Rate,
			OriginationYear: p.New.OriginationYear,
			ClosingCosts:    p.New.ClosingCosts,
			CashIn:          p.New.CashIn,
			Term:            p.New.Term,
		},
		RollClosingCosts: p.RollClosingCosts,
	}
}

// ProfileFromInput is the inverse of Profile.Input.
func ProfileFromInput(in model.Input) Profile {
	return Profile{
		RollClosingCosts: in.RollClosingCosts,
		Current: CurrentProfile{
			OriginalAmount:  in.Current.OriginalAmount,
			Rate:            in.Current.Rate,
			OriginationYear: in.Current.OriginationYear,
			Term:            in.Current.Term,
		},
		New: NewProfile{
			CurrentBalance:  in.New.CurrentBalance,
			Rate:            in.New.Rate,
			OriginationYear: in.New.OriginationYear,
			ClosingCosts:    in.New.ClosingCosts,
			CashIn:          in.New.CashIn,
			Term:            in.New.Term,
		},
	}
}
