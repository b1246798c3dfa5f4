// Package synth generates deterministic synthetic market data for the
// periods when the upstream quote feed is unavailable or incomplete. All
// output is a pure function of the seed bucket and the structural
// parameters, so two requests inside the same bucket serialize to identical
// bytes.
package synth

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/marketpulse-io/marketpulse/internal/types"
	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

// barsPerDay is one trading session (09:15-15:30 IST) at 5-minute
// resolution.
const barsPerDay = 78

// numStrikes is the width of a generated option chain, centered on the ATM
// strike.
const numStrikes = 21

// Params are the structural inputs of one synthesis request.
type Params struct {
	CurrentPrice   float64 `validate:"gt=0"`
	StrikeInterval float64
	Seed           string `validate:"required"`
	EffectiveDate  string `validate:"required,datetime=2006-01-02"`
}

// Synthesizer produces synthetic market snapshots. It holds no mutable
// state beyond the validator and is safe for concurrent use.
type Synthesizer struct {
	validate *validator.Validate
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		validate: validator.New(),
	}
}

// Snapshot generates the full synthetic snapshot for the given parameters:
// intraday bars, the ATM premium series aligned to them, the IV smile and a
// 21-strike option chain. Degenerate strike intervals shrink the smile and
// chain to well-formed minimal sequences instead of failing.
func (s *Synthesizer) Snapshot(params Params) (types.MarketSnapshot, error) {
	if err := s.validate.Struct(params); err != nil {
		return types.MarketSnapshot{}, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid synthesis parameters", err)
	}

	atmStrike := ATMStrike(params.CurrentPrice, params.StrikeInterval)

	bars, err := s.IntradayBars(params)
	if err != nil {
		return types.MarketSnapshot{}, err
	}

	return types.MarketSnapshot{
		IntradayBars:  bars,
		PremiumSeries: s.PremiumSeries(params.Seed, bars, atmStrike),
		IVSmile:       s.IVSmile(params.Seed, atmStrike, params.StrikeInterval),
		OptionChain:   s.OptionChain(params),
	}, nil
}

// ATMStrike returns the strike nearest to price, aligned to the strike
// interval. A non-positive interval returns the price unchanged.
func ATMStrike(price, strikeInterval float64) float64 {
	if strikeInterval <= 0 {
		return price
	}

	return math.Round(price/strikeInterval) * strikeInterval
}

// sessionStart returns 09:15 IST on the effective trading date.
func sessionStart(effectiveDate string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", effectiveDate, IST)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrCodeSynthesisFailed, err, "invalid effective date %q", effectiveDate)
	}

	return day.Add(9*time.Hour + 15*time.Minute), nil
}
