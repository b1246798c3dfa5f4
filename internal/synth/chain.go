package synth

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// timeToExpiry is the assumed time to expiry for the synthetic chain, in
// years (one month).
const timeToExpiry = 30.0 / 365.0

// OptionChain generates a 21-strike chain centered on the ATM strike. Open
// interest decays exponentially with distance from the current price,
// volume is a seeded 10-30% fraction of OI, premiums are intrinsic value
// plus decaying time value plus noise, and the Greeks are heuristic
// closed-form approximations. Per-day change noise is keyed off the
// effective date alone so it stays stable across 5-minute buckets within a
// session. A non-positive strike interval returns an empty, well-formed
// chain.
func (s *Synthesizer) OptionChain(params Params) []types.ChainRow {
	if params.StrikeInterval <= 0 {
		return []types.ChainRow{}
	}

	atmStrike := ATMStrike(params.CurrentPrice, params.StrikeInterval)
	startStrike := atmStrike - math.Floor(numStrikes/2)*params.StrikeInterval

	rows := make([]types.ChainRow, 0, numStrikes)

	for i := 0; i < numStrikes; i++ {
		strike := startStrike + float64(i)*params.StrikeInterval
		rows = append(rows, s.chainRow(params, strike))
	}

	return rows
}

func (s *Synthesizer) chainRow(params Params, strike float64) types.ChainRow {
	price := params.CurrentPrice
	distance := math.Abs(strike - price)
	strikeKey := params.Seed + "-" + strconv.Itoa(int(strike))
	changeKey := params.EffectiveDate + "-" + strconv.Itoa(int(strike))

	// OI peaks near ATM and decays exponentially as strikes move OTM.
	oiMultiplier := math.Exp(-distance / 800)
	callOI := 80000 + SeededRandom(strikeKey, 1)*120000*oiMultiplier
	putOI := 80000 + SeededRandom(strikeKey, 2)*120000*oiMultiplier

	// Volume is typically 10-30% of OI.
	callVolume := callOI * (0.1 + SeededRandom(strikeKey, 3)*0.2)
	putVolume := putOI * (0.1 + SeededRandom(strikeKey, 4)*0.2)

	intrinsicCall := math.Max(price-strike, 0)
	intrinsicPut := math.Max(strike-price, 0)
	timeValue := 150 * math.Exp(-distance/600)

	callPremium := intrinsicCall + timeValue + SeededRandom(strikeKey, 5)*15
	putPremium := intrinsicPut + timeValue + SeededRandom(strikeKey, 6)*15

	// IV smile: OTM strikes carry higher implied volatility.
	baseIV := 14 + (distance/1000)*4
	callIV := baseIV + SeededRandom(strikeKey, 7)*1.5
	putIV := baseIV + SeededRandom(strikeKey, 8)*1.5

	// Day change is keyed to the effective date, not the 5-minute bucket.
	callChange := (SeededRandom(changeKey, 9) - 0.5) * 30
	putChange := (SeededRandom(changeKey, 10) - 0.5) * 30

	// Heuristic Greeks: delta linear in moneyness, gamma shared between the
	// legs, theta and vega derived from the call premium.
	callDelta := 0.5
	switch {
	case strike < price:
		callDelta = 0.5 + (price-strike)/(2*price)
	case strike > price:
		callDelta = 0.5 - (strike-price)/(2*price)
	}
	putDelta := callDelta - 1

	gamma := 0.01 * math.Exp(-distance/1000)
	theta := -(callPremium / (timeToExpiry * 365)) / 10
	vega := callPremium * math.Sqrt(timeToExpiry) * 0.01

	return types.ChainRow{
		Strike: strike,
		Call: types.OptionLeg{
			OI:     roundCount(callOI),
			Volume: roundCount(callVolume),
			IV:     round2(callIV),
			LTP:    round2(callPremium),
			Change: round2(callChange),
			Delta:  round3(clamp(callDelta, 0, 1)),
			Gamma:  round4(gamma),
			Theta:  round2(theta),
			Vega:   round2(vega),
		},
		Put: types.OptionLeg{
			OI:     roundCount(putOI),
			Volume: roundCount(putVolume),
			IV:     round2(putIV),
			LTP:    round2(putPremium),
			Change: round2(putChange),
			Delta:  round3(clamp(putDelta, -1, 0)),
			Gamma:  round4(gamma),
			Theta:  round2(theta),
			Vega:   round2(vega),
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundCount(v float64) int64 {
	if v < 0 {
		return 0
	}

	return int64(math.Round(v))
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

func round4(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}
