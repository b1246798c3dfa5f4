package synth

import (
	"math"
	"time"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// IntradayBars generates exactly 78 five-minute bars starting at 09:15 IST
// on the effective date. Each bar depends only on (seed, index): there is no
// accumulation between bars, which keeps regeneration of any sub-range
// trivially consistent. This is a deliberate simplification, not a price
// walk.
func (s *Synthesizer) IntradayBars(params Params) ([]types.Bar, error) {
	start, err := sessionStart(params.EffectiveDate)
	if err != nil {
		return nil, err
	}

	bars := make([]types.Bar, 0, barsPerDay)

	for i := 0; i < barsPerDay; i++ {
		barTime := start.Add(time.Duration(i) * 5 * time.Minute)
		closePrice := params.CurrentPrice + (SeededRandom(params.Seed+"intraday", i)-0.5)*100

		bars = append(bars, types.Bar{
			Time:      barTime.In(IST).Format("15:04"),
			Timestamp: barTime.Unix(),
			Open:      closePrice - 20,
			High:      closePrice + 30,
			Low:       closePrice - 40,
			Close:     closePrice,
			Volume:    int64(math.Floor(SeededRandom(params.Seed+"volume", i) * 10_000_000)),
		})
	}

	return bars, nil
}

// PremiumSeries generates the ATM call/put premium series aligned
// one-to-one with the given bars. Time value decays linearly over the
// session; both premiums are clamped at zero.
func (s *Synthesizer) PremiumSeries(seed string, bars []types.Bar, atmStrike float64) []types.PremiumPoint {
	total := len(bars)
	points := make([]types.PremiumPoint, 0, total)

	for i, bar := range bars {
		timeDecay := 1 - (float64(i)/float64(total))*0.1

		points = append(points, types.PremiumPoint{
			Time:        bar.Time,
			Timestamp:   bar.Timestamp,
			CallPremium: math.Max(0, (bar.Close-atmStrike)+150*timeDecay+SeededRandom(seed+"call", i)*30),
			PutPremium:  math.Max(0, (atmStrike-bar.Close)+120*timeDecay+SeededRandom(seed+"put", i)*25),
		})
	}

	return points
}
