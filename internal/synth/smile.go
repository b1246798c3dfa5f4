package synth

import (
	"math"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// IVSmile generates the implied volatility smile for strikes from
// atmStrike-1000 to atmStrike+1000 at the given interval: a convex curve
// rising with distance from ATM plus seeded noise per strike. A
// non-positive interval degenerates to the single ATM point.
func (s *Synthesizer) IVSmile(seed string, atmStrike, strikeInterval float64) []types.IVPoint {
	if strikeInterval <= 0 {
		return []types.IVPoint{smilePoint(seed, atmStrike, atmStrike, 0)}
	}

	points := make([]types.IVPoint, 0, int(2000/strikeInterval)+1)

	index := 0
	for strike := atmStrike - 1000; strike <= atmStrike+1000; strike += strikeInterval {
		points = append(points, smilePoint(seed, strike, atmStrike, index))
		index++
	}

	return points
}

func smilePoint(seed string, strike, atmStrike float64, index int) types.IVPoint {
	atmDistance := math.Abs(strike - atmStrike)
	baseIV := 18.0
	volatilitySmile := (atmDistance / 1000) * 5

	return types.IVPoint{
		Strike: strike,
		CallIV: baseIV + volatilitySmile + SeededRandom(seed+"ivCall", index)*2,
		PutIV:  baseIV + volatilitySmile + SeededRandom(seed+"ivPut", index)*2,
	}
}
