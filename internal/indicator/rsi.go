package indicator

import (
	"fmt"
	"math"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// RSI represents the Relative Strength Index indicator using Wilder's
// smoothing method.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with the given period.
func NewRSI(period int) Indicator {
	return &RSI{
		period: period,
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() string {
	return fmt.Sprintf("RSI (%d)", r.period)
}

// Type returns the indicator type.
func (r *RSI) Type() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Category returns the indicator group.
func (r *RSI) Category() string {
	return "Momentum"
}

// Config configures the RSI indicator. Expected parameters: period (int).
func (r *RSI) Config(params ...any) error {
	if len(params) != 1 {
		return fmt.Errorf("Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return fmt.Errorf("invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return fmt.Errorf("period must be a positive integer, got %d", period)
	}

	r.period = period

	return nil
}

// Compute calculates the RSI reading for the price series.
func (r *RSI) Compute(prices []float64, currentPrice float64) (types.IndicatorReading, error) {
	value := r.Value(prices)

	var signal types.SignalLabel

	switch {
	case value > 70:
		signal = types.SignalOverbought
	case value < 30:
		signal = types.SignalOversold
	case value > 50:
		signal = types.SignalBullish
	default:
		signal = types.SignalBearish
	}

	return types.IndicatorReading{
		Category: r.Category(),
		Name:     r.Name(),
		Value:    formatValue(value),
		Signal:   signal,
		Strength: clampStrength(math.Abs(value-50) * 2),
	}, nil
}

// Value calculates the raw RSI value with Wilder's smoothing. Fewer than
// period+1 prices returns the neutral value 50 (documented fallback, not an
// error). A series with no losses returns 100; no gains returns 0.
func (r *RSI) Value(prices []float64) float64 {
	if len(prices) < r.period+1 {
		return 50
	}

	var avgGain, avgLoss float64

	// Initial averages over the first "period" changes.
	for i := 1; i <= r.period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}

	avgGain /= float64(r.period)
	avgLoss /= float64(r.period)

	// Wilder smoothing for the remaining changes.
	for i := r.period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]

		var gain, loss float64
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		avgGain = (avgGain*float64(r.period-1) + gain) / float64(r.period)
		avgLoss = (avgLoss*float64(r.period-1) + loss) / float64(r.period)
	}

	if avgLoss == 0 {
		return 100
	}

	if avgGain == 0 {
		return 0
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs))
}
