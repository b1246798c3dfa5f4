package indicator

import (
	"fmt"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// EMA indicator implements Exponential Moving Average calculation.
type EMA struct {
	period int
}

// NewEMA creates a new EMA indicator with the given period.
func NewEMA(period int) Indicator {
	return &EMA{
		period: period,
	}
}

// Name returns the name of the indicator.
func (e *EMA) Name() string {
	return fmt.Sprintf("EMA (%d)", e.period)
}

// Type returns the indicator type.
func (e *EMA) Type() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Category returns the indicator group.
func (e *EMA) Category() string {
	return "Moving Average"
}

// Config configures the EMA indicator. Expected parameters: period (int).
func (e *EMA) Config(params ...any) error {
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

	e.period = period

	return nil
}

// Compute calculates the EMA reading for the price series.
func (e *EMA) Compute(prices []float64, currentPrice float64) (types.IndicatorReading, error) {
	value := calculateEMA(prices, e.period)

	return types.IndicatorReading{
		Category: e.Category(),
		Name:     e.Name(),
		Value:    formatValue(value),
		Signal:   maSignal(currentPrice, value),
		Strength: maStrength(currentPrice, value),
	}, nil
}

// Value calculates the raw EMA value.
func (e *EMA) Value(prices []float64) float64 {
	return calculateEMA(prices, e.period)
}

// calculateEMA seeds with the simple average of the first "period" prices,
// then applies standard exponential smoothing with multiplier 2/(period+1)
// over the remainder. Fewer prices than the period returns the last price
// unchanged (fallback, not an error); an empty series returns 0.
func calculateEMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}

	if len(prices) < period {
		return prices[len(prices)-1]
	}

	var sma float64
	for i := 0; i < period; i++ {
		sma += prices[i]
	}

	ema := sma / float64(period)
	multiplier := 2.0 / float64(period+1)

	for i := period; i < len(prices); i++ {
		ema = (prices[i]-ema)*multiplier + ema
	}

	return ema
}
