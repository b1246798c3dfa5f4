package indicator

import (
	"fmt"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// SMA indicator implements Simple Moving Average calculation.
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator with the given period.
func NewSMA(period int) Indicator {
	return &SMA{
		period: period,
	}
}

// Name returns the name of the indicator.
func (m *SMA) Name() string {
	return fmt.Sprintf("SMA (%d)", m.period)
}

// Type returns the indicator type.
func (m *SMA) Type() types.IndicatorType {
	return types.IndicatorTypeSMA
}

// Category returns the indicator group.
func (m *SMA) Category() string {
	return "Moving Average"
}

// Config configures the SMA indicator. Expected parameters: period (int).
func (m *SMA) Config(params ...any) error {
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

	m.period = period

	return nil
}

// Compute calculates the SMA reading for the price series.
func (m *SMA) Compute(prices []float64, currentPrice float64) (types.IndicatorReading, error) {
	value := calculateSMA(prices, m.period)

	return types.IndicatorReading{
		Category: m.Category(),
		Name:     m.Name(),
		Value:    formatValue(value),
		Signal:   maSignal(currentPrice, value),
		Strength: maStrength(currentPrice, value),
	}, nil
}

// Value calculates the raw SMA value.
func (m *SMA) Value(prices []float64) float64 {
	return calculateSMA(prices, m.period)
}

// calculateSMA returns the mean of the last "period" prices. Fewer prices
// than the period returns the last price unchanged (fallback, not an
// error); an empty series returns 0.
func calculateSMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}

	if len(prices) < period {
		return prices[len(prices)-1]
	}

	var sum float64
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}

	return sum / float64(period)
}
