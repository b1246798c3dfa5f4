package indicator

import (
	"fmt"
	"math"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// minMACDPrices is the series length below which MACD returns its all-zero
// fallback.
const minMACDPrices = 35

// MACD represents the Moving Average Convergence Divergence indicator.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// MACDValue bundles the MACD line, signal line and histogram.
type MACDValue struct {
	Value     float64
	Signal    float64
	Histogram float64
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() Indicator {
	return &MACD{
		fastPeriod:   12, // Default fast period
		slowPeriod:   26, // Default slow period
		signalPeriod: 9,  // Default signal period
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() string {
	return "MACD"
}

// Type returns the indicator type.
func (m *MACD) Type() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Category returns the indicator group.
func (m *MACD) Category() string {
	return "Trend"
}

// Config configures the MACD indicator. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (m *MACD) Config(params ...any) error {
	if len(params) != 3 {
		return fmt.Errorf("Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)")
	}

	periods := make([]int, 3)

	for i, param := range params {
		period, ok := param.(int)
		if !ok {
			return fmt.Errorf("invalid type for period parameter %d, expected int", i)
		}

		if period <= 0 {
			return fmt.Errorf("period must be a positive integer, got %d", period)
		}

		periods[i] = period
	}

	m.fastPeriod = periods[0]
	m.slowPeriod = periods[1]
	m.signalPeriod = periods[2]

	return nil
}

// Compute calculates the MACD reading for the price series. The formatted
// value shows the MACD line and signal line separated by a slash.
func (m *MACD) Compute(prices []float64, currentPrice float64) (types.IndicatorReading, error) {
	v := m.Value(prices)

	signal := types.SignalBearish
	if v.Histogram > 0 {
		signal = types.SignalBullish
	}

	return types.IndicatorReading{
		Category: m.Category(),
		Name:     m.Name(),
		Value:    formatValue(v.Value) + " / " + formatValue(v.Signal),
		Signal:   signal,
		Strength: clampStrength(math.Abs(v.Histogram) * 10),
	}, nil
}

// Value calculates the MACD line over a trailing window, then a 9-period
// EMA of those points as the signal line. Series shorter than 35 prices
// return the all-zero fallback exactly.
func (m *MACD) Value(prices []float64) MACDValue {
	if len(prices) < minMACDPrices {
		return MACDValue{}
	}

	// Build the MACD line over the trailing window: from the first index
	// with a full slow EMA up through the end, at least 20 points.
	start := m.slowPeriod
	if len(prices)-20 > start {
		start = len(prices) - 20
	}

	macdValues := make([]float64, 0, len(prices)-start+1)
	for i := start; i <= len(prices); i++ {
		slice := prices[:i]
		macdValues = append(macdValues, calculateEMA(slice, m.fastPeriod)-calculateEMA(slice, m.slowPeriod))
	}

	value := macdValues[len(macdValues)-1]
	signal := calculateEMA(macdValues, m.signalPeriod)

	return MACDValue{
		Value:     value,
		Signal:    signal,
		Histogram: value - signal,
	}
}
