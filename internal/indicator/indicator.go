// Package indicator computes the technical indicator battery over a
// chronological close-price series. Indicators with insufficient history
// fall back to documented neutral values instead of failing; only a fully
// empty series is reported as an error, by the engine.
package indicator

import (
	"github.com/shopspring/decimal"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// Indicator interface defines methods that any technical indicator must implement
type Indicator interface {
	// Name returns the display name of the indicator, e.g. "RSI (14)".
	// The registry keys on display names because the battery holds several
	// instances of the same indicator type at different periods.
	Name() string
	// Type returns the indicator's type identifier.
	Type() types.IndicatorType
	// Category returns the indicator group, e.g. "Momentum".
	Category() string
	// Compute produces the reading for the given price series and current price.
	Compute(prices []float64, currentPrice float64) (types.IndicatorReading, error)
	// Config configures the indicator parameters.
	Config(params ...any) error
}

// formatValue renders a value with the 2-decimal serialization contract.
func formatValue(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// clampStrength bounds a strength score to [0, 100].
func clampStrength(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

// maSignal classifies a moving average reading: price above the average is
// bullish, otherwise bearish.
func maSignal(currentPrice, average float64) types.SignalLabel {
	if currentPrice > average {
		return types.SignalBullish
	}

	return types.SignalBearish
}

// maStrength scores the distance between price and a moving average,
// scaled so a 5% gap saturates at 100.
func maStrength(currentPrice, average float64) float64 {
	if currentPrice == 0 {
		return 0
	}

	distance := currentPrice - average
	if distance < 0 {
		distance = -distance
	}

	return clampStrength(distance / currentPrice * 100 * 20)
}
