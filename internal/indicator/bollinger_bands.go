package indicator

import (
	"fmt"
	"math"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

// BollingerBands indicator implements Bollinger Bands calculation.
type BollingerBands struct {
	period int
	stdDev float64
}

// Bands holds the three Bollinger Band levels.
type Bands struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// NewBollingerBands creates a new Bollinger Bands indicator with default
// configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{
		period: 20, // Default period
		stdDev: 2,  // Default standard deviation multiplier
	}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() string {
	return "Bollinger Bands"
}

// Type returns the indicator type.
func (bb *BollingerBands) Type() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Category returns the indicator group.
func (bb *BollingerBands) Category() string {
	return "Volatility"
}

// Config configures the Bollinger Bands indicator. Expected parameters: period (int), stdDev (float64).
func (bb *BollingerBands) Config(params ...any) error {
	if len(params) != 2 {
		return fmt.Errorf("Config expects 2 parameters: period (int), stdDev (float64)")
	}

	period, ok := params[0].(int)
	if !ok {
		return fmt.Errorf("invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return fmt.Errorf("period must be a positive integer, got %d", period)
	}

	stdDev, ok := params[1].(float64)
	if !ok {
		return fmt.Errorf("invalid type for stdDev parameter, expected float64")
	}

	if stdDev <= 0 {
		return fmt.Errorf("stdDev must be positive, got %f", stdDev)
	}

	bb.period = period
	bb.stdDev = stdDev

	return nil
}

// Compute calculates the Bollinger Bands reading. The formatted value shows
// the upper and lower band separated by a slash. Price above the upper band
// is overbought, below the lower band oversold, otherwise neutral with a
// flat strength of 50.
func (bb *BollingerBands) Compute(prices []float64, currentPrice float64) (types.IndicatorReading, error) {
	bands := bb.Bands(prices)

	signal := types.SignalNeutral
	strength := 50.0

	switch {
	case currentPrice > bands.Upper:
		signal = types.SignalOverbought
		if bands.Upper != 0 {
			strength = clampStrength((currentPrice - bands.Upper) / bands.Upper * 100 * 10)
		}
	case currentPrice < bands.Lower:
		signal = types.SignalOversold
		if bands.Lower != 0 {
			strength = clampStrength((bands.Lower - currentPrice) / bands.Lower * 100 * 10)
		}
	}

	return types.IndicatorReading{
		Category: bb.Category(),
		Name:     bb.Name(),
		Value:    formatValue(bands.Upper) + " / " + formatValue(bands.Lower),
		Signal:   signal,
		Strength: strength,
	}, nil
}

// Bands calculates the band levels: middle is the period SMA, upper and
// lower are the middle offset by the population standard deviation of the
// last "period" prices times the configured multiplier.
func (bb *BollingerBands) Bands(prices []float64) Bands {
	middle := calculateSMA(prices, bb.period)

	window := prices
	if len(prices) > bb.period {
		window = prices[len(prices)-bb.period:]
	}

	var squaredDiffSum float64

	for _, price := range window {
		diff := price - middle
		squaredDiffSum += diff * diff
	}

	std := math.Sqrt(squaredDiffSum / float64(bb.period))

	return Bands{
		Upper:  middle + std*bb.stdDev,
		Middle: middle,
		Lower:  middle - std*bb.stdDev,
	}
}
