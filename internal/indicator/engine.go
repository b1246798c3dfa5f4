package indicator

import (
	"math"

	"github.com/moznion/go-optional"

	"github.com/marketpulse-io/marketpulse/internal/types"
	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

// Engine computes the fixed indicator battery over a price series and
// aggregates the readings into a recommendation. It is stateless after
// construction and safe for concurrent use.
type Engine struct {
	registry IndicatorRegistry
}

// NewEngine creates an engine with the standard battery: RSI at 14 and 9,
// MACD(12, 26, 9), SMA at 20/50/100/200, EMA at 20/50 and Bollinger Bands
// (20, 2).
func NewEngine() (*Engine, error) {
	registry := NewIndicatorRegistry()

	battery := []Indicator{
		NewRSI(14),
		NewRSI(9),
		NewMACD(),
		NewSMA(20),
		NewSMA(50),
		NewSMA(100),
		NewSMA(200),
		NewEMA(20),
		NewEMA(50),
		NewBollingerBands(),
	}

	for _, ind := range battery {
		if err := registry.RegisterIndicator(ind); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIndicatorAlreadyExists, "failed to build indicator battery", err)
		}
	}

	return &Engine{registry: registry}, nil
}

// Registry exposes the engine's indicator registry.
func (e *Engine) Registry() IndicatorRegistry {
	return e.registry
}

// Compute runs the full battery over the price series. currentPrice
// defaults to the last close when not provided. An empty series is a
// "no data" error: fabricating indicators is the synthesizer's job, never
// the engine's.
func (e *Engine) Compute(prices []float64, currentPrice optional.Option[float64]) (types.TechnicalSnapshot, error) {
	if len(prices) == 0 {
		return types.TechnicalSnapshot{}, errors.New(errors.ErrCodeEmptyPriceSeries, "cannot compute indicators over an empty price series")
	}

	price := prices[len(prices)-1]
	if currentPrice.IsSome() {
		p, err := currentPrice.Take()
		if err != nil {
			return types.TechnicalSnapshot{}, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to read current price", err)
		}

		price = p
	}

	names := e.registry.ListIndicators()
	readings := make([]types.IndicatorReading, 0, len(names))

	for _, name := range names {
		ind, err := e.registry.GetIndicator(name)
		if err != nil {
			return types.TechnicalSnapshot{}, err
		}

		reading, err := ind.Compute(prices, price)
		if err != nil {
			return types.TechnicalSnapshot{}, errors.Wrapf(errors.ErrCodeIndicatorCalculation, err, "indicator %s failed", name)
		}

		readings = append(readings, reading)
	}

	return types.TechnicalSnapshot{
		Indicators:     readings,
		Recommendation: Recommend(readings),
	}, nil
}

// Recommend aggregates a batch of readings. Overbought, Oversold and
// Neutral all tally into the neutral count; only clean Bullish/Bearish
// signals drive the percentages.
func Recommend(readings []types.IndicatorReading) types.Recommendation {
	var bullish, bearish int

	for _, r := range readings {
		switch r.Signal {
		case types.SignalBullish:
			bullish++
		case types.SignalBearish:
			bearish++
		}
	}

	total := len(readings)
	neutral := total - bullish - bearish

	if total == 0 {
		return types.Recommendation{
			Action:     types.ActionNeutral,
			Confidence: 50,
		}
	}

	bullishPercent := float64(bullish) / float64(total) * 100
	bearishPercent := float64(bearish) / float64(total) * 100

	action := types.ActionNeutral
	confidence := int(math.Round(50 + math.Abs(bullishPercent-bearishPercent)/2))

	switch {
	case bullishPercent > 70:
		action = types.ActionStrongBullish
		confidence = int(math.Round(bullishPercent))
	case bullishPercent > 55:
		action = types.ActionBullish
		confidence = int(math.Round(bullishPercent))
	case bearishPercent > 70:
		action = types.ActionStrongBearish
		confidence = int(math.Round(bearishPercent))
	case bearishPercent > 55:
		action = types.ActionBearish
		confidence = int(math.Round(bearishPercent))
	}

	return types.Recommendation{
		Action:       action,
		Confidence:   confidence,
		BullishCount: bullish,
		BearishCount: bearish,
		NeutralCount: neutral,
	}
}
