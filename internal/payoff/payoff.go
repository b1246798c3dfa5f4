// Package payoff computes option strategy payoff diagrams: piecewise-linear
// expiry payoff per leg, summed across legs, with breakeven points found by
// linear interpolation between grid samples.
package payoff

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/marketpulse-io/marketpulse/internal/types"
	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

// Request describes one payoff calculation.
type Request struct {
	StockPrice float64             `json:"stockPrice" validate:"gt=0"`
	Legs       []types.StrategyLeg `json:"legs" validate:"required,min=1,dive"`
	LotSize    float64             `json:"lotSize" validate:"gte=0"`
}

// Calculator computes payoff diagrams. Stateless apart from the validator;
// safe for concurrent use.
type Calculator struct {
	validate *validator.Validate
}

// NewCalculator creates a new payoff calculator.
func NewCalculator() *Calculator {
	return &Calculator{
		validate: validator.New(),
	}
}

// Compute builds the payoff curve over a price grid spanning the strategy's
// strikes with padding, then derives max profit, max loss and interpolated
// breakevens. A zero lot size defaults to 1.
func (c *Calculator) Compute(req Request) (types.PayoffResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return types.PayoffResult{}, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid payoff request", err)
	}

	lotSize := req.LotSize
	if lotSize == 0 {
		lotSize = 1
	}

	minStrike := req.Legs[0].Strike
	maxStrike := req.Legs[0].Strike

	for _, leg := range req.Legs {
		minStrike = math.Min(minStrike, leg.Strike)
		maxStrike = math.Max(maxStrike, leg.Strike)
	}

	strikeRange := maxStrike - minStrike
	if strikeRange == 0 {
		strikeRange = req.StockPrice * 0.1
	}

	padding := math.Max(strikeRange*1.5, req.StockPrice*0.08)
	startPrice := math.Floor((minStrike-padding)/100) * 100
	endPrice := math.Ceil((maxStrike+padding)/100) * 100
	step := math.Max(math.Round((endPrice-startPrice)/50), 10)

	var points []types.PayoffPoint

	for price := startPrice; price <= endPrice; price += step {
		points = append(points, types.PayoffPoint{
			Price:  price,
			Payoff: legsPayoff(req.Legs, price) * lotSize,
		})
	}

	return summarize(points), nil
}

// legsPayoff sums the expiry payoff of every leg at the given underlying
// price.
func legsPayoff(legs []types.StrategyLeg, price float64) float64 {
	var payoff float64

	for _, leg := range legs {
		multiplier := 1.0
		if leg.Action == types.LegActionSell {
			multiplier = -1
		}

		var intrinsic float64
		if leg.Type == types.LegTypeCall {
			intrinsic = math.Max(0, price-leg.Strike)
		} else {
			intrinsic = math.Max(0, leg.Strike-price)
		}

		payoff += multiplier * (intrinsic - leg.Premium)
	}

	return payoff
}

// summarize scans the curve for extremes and zero crossings.
func summarize(points []types.PayoffPoint) types.PayoffResult {
	maxProfit := math.Inf(-1)
	maxLoss := math.Inf(1)

	var breakevens []float64

	for i, p := range points {
		maxProfit = math.Max(maxProfit, p.Payoff)
		maxLoss = math.Min(maxLoss, p.Payoff)

		if i == 0 {
			continue
		}

		prev := points[i-1]
		crossesUp := prev.Payoff < 0 && p.Payoff >= 0
		crossesDown := prev.Payoff >= 0 && p.Payoff < 0

		if crossesUp || crossesDown {
			exact := prev.Price + (p.Price-prev.Price)*(0-prev.Payoff)/(p.Payoff-prev.Payoff)
			breakevens = append(breakevens, math.Round(exact))
		}
	}

	return types.PayoffResult{
		Points:     points,
		MaxProfit:  maxProfit,
		MaxLoss:    maxLoss,
		Breakevens: breakevens,
	}
}
