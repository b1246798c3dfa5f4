package types

// LegAction is the direction of a strategy leg.
type LegAction string

const (
	LegActionBuy  LegAction = "Buy"
	LegActionSell LegAction = "Sell"
)

// LegType is the option type of a strategy leg.
type LegType string

const (
	LegTypeCall LegType = "Call"
	LegTypePut  LegType = "Put"
)

// StrategyLeg is a single option position within a strategy.
type StrategyLeg struct {
	Action  LegAction `json:"action" yaml:"action" validate:"required,oneof=Buy Sell"`
	Type    LegType   `json:"type" yaml:"type" validate:"required,oneof=Call Put"`
	Strike  float64   `json:"strike" yaml:"strike" validate:"gt=0"`
	Premium float64   `json:"premium" yaml:"premium" validate:"gte=0"`
}

// PayoffPoint is the strategy payoff at one underlying price.
type PayoffPoint struct {
	Price  float64 `json:"price" yaml:"price"`
	Payoff float64 `json:"payoff" yaml:"payoff"`
}

// PayoffResult is the full payoff diagram for a strategy plus its summary
// statistics. Breakevens are the interpolated zero crossings of the curve.
type PayoffResult struct {
	Points     []PayoffPoint `json:"points" yaml:"points"`
	MaxProfit  float64       `json:"maxProfit" yaml:"max_profit"`
	MaxLoss    float64       `json:"maxLoss" yaml:"max_loss"`
	Breakevens []float64     `json:"breakevens" yaml:"breakevens"`
}
