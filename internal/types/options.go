package types

// OptionLeg holds the quoted fields and Greeks for one side (call or put)
// of a strike. OI and Volume are non-negative contract counts; the Greeks
// are heuristic approximations, not a pricing-model output.
type OptionLeg struct {
	OI     int64   `json:"oi" yaml:"oi" validate:"gte=0"`
	Volume int64   `json:"volume" yaml:"volume" validate:"gte=0"`
	IV     float64 `json:"iv" yaml:"iv"`
	LTP    float64 `json:"ltp" yaml:"ltp" validate:"gte=0"`
	Change float64 `json:"change" yaml:"change"`
	Delta  float64 `json:"delta" yaml:"delta" validate:"gte=-1,lte=1"`
	Gamma  float64 `json:"gamma" yaml:"gamma" validate:"gte=0"`
	Theta  float64 `json:"theta" yaml:"theta"`
	Vega   float64 `json:"vega" yaml:"vega"`
}

// ChainRow is one strike of an option chain, call and put side by side.
type ChainRow struct {
	Strike float64   `json:"strike" yaml:"strike"`
	Call   OptionLeg `json:"call" yaml:"call"`
	Put    OptionLeg `json:"put" yaml:"put"`
}
