package types

// IndicatorType identifies a technical indicator within a snapshot.
type IndicatorType string

const (
	IndicatorTypeRSI            IndicatorType = "rsi"
	IndicatorTypeMACD           IndicatorType = "macd"
	IndicatorTypeSMA            IndicatorType = "sma"
	IndicatorTypeEMA            IndicatorType = "ema"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
)

// SignalLabel classifies the reading of a single indicator.
type SignalLabel string

const (
	SignalBullish    SignalLabel = "Bullish"
	SignalBearish    SignalLabel = "Bearish"
	SignalNeutral    SignalLabel = "Neutral"
	SignalOverbought SignalLabel = "Overbought"
	SignalOversold   SignalLabel = "Oversold"
)

// RecommendationAction is the aggregate verdict over an indicator batch.
type RecommendationAction string

const (
	ActionStrongBullish RecommendationAction = "Strong Bullish"
	ActionBullish       RecommendationAction = "Bullish"
	ActionNeutral       RecommendationAction = "Neutral"
	ActionBearish       RecommendationAction = "Bearish"
	ActionStrongBearish RecommendationAction = "Strong Bearish"
)

// IndicatorReading is one computed indicator in a technical snapshot.
// Value is pre-formatted for display (2 decimal places for single values,
// "a / b" pairs for MACD and Bollinger Bands).
type IndicatorReading struct {
	Category string      `json:"category" yaml:"category" validate:"required"`
	Name     string      `json:"name" yaml:"name" validate:"required"`
	Value    string      `json:"value" yaml:"value" validate:"required"`
	Signal   SignalLabel `json:"signal" yaml:"signal" validate:"required,oneof=Bullish Bearish Neutral Overbought Oversold"`
	Strength float64     `json:"strength" yaml:"strength" validate:"gte=0,lte=100"`
}

// Recommendation aggregates an indicator batch into a single verdict.
// BullishCount + BearishCount + NeutralCount always equals the number of
// indicators in the batch.
type Recommendation struct {
	Action       RecommendationAction `json:"action" yaml:"action" validate:"required"`
	Confidence   int                  `json:"confidence" yaml:"confidence" validate:"gte=0,lte=100"`
	BullishCount int                  `json:"bullishCount" yaml:"bullish_count" validate:"gte=0"`
	BearishCount int                  `json:"bearishCount" yaml:"bearish_count" validate:"gte=0"`
	NeutralCount int                  `json:"neutralCount" yaml:"neutral_count" validate:"gte=0"`
}

// TechnicalSnapshot is the full output of the indicator engine for one
// price series.
type TechnicalSnapshot struct {
	Indicators     []IndicatorReading `json:"indicators" yaml:"indicators"`
	Recommendation Recommendation     `json:"recommendation" yaml:"recommendation"`
}
