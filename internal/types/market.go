package types

// Bar is a single intraday OHLCV bar. Time is IST wall-clock "HH:MM";
// Timestamp is epoch seconds.
type Bar struct {
	Time      string  `json:"time" yaml:"time" validate:"required"`
	Timestamp int64   `json:"timestamp" yaml:"timestamp" validate:"required"`
	Open      float64 `json:"open" yaml:"open"`
	High      float64 `json:"high" yaml:"high"`
	Low       float64 `json:"low" yaml:"low"`
	Close     float64 `json:"close" yaml:"close"`
	Volume    int64   `json:"volume" yaml:"volume" validate:"gte=0"`
}

// PremiumPoint is one point of the ATM option premium series, aligned
// one-to-one with the intraday bars.
type PremiumPoint struct {
	Time        string  `json:"time" yaml:"time"`
	Timestamp   int64   `json:"timestamp" yaml:"timestamp"`
	CallPremium float64 `json:"callPremium" yaml:"call_premium" validate:"gte=0"`
	PutPremium  float64 `json:"putPremium" yaml:"put_premium" validate:"gte=0"`
}

// IVPoint is one strike of the implied volatility smile.
type IVPoint struct {
	Strike float64 `json:"strike" yaml:"strike"`
	CallIV float64 `json:"callIV" yaml:"call_iv"`
	PutIV  float64 `json:"putIV" yaml:"put_iv"`
}

// Quote is the minimal upstream quote metadata the handlers need.
type Quote struct {
	Symbol        string  `json:"symbol" yaml:"symbol"`
	CurrentPrice  float64 `json:"currentPrice" yaml:"current_price"`
	PreviousClose float64 `json:"previousClose" yaml:"previous_close"`
	DayHigh       float64 `json:"dayHigh" yaml:"day_high"`
	DayLow        float64 `json:"dayLow" yaml:"day_low"`
}

// MarketSnapshot is the synthesizer output for one request: a full trading
// day of bars plus the option premium series and IV smile derived from the
// same seed.
type MarketSnapshot struct {
	IntradayBars  []Bar          `json:"intradayPriceData" yaml:"intraday_bars"`
	PremiumSeries []PremiumPoint `json:"optionPremiumData" yaml:"premium_series"`
	IVSmile       []IVPoint      `json:"ivSmileData" yaml:"iv_smile"`
	OptionChain   []ChainRow     `json:"optionChain" yaml:"option_chain"`
}
