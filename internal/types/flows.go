package types

// FIIEntry is one trading day of foreign institutional investor net flows,
// in crores. Values are synthetic but deterministic per date.
type FIIEntry struct {
	Date   string  `json:"date" yaml:"date" validate:"required"`
	Index  float64 `json:"index" yaml:"index"`
	Debt   float64 `json:"debt" yaml:"debt"`
	Hybrid float64 `json:"hybrid" yaml:"hybrid"`
}

// DIIEntry is one trading day of domestic institutional investor net flows.
type DIIEntry struct {
	Date   string  `json:"date" yaml:"date" validate:"required"`
	Equity float64 `json:"equity" yaml:"equity"`
	Debt   float64 `json:"debt" yaml:"debt"`
	Hybrid float64 `json:"hybrid" yaml:"hybrid"`
}

// FlowReport bundles the FII and DII series for the same trading days.
type FlowReport struct {
	FIIData []FIIEntry `json:"fiiData" yaml:"fii_data"`
	DIIData []DIIEntry `json:"diiData" yaml:"dii_data"`
}
