// Package marketdata fetches quotes and candles from upstream market data
// providers. Yahoo Finance's public chart API is the only provider wired in
// today; the factory keeps the door open for others.
package marketdata

import (
	"context"

	"github.com/marketpulse-io/marketpulse/internal/types"
	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderYahoo ProviderType = "yahoo"
)

// Meta carries the quote-level fields that accompany a chart response.
type Meta struct {
	RegularMarketPrice float64
	PreviousClose      float64
	ChartPreviousClose float64
}

// Chart is a parsed candle series plus its quote metadata.
type Chart struct {
	Bars []types.Bar
	Meta Meta
}

// Provider fetches market data for a symbol. Implementations must be safe
// for concurrent use.
type Provider interface {
	// Name returns the provider's identifier.
	Name() string
	// IntradayChart fetches the current session's 5-minute candles.
	IntradayChart(ctx context.Context, symbol string) (Chart, error)
	// HistoricalCloses fetches 60 days of 15-minute closes, oldest first,
	// with null candles dropped. The metadata carries the live price and
	// previous close when the upstream supplies them.
	HistoricalCloses(ctx context.Context, symbol string) ([]float64, Meta, error)
}

// Config configures a provider instance.
type Config struct {
	// BaseURL overrides the upstream endpoint. Empty means the provider's
	// default.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds each upstream request. Zero means the
	// provider's default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// SymbolMap maps internal symbols to provider tickers.
	SymbolMap map[string]string `yaml:"symbol_map"`
}

// NewProvider creates a market data provider of the given type.
func NewProvider(providerType ProviderType, config Config) (Provider, error) {
	switch providerType {
	case ProviderYahoo:
		return NewYahooProvider(config), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}
