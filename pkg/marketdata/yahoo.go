package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/marketpulse-io/marketpulse/internal/synth"
	"github.com/marketpulse-io/marketpulse/internal/types"
	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

const (
	defaultYahooBaseURL = "https://query1.finance.yahoo.com"
	defaultYahooTimeout = 30 * time.Second
)

// defaultSymbolMap maps internal index names to Yahoo tickers.
var defaultSymbolMap = map[string]string{
	"NIFTY":     "^NSEI",
	"SENSEX":    "^BSESN",
	"BANKNIFTY": "^NSEBANK",
}

// YahooProvider implements Provider using Yahoo Finance's public chart API.
type YahooProvider struct {
	client    *http.Client
	baseURL   string
	symbolMap map[string]string
}

// NewYahooProvider creates a Yahoo Finance provider. Zero-valued config
// fields fall back to defaults.
func NewYahooProvider(config Config) *YahooProvider {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}

	timeout := defaultYahooTimeout
	if config.TimeoutSeconds > 0 {
		timeout = time.Duration(config.TimeoutSeconds) * time.Second
	}

	symbolMap := config.SymbolMap
	if len(symbolMap) == 0 {
		symbolMap = defaultSymbolMap
	}

	return &YahooProvider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		symbolMap: symbolMap,
	}
}

func (p *YahooProvider) Name() string { return string(ProviderYahoo) }

func (p *YahooProvider) yahooSymbol(symbol string) string {
	if mapped, ok := p.symbolMap[symbol]; ok {
		return mapped
	}

	return symbol
}

// yahooChart is the response structure of the Yahoo Finance chart API.
// Candle arrays use pointers because Yahoo emits null for missing bars.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

// IntradayChart fetches the current session's 5-minute candles in IST.
func (p *YahooProvider) IntradayChart(ctx context.Context, symbol string) (Chart, error) {
	chart, err := p.fetchChart(ctx, symbol, "5m", "1d")
	if err != nil {
		return Chart{}, err
	}

	return chart, nil
}

// HistoricalCloses fetches 60 days of 15-minute closes, the longest window
// Yahoo serves at that interval. Null candles are dropped.
func (p *YahooProvider) HistoricalCloses(ctx context.Context, symbol string) ([]float64, Meta, error) {
	chart, err := p.fetchChart(ctx, symbol, "15m", "60d")
	if err != nil {
		return nil, Meta{}, err
	}

	closes := make([]float64, 0, len(chart.Bars))
	for _, bar := range chart.Bars {
		closes = append(closes, bar.Close)
	}

	return closes, chart.Meta, nil
}

func (p *YahooProvider) fetchChart(ctx context.Context, symbol, interval, rng string) (Chart, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		p.baseURL, url.PathEscape(p.yahooSymbol(symbol)), interval, rng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Chart{}, errors.Wrap(errors.ErrCodeUpstreamUnavailable, "failed to build chart request", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return Chart{}, errors.Wrap(errors.ErrCodeUpstreamUnavailable, "chart request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Chart{}, errors.Wrap(errors.ErrCodeUpstreamUnavailable, "failed to read chart response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Chart{}, errors.Newf(errors.ErrCodeUpstreamUnavailable, "chart request returned status %d", resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return Chart{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "failed to decode chart response", err)
	}

	if chart.Chart.Error != nil {
		return Chart{}, errors.Newf(errors.ErrCodeUpstreamUnavailable, "chart api error: %s", chart.Chart.Error.Description)
	}

	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return Chart{}, errors.New(errors.ErrCodeNoDataFound, "chart response contains no data")
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]types.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}

		bars = append(bars, types.Bar{
			Time:      time.Unix(ts, 0).In(synth.IST).Format("15:04"),
			Timestamp: ts,
			Open:      deref(at(quote.Open, i)),
			High:      deref(at(quote.High, i)),
			Low:       deref(at(quote.Low, i)),
			Close:     *quote.Close[i],
			Volume:    int64(deref(at(quote.Volume, i))),
		})
	}

	return Chart{
		Bars: bars,
		Meta: Meta{
			RegularMarketPrice: result.Meta.RegularMarketPrice,
			PreviousClose:      result.Meta.PreviousClose,
			ChartPreviousClose: result.Meta.ChartPreviousClose,
		},
	}, nil
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}

	return values[i]
}
