package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

const chartResponse = `{
  "chart": {
    "result": [{
      "meta": {
        "regularMarketPrice": 25612.5,
        "previousClose": 25765.0,
        "chartPreviousClose": 25765.0
      },
      "timestamp": [1760067900, 1760068200, 1760068500],
      "indicators": {
        "quote": [{
          "open":   [25600.0, 25610.0, null],
          "high":   [25620.0, 25630.0, null],
          "low":    [25590.0, 25600.0, null],
          "close":  [25610.0, 25612.5, null],
          "volume": [120000, 98000, null]
        }]
      }
    }],
    "error": null
  }
}`

const chartErrorResponse = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

type YahooTestSuite struct {
	suite.Suite
}

func TestYahooSuite(t *testing.T) {
	suite.Run(t, new(YahooTestSuite))
}

func (suite *YahooTestSuite) newProvider(handler http.HandlerFunc) (*YahooProvider, *httptest.Server) {
	server := httptest.NewServer(handler)

	return NewYahooProvider(Config{BaseURL: server.URL}), server
}

func (suite *YahooTestSuite) TestIntradayChart() {
	var gotPath, gotQuery string

	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Write([]byte(chartResponse))
	})
	defer server.Close()

	chart, err := provider.IntradayChart(context.Background(), "NIFTY")
	suite.NoError(err)

	// Internal symbol is mapped to the Yahoo ticker, escaped on the wire.
	suite.Equal("/v8/finance/chart/%5ENSEI", gotPath)
	suite.Equal("interval=5m&range=1d", gotQuery)

	// The null candle is dropped.
	suite.Require().Len(chart.Bars, 2)
	suite.Equal(25610.0, chart.Bars[0].Close)
	suite.Equal(int64(1760067900), chart.Bars[0].Timestamp)
	suite.Equal(int64(120000), chart.Bars[0].Volume)

	suite.Equal(25612.5, chart.Meta.RegularMarketPrice)
	suite.Equal(25765.0, chart.Meta.ChartPreviousClose)
}

func (suite *YahooTestSuite) TestBarTimesAreIST() {
	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartResponse))
	})
	defer server.Close()

	chart, err := provider.IntradayChart(context.Background(), "NIFTY")
	suite.NoError(err)

	// 1760067900 is 2025-10-10 09:15 IST.
	suite.Equal("09:15", chart.Bars[0].Time)
}

func (suite *YahooTestSuite) TestHistoricalCloses() {
	var gotQuery string

	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(chartResponse))
	})
	defer server.Close()

	closes, meta, err := provider.HistoricalCloses(context.Background(), "NIFTY")
	suite.NoError(err)
	suite.Equal("interval=15m&range=60d", gotQuery)
	suite.Equal([]float64{25610.0, 25612.5}, closes)
	suite.Equal(25612.5, meta.RegularMarketPrice)
}

func (suite *YahooTestSuite) TestUnmappedSymbolPassesThrough() {
	var gotPath string

	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(chartResponse))
	})
	defer server.Close()

	_, err := provider.IntradayChart(context.Background(), "RELIANCE.NS")
	suite.NoError(err)
	suite.Equal("/v8/finance/chart/RELIANCE.NS", gotPath)
}

func (suite *YahooTestSuite) TestAPIError() {
	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartErrorResponse))
	})
	defer server.Close()

	_, err := provider.IntradayChart(context.Background(), "NIFTY")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUpstreamUnavailable))
}

func (suite *YahooTestSuite) TestNon200Status() {
	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer server.Close()

	_, err := provider.IntradayChart(context.Background(), "NIFTY")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUpstreamUnavailable))
}

func (suite *YahooTestSuite) TestMalformedBody() {
	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	defer server.Close()

	_, err := provider.IntradayChart(context.Background(), "NIFTY")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMarketDataParseFailed))
}

func (suite *YahooTestSuite) TestEmptyResult() {
	provider, server := suite.newProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart": {"result": [], "error": null}}`))
	})
	defer server.Close()

	_, err := provider.IntradayChart(context.Background(), "NIFTY")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeNoDataFound))
}

func (suite *YahooTestSuite) TestProviderFactory() {
	provider, err := NewProvider(ProviderYahoo, Config{})
	suite.NoError(err)
	suite.Equal("yahoo", provider.Name())

	_, err = NewProvider(ProviderType("bloomberg"), Config{})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidProvider))
}
