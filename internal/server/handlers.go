package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/marketpulse-io/marketpulse/internal/flows"
	"github.com/marketpulse-io/marketpulse/internal/payoff"
	"github.com/marketpulse-io/marketpulse/internal/synth"
	"github.com/marketpulse-io/marketpulse/internal/types"
	"github.com/marketpulse-io/marketpulse/internal/version"
	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

// Fallback anchor used when the upstream feed is unavailable. Chosen so the
// synthetic series sits in a realistic index range.
const (
	mockCurrentPrice  = 25600.0
	mockPreviousClose = 25765.0
)

// flowReportDays is the window of the FII/DII report.
const flowReportDays = 10

type symbolRequest struct {
	Symbol         string  `json:"symbol"`
	StrikeInterval float64 `json:"strikeInterval"`
}

type technicalDataResponse struct {
	Symbol         string                   `json:"symbol"`
	CurrentPrice   float64                  `json:"currentPrice"`
	PreviousClose  float64                  `json:"previousClose"`
	Change         float64                  `json:"change"`
	ChangePercent  float64                  `json:"changePercent"`
	ATMStrike      float64                  `json:"atmStrike"`
	Indicators     []types.IndicatorReading `json:"indicators"`
	Recommendation types.Recommendation     `json:"recommendation"`
	Timestamp      string                   `json:"timestamp"`
}

type liveChartResponse struct {
	types.Quote

	Change        float64              `json:"change"`
	ChangePercent float64              `json:"changePercent"`
	ATMStrike     float64              `json:"atmStrike"`
	IsMarketOpen  bool                 `json:"isMarketOpen"`
	IntradayBars  []types.Bar          `json:"intradayPriceData"`
	PremiumSeries []types.PremiumPoint `json:"optionPremiumData"`
	IVSmile       []types.IVPoint      `json:"ivSmileData"`
	Timestamp     string               `json:"timestamp"`
	UsingMockData bool                 `json:"usingMockData"`
}

type optionChainResponse struct {
	Symbol        string           `json:"symbol"`
	CurrentPrice  float64          `json:"currentPrice"`
	ATMStrike     float64          `json:"atmStrike"`
	OptionChain   []types.ChainRow `json:"optionChain"`
	Timestamp     string           `json:"timestamp"`
	UsingMockData bool             `json:"usingMockData"`
}

type payoffRequest struct {
	Symbol string `json:"symbol"`

	payoff.Request
}

// decodeSymbolRequest parses the request body and fills the strike interval
// from config when the client leaves it out.
func (s *Server) decodeSymbolRequest(r *http.Request) (symbolRequest, error) {
	var req symbolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return symbolRequest{}, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode request body", err)
	}

	if req.Symbol == "" {
		return symbolRequest{}, errors.New(errors.ErrCodeMissingParameter, "symbol is required")
	}

	if req.StrikeInterval == 0 {
		symbol, err := s.cfg.Symbol(req.Symbol)
		if err != nil {
			return symbolRequest{}, err
		}

		req.StrikeInterval = symbol.StrikeInterval
	}

	if req.StrikeInterval < 0 {
		return symbolRequest{}, errors.New(errors.ErrCodeInvalidStrikeInterval, "strike interval must be positive")
	}

	return req, nil
}

// handleTechnicalData computes the indicator battery over 60 days of
// 15-minute closes, with the live price substituted for the latest candle.
func (s *Server) handleTechnicalData(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeSymbolRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	closes, meta, err := s.provider.HistoricalCloses(r.Context(), req.Symbol)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if len(closes) < 2 {
		s.writeError(w, errors.NewInsufficientDataErrorf(2, len(closes), req.Symbol,
			"need at least 2 candles for indicator calculation, got %d", len(closes)))
		return
	}

	currentPrice := meta.RegularMarketPrice
	if currentPrice == 0 {
		currentPrice = closes[len(closes)-1]
	}

	previousClose := meta.PreviousClose
	if previousClose == 0 {
		previousClose = meta.ChartPreviousClose
	}

	if previousClose == 0 {
		previousClose = closes[len(closes)-2]
	}

	// The latest candle may lag the live quote; pin it to the live price so
	// every indicator sees the same tip.
	prices := make([]float64, len(closes))
	copy(prices, closes)
	prices[len(prices)-1] = currentPrice

	snapshot, err := s.engine.Compute(prices, optional.Some(currentPrice))
	if err != nil {
		s.writeError(w, err)
		return
	}

	change := currentPrice - previousClose

	s.writeJSON(w, http.StatusOK, technicalDataResponse{
		Symbol:         req.Symbol,
		CurrentPrice:   currentPrice,
		PreviousClose:  previousClose,
		Change:         change,
		ChangePercent:  change / previousClose * 100,
		ATMStrike:      synth.ATMStrike(currentPrice, req.StrikeInterval),
		Indicators:     snapshot.Indicators,
		Recommendation: snapshot.Recommendation,
		Timestamp:      s.now().UTC().Format(time.RFC3339),
	})
}

// handleLiveChart serves the intraday dashboard payload. Upstream candles
// are used when available; otherwise the response degrades to the seeded
// synthetic series, flagged with usingMockData.
func (s *Server) handleLiveChart(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeSymbolRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp, err := s.liveChart(r, req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) liveChart(r *http.Request, req symbolRequest) (liveChartResponse, error) {
	bucket := synth.DeriveBucket(s.now())

	// Outside market hours the as-of timestamp freezes at the close so
	// repeated polls serialize identically.
	asOf := bucket.EffectiveDate + "T15:30:00+05:30"
	if bucket.Open {
		asOf = s.now().In(synth.IST).Format(time.RFC3339)
	}

	chart, err := s.provider.IntradayChart(r.Context(), req.Symbol)
	if err != nil || len(chart.Bars) == 0 {
		if err != nil {
			s.logger.Warn("upstream chart unavailable, serving synthetic data",
				zap.String("symbol", req.Symbol),
				zap.Error(err),
			)
		}

		return s.syntheticLiveChart(req, bucket, asOf)
	}

	bars := chart.Bars
	currentPrice := bars[len(bars)-1].Close

	previousClose := chart.Meta.ChartPreviousClose
	if previousClose == 0 {
		previousClose = chart.Meta.PreviousClose
	}

	atmStrike := synth.ATMStrike(currentPrice, req.StrikeInterval)

	dayHigh, dayLow := bars[0].High, bars[0].Low
	for _, bar := range bars {
		if bar.High > dayHigh {
			dayHigh = bar.High
		}

		if bar.Low < dayLow {
			dayLow = bar.Low
		}
	}

	change := currentPrice - previousClose

	resp := liveChartResponse{
		Quote: types.Quote{
			Symbol:        req.Symbol,
			CurrentPrice:  currentPrice,
			PreviousClose: previousClose,
			DayHigh:       dayHigh,
			DayLow:        dayLow,
		},
		Change:        change,
		ATMStrike:     atmStrike,
		IsMarketOpen:  bucket.Open,
		IntradayBars:  bars,
		PremiumSeries: s.synthesizer.PremiumSeries(bucket.Seed, bars, atmStrike),
		IVSmile:       s.synthesizer.IVSmile(bucket.Seed, atmStrike, req.StrikeInterval),
		Timestamp:     asOf,
		UsingMockData: false,
	}

	if previousClose != 0 {
		resp.ChangePercent = change / previousClose * 100
	}

	return resp, nil
}

func (s *Server) syntheticLiveChart(req symbolRequest, bucket synth.Bucket, asOf string) (liveChartResponse, error) {
	params := synth.Params{
		CurrentPrice:   mockCurrentPrice,
		StrikeInterval: req.StrikeInterval,
		Seed:           bucket.Seed,
		EffectiveDate:  bucket.EffectiveDate,
	}

	snapshot, err := s.synthesizer.Snapshot(params)
	if err != nil {
		return liveChartResponse{}, err
	}

	change := mockCurrentPrice - mockPreviousClose

	return liveChartResponse{
		Quote: types.Quote{
			Symbol:        req.Symbol,
			CurrentPrice:  mockCurrentPrice,
			PreviousClose: mockPreviousClose,
			DayHigh:       mockCurrentPrice + 100,
			DayLow:        mockCurrentPrice - 150,
		},
		Change:        change,
		ChangePercent: change / mockPreviousClose * 100,
		ATMStrike:     synth.ATMStrike(mockCurrentPrice, req.StrikeInterval),
		IsMarketOpen:  bucket.Open,
		IntradayBars:  snapshot.IntradayBars,
		PremiumSeries: snapshot.PremiumSeries,
		IVSmile:       snapshot.IVSmile,
		Timestamp:     asOf,
		UsingMockData: true,
	}, nil
}

// handleOptionChain serves the 21-strike option chain. The chain itself is
// always synthetic; only the anchoring price comes from upstream.
func (s *Server) handleOptionChain(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeSymbolRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	bucket := synth.DeriveBucket(s.now())

	currentPrice := mockCurrentPrice
	usingMockData := true

	chart, err := s.provider.IntradayChart(r.Context(), req.Symbol)
	if err == nil {
		if chart.Meta.RegularMarketPrice != 0 {
			currentPrice = chart.Meta.RegularMarketPrice
			usingMockData = false
		} else if len(chart.Bars) > 0 {
			currentPrice = chart.Bars[len(chart.Bars)-1].Close
			usingMockData = false
		}
	} else {
		s.logger.Warn("upstream quote unavailable, anchoring chain to fallback price",
			zap.String("symbol", req.Symbol),
			zap.Error(err),
		)
	}

	chain := s.synthesizer.OptionChain(synth.Params{
		CurrentPrice:   currentPrice,
		StrikeInterval: req.StrikeInterval,
		Seed:           bucket.Seed,
		EffectiveDate:  bucket.EffectiveDate,
	})

	s.writeJSON(w, http.StatusOK, optionChainResponse{
		Symbol:        req.Symbol,
		CurrentPrice:  currentPrice,
		ATMStrike:     synth.ATMStrike(currentPrice, req.StrikeInterval),
		OptionChain:   chain,
		Timestamp:     s.now().UTC().Format(time.RFC3339),
		UsingMockData: usingMockData,
	})
}

// handleFlows serves the synthetic FII/DII report for the last ten trading
// days.
func (s *Server) handleFlows(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, flows.Report(s.now(), flowReportDays))
}

// handlePayoff computes a strategy payoff diagram. When the request names a
// configured symbol and omits the lot size, the symbol's lot size applies.
func (s *Server) handlePayoff(w http.ResponseWriter, r *http.Request) {
	var req payoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode request body", err))
		return
	}

	if req.LotSize == 0 && req.Symbol != "" {
		if symbol, err := s.cfg.Symbol(req.Symbol); err == nil {
			req.LotSize = symbol.LotSize
		}
	}

	result, err := s.calculator.Compute(req.Request)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleVersion reports the server build version.
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version":  version.GetVersion(),
		"provider": s.provider.Name(),
	})
}

// writeJSON serializes v with the standard headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps domain error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	if errors.IsInsufficientDataError(err) {
		s.writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
		return
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidRequest,
		errors.ErrCodeInvalidParameter,
		errors.ErrCodeInvalidStrikeInterval,
		errors.ErrCodeMissingParameter,
		errors.ErrCodeEmptyPriceSeries,
		errors.ErrCodeDegenerateRequest:
		status = http.StatusBadRequest
	case errors.ErrCodeDataNotFound, errors.ErrCodeNoDataFound:
		status = http.StatusNotFound
	case errors.ErrCodeUpstreamUnavailable, errors.ErrCodeMarketDataParseFailed:
		status = http.StatusBadGateway
	}

	s.writeJSON(w, status, map[string]any{
		"error": err.Error(),
		"code":  int(errors.GetCode(err)),
	})
}
