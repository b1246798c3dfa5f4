package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestNewRSI() {
	rsi := NewRSI(14)
	suite.NotNil(rsi)
	suite.Equal("RSI (14)", rsi.Name())
	suite.Equal("Momentum", rsi.Category())
}

func (suite *RSITestSuite) TestConfig() {
	rsi := NewRSI(14)
	suite.NoError(rsi.Config(9))
	suite.Equal("RSI (9)", rsi.Name())

	suite.Error(rsi.Config())
	suite.Error(rsi.Config("invalid"))
	suite.Error(rsi.Config(0))
	suite.Error(rsi.Config(-5))
}

func (suite *RSITestSuite) TestInsufficientDataFallback() {
	rsi := NewRSI(14).(*RSI)

	// 14 prices is one short of period+1: neutral fallback.
	prices := make([]float64, 14)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}

	suite.Equal(50.0, rsi.Value(prices))
}

func (suite *RSITestSuite) TestStrictUptrendReturns100() {
	rsi := NewRSI(14).(*RSI)

	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i)*2
	}

	suite.Equal(100.0, rsi.Value(prices))
}

func (suite *RSITestSuite) TestStrictDowntrendReturns0() {
	rsi := NewRSI(14).(*RSI)

	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 200 - float64(i)*2
	}

	suite.Equal(0.0, rsi.Value(prices))
}

func (suite *RSITestSuite) TestBounds() {
	rsi := NewRSI(14).(*RSI)

	prices := []float64{100, 95, 103, 98, 107, 101, 110, 104, 113, 108, 116, 111, 120, 114, 123, 117}
	value := rsi.Value(prices)

	suite.GreaterOrEqual(value, 0.0)
	suite.LessOrEqual(value, 100.0)
}

func (suite *RSITestSuite) TestUpwardDriftScenario() {
	rsi := NewRSI(14).(*RSI)

	prices := []float64{100, 102, 104, 103, 105, 107, 106, 108, 110, 109, 111, 113, 112, 114, 116}
	value := rsi.Value(prices)

	suite.False(math.IsNaN(value))
	suite.False(math.IsInf(value, 0))
	suite.Greater(value, 50.0)
	suite.LessOrEqual(value, 100.0)
}

func (suite *RSITestSuite) TestComputeSignals() {
	rsi := NewRSI(14)

	// Strict uptrend: RSI 100, overbought.
	up := make([]float64, 30)
	for i := range up {
		up[i] = 100 + float64(i)
	}

	reading, err := rsi.Compute(up, up[len(up)-1])
	suite.NoError(err)
	suite.Equal(types.SignalOverbought, reading.Signal)
	suite.Equal(100.0, reading.Strength)
	suite.Equal("100.00", reading.Value)

	// Too little history: neutral 50 classifies as bearish (not above 50).
	reading, err = rsi.Compute([]float64{100, 101}, 101)
	suite.NoError(err)
	suite.Equal(types.SignalBearish, reading.Signal)
	suite.Equal(0.0, reading.Strength)
}
