package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/marketpulse-io/marketpulse/internal/types"
)

type MATestSuite struct {
	suite.Suite
}

func TestMASuite(t *testing.T) {
	suite.Run(t, new(MATestSuite))
}

func (suite *MATestSuite) TestSMAValue() {
	sma := NewSMA(3).(*SMA)

	suite.InDelta(20.0, sma.Value([]float64{5, 10, 20, 30}), 1e-9)
}

func (suite *MATestSuite) TestSMAFallbackReturnsLastPrice() {
	sma := NewSMA(20).(*SMA)

	suite.Equal(104.0, sma.Value([]float64{100, 102, 104}))
}

func (suite *MATestSuite) TestEMAValue() {
	ema := NewEMA(3).(*EMA)

	// Seed SMA over first 3 prices = 20; multiplier 0.5;
	// then (40-20)*0.5+20 = 30.
	suite.InDelta(30.0, ema.Value([]float64{10, 20, 30, 40}), 1e-9)
}

func (suite *MATestSuite) TestEMAFallbackReturnsLastPrice() {
	ema := NewEMA(50).(*EMA)

	suite.Equal(104.0, ema.Value([]float64{100, 102, 104}))
}

func (suite *MATestSuite) TestEmptySeries() {
	suite.Equal(0.0, calculateSMA(nil, 20))
	suite.Equal(0.0, calculateEMA(nil, 20))
}

func (suite *MATestSuite) TestConfig() {
	sma := NewSMA(20)
	suite.NoError(sma.Config(50))
	suite.Equal("SMA (50)", sma.Name())
	suite.Error(sma.Config(0))
	suite.Error(sma.Config("bad"))

	ema := NewEMA(20)
	suite.NoError(ema.Config(50))
	suite.Equal("EMA (50)", ema.Name())
	suite.Error(ema.Config(-1))
}

func (suite *MATestSuite) TestComputeSignalAndStrength() {
	sma := NewSMA(2)

	// Average of last two is 100; current price above is bullish.
	reading, err := sma.Compute([]float64{98, 102}, 105)
	suite.NoError(err)
	suite.Equal(types.SignalBullish, reading.Signal)
	suite.Greater(reading.Strength, 0.0)
	suite.LessOrEqual(reading.Strength, 100.0)

	// Current price below the average is bearish.
	reading, err = sma.Compute([]float64{98, 102}, 95)
	suite.NoError(err)
	suite.Equal(types.SignalBearish, reading.Signal)
}

func (suite *MATestSuite) TestStrengthSaturates() {
	// A 10% gap between price and MA saturates the 20x scaling at 100.
	suite.Equal(100.0, maStrength(100, 90))
}
