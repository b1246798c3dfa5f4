package synth

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SynthTestSuite struct {
	suite.Suite
	synth  *Synthesizer
	params Params
}

func TestSynthSuite(t *testing.T) {
	suite.Run(t, new(SynthTestSuite))
}

func (suite *SynthTestSuite) SetupTest() {
	suite.synth = NewSynthesizer()
	suite.params = Params{
		CurrentPrice:   25600,
		StrikeInterval: 50,
		Seed:           "2025-10-10-close",
		EffectiveDate:  "2025-10-10",
	}
}

func (suite *SynthTestSuite) TestATMStrike() {
	suite.Equal(25600.0, ATMStrike(25600, 50))
	suite.Equal(25600.0, ATMStrike(25612, 50))
	suite.Equal(25650.0, ATMStrike(25630, 50))
	// Degenerate interval leaves the price unchanged.
	suite.Equal(25612.0, ATMStrike(25612, 0))
}

func (suite *SynthTestSuite) TestSnapshotDeterminism() {
	first, err := suite.synth.Snapshot(suite.params)
	suite.NoError(err)

	second, err := suite.synth.Snapshot(suite.params)
	suite.NoError(err)

	suite.Equal(first, second)
}

func (suite *SynthTestSuite) TestSnapshotChangesWithSeed() {
	first, err := suite.synth.Snapshot(suite.params)
	suite.NoError(err)

	other := suite.params
	other.Seed = "2025-10-10-12-3"

	second, err := suite.synth.Snapshot(other)
	suite.NoError(err)

	suite.NotEqual(first.IntradayBars, second.IntradayBars)
}

func (suite *SynthTestSuite) TestIntradayBars() {
	bars, err := suite.synth.IntradayBars(suite.params)
	suite.NoError(err)
	suite.Len(bars, 78)

	suite.Equal("09:15", bars[0].Time)
	suite.Equal("09:20", bars[1].Time)
	suite.Equal("15:40", bars[77].Time)

	for _, bar := range bars {
		suite.Equal(bar.Close-20, bar.Open)
		suite.Equal(bar.Close+30, bar.High)
		suite.Equal(bar.Close-40, bar.Low)
		suite.GreaterOrEqual(bar.Volume, int64(0))
		suite.Less(bar.Volume, int64(10_000_000))
		suite.InDelta(suite.params.CurrentPrice, bar.Close, 50.0)
	}

	// Five minutes between consecutive bars.
	suite.Equal(int64(300), bars[1].Timestamp-bars[0].Timestamp)
}

func (suite *SynthTestSuite) TestIntradayBarsInvalidDate() {
	bad := suite.params
	bad.EffectiveDate = "not-a-date"

	_, err := suite.synth.IntradayBars(bad)
	suite.Error(err)
}

func (suite *SynthTestSuite) TestPremiumSeriesNonNegative() {
	bars, err := suite.synth.IntradayBars(suite.params)
	suite.NoError(err)

	points := suite.synth.PremiumSeries(suite.params.Seed, bars, 25600)
	suite.Len(points, len(bars))

	for i, p := range points {
		suite.GreaterOrEqual(p.CallPremium, 0.0)
		suite.GreaterOrEqual(p.PutPremium, 0.0)
		suite.Equal(bars[i].Time, p.Time)
		suite.Equal(bars[i].Timestamp, p.Timestamp)
	}
}

func (suite *SynthTestSuite) TestIVSmileShape() {
	points := suite.synth.IVSmile(suite.params.Seed, 25600, 50)
	suite.Len(points, 41)

	suite.Equal(24600.0, points[0].Strike)
	suite.Equal(26600.0, points[len(points)-1].Strike)

	// The smile rises with distance from ATM: the wings must exceed the ATM
	// level by more than the noise amplitude allows in the other direction.
	first := points[0]
	mid := points[20]
	suite.Equal(25600.0, mid.Strike)
	suite.Greater(first.CallIV, mid.CallIV)
	suite.Greater(first.PutIV, mid.PutIV)

	for _, p := range points {
		suite.GreaterOrEqual(p.CallIV, 18.0)
		suite.GreaterOrEqual(p.PutIV, 18.0)
	}
}

func (suite *SynthTestSuite) TestIVSmileDegenerateInterval() {
	points := suite.synth.IVSmile(suite.params.Seed, 25600, 0)
	suite.Len(points, 1)
	suite.Equal(25600.0, points[0].Strike)
}

func (suite *SynthTestSuite) TestOptionChainShape() {
	rows := suite.synth.OptionChain(suite.params)
	suite.Len(rows, 21)

	// Centered on the ATM strike with even spacing.
	suite.Equal(25600.0, rows[10].Strike)
	for i := 1; i < len(rows); i++ {
		suite.Equal(50.0, rows[i].Strike-rows[i-1].Strike)
	}
}

func (suite *SynthTestSuite) TestOptionChainLegInvariants() {
	rows := suite.synth.OptionChain(suite.params)

	for _, row := range rows {
		suite.GreaterOrEqual(row.Call.OI, int64(0))
		suite.GreaterOrEqual(row.Put.OI, int64(0))
		suite.GreaterOrEqual(row.Call.Volume, int64(0))
		suite.GreaterOrEqual(row.Put.Volume, int64(0))
		suite.GreaterOrEqual(row.Call.LTP, 0.0)
		suite.GreaterOrEqual(row.Put.LTP, 0.0)

		suite.GreaterOrEqual(row.Call.Delta, 0.0)
		suite.LessOrEqual(row.Call.Delta, 1.0)
		suite.GreaterOrEqual(row.Put.Delta, -1.0)
		suite.LessOrEqual(row.Put.Delta, 0.0)

		// Gamma formula is shared between the legs.
		suite.Equal(row.Call.Gamma, row.Put.Gamma)

		suite.LessOrEqual(row.Call.Theta, 0.0)
		suite.GreaterOrEqual(row.Call.Vega, 0.0)
	}
}

func (suite *SynthTestSuite) TestOptionChainDegenerateInterval() {
	bad := suite.params
	bad.StrikeInterval = 0

	suite.NotPanics(func() {
		rows := suite.synth.OptionChain(bad)
		suite.Empty(rows)
	})
}

func (suite *SynthTestSuite) TestSnapshotRejectsMissingSeed() {
	bad := suite.params
	bad.Seed = ""

	_, err := suite.synth.Snapshot(bad)
	suite.Error(err)
}
