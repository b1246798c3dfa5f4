package synth

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RandTestSuite struct {
	suite.Suite
}

func TestRandSuite(t *testing.T) {
	suite.Run(t, new(RandTestSuite))
}

func (suite *RandTestSuite) TestSeededRandomDeterminism() {
	first := SeededRandom("2025-10-10-close", 0)
	second := SeededRandom("2025-10-10-close", 0)
	suite.Equal(first, second)
}

func (suite *RandTestSuite) TestSeededRandomRange() {
	for i := 0; i < 100; i++ {
		v := SeededRandom("2025-10-10-close", i)
		suite.GreaterOrEqual(v, 0.0)
		suite.Less(v, 1.0)
	}
}

func (suite *RandTestSuite) TestSeededRandomNoShortCycles() {
	seen := make(map[float64]int)
	for i := 0; i < 100; i++ {
		seen[SeededRandom("cycle-check", i)]++
	}

	// Distinct indexes should yield overwhelmingly distinct values.
	suite.GreaterOrEqual(len(seen), 95)
}

func (suite *RandTestSuite) TestSeededRandomIndependentStreams() {
	suite.NotEqual(
		SeededRandom("2025-10-10-12-3call", 5),
		SeededRandom("2025-10-10-12-3put", 5),
	)
}

func (suite *RandTestSuite) TestSeededRandomEmptySeed() {
	suite.NotPanics(func() {
		v := SeededRandom("", 0)
		suite.GreaterOrEqual(v, 0.0)
		suite.Less(v, 1.0)
	})
}

func (suite *RandTestSuite) TestMulberry32Determinism() {
	a := Mulberry32(12345)
	b := Mulberry32(12345)

	for i := 0; i < 10; i++ {
		suite.Equal(a(), b())
	}
}

func (suite *RandTestSuite) TestMulberry32Range() {
	next := Mulberry32(HashString("2025-10-10"))
	for i := 0; i < 100; i++ {
		v := next()
		suite.GreaterOrEqual(v, 0.0)
		suite.Less(v, 1.0)
	}
}

func (suite *RandTestSuite) TestMulberry32AdvancesState() {
	next := Mulberry32(777)
	suite.NotEqual(next(), next())
}

func (suite *RandTestSuite) TestHashStringStable() {
	suite.Equal(HashString("2025-10-10"), HashString("2025-10-10"))
	suite.NotEqual(HashString("2025-10-10"), HashString("2025-10-11"))
}

func (suite *RandTestSuite) TestHashStringEmpty() {
	suite.Equal(uint32(0), HashString(""))
}
