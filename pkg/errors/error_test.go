package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNew() {
	err := New(ErrCodeInvalidParameter, "bad parameter")
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("bad parameter", err.Message)
	suite.Nil(err.Cause)
	suite.Equal("[100] bad parameter", err.Error())
}

func (suite *ErrorTestSuite) TestNewf() {
	err := Newf(ErrCodeNoDataFound, "no price data for symbol %s", "NIFTY")
	suite.Equal(ErrCodeNoDataFound, err.Code)
	suite.Contains(err.Error(), "NIFTY")
}

func (suite *ErrorTestSuite) TestWrapAndUnwrap() {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeUpstreamUnavailable, "quote fetch failed", cause)
	suite.Equal(cause, err.Unwrap())
	suite.Contains(err.Error(), "quote fetch failed")
	suite.Contains(err.Error(), "connection refused")
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeIndicatorNotFound, "not found")
	suite.Equal(ErrCodeIndicatorNotFound, GetCode(err))

	wrapped := fmt.Errorf("outer: %w", err)
	suite.Equal(ErrCodeIndicatorNotFound, GetCode(wrapped))

	plain := fmt.Errorf("plain error")
	suite.Equal(ErrCodeUnknown, GetCode(plain))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeEmptyPriceSeries, "empty series")
	suite.True(HasCode(err, ErrCodeEmptyPriceSeries))
	suite.False(HasCode(err, ErrCodeNoDataFound))
}

func (suite *ErrorTestSuite) TestInsufficientDataError() {
	err := NewInsufficientDataErrorf(15, 10, "NIFTY", "need %d prices, got %d", 15, 10)
	suite.Equal(15, err.Required)
	suite.Equal(10, err.Actual)
	suite.True(IsInsufficientDataError(err))

	wrapped := fmt.Errorf("indicator: %w", err)
	suite.True(IsInsufficientDataError(wrapped))

	suite.False(IsInsufficientDataError(fmt.Errorf("other")))
}
