package errors

// ErrorCode represents a typed error code for categorizing errors.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1
	ErrCodeGeneral ErrorCode = 2

	// Validation errors (100-199)
	ErrCodeInvalidParameter      ErrorCode = 100
	ErrCodeInvalidConfig         ErrorCode = 101
	ErrCodeInvalidSymbol         ErrorCode = 102
	ErrCodeInvalidType           ErrorCode = 107
	ErrCodeInvalidPeriod         ErrorCode = 108
	ErrCodeMissingParameter      ErrorCode = 109
	ErrCodeInvalidVersion        ErrorCode = 110
	ErrCodeInvalidStrikeInterval ErrorCode = 111
	ErrCodeInvalidRequest        ErrorCode = 112

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound      ErrorCode = 200
	ErrCodeNoDataFound       ErrorCode = 204
	ErrCodeEmptyPriceSeries  ErrorCode = 205
	ErrCodeDegenerateRequest ErrorCode = 206

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302

	// Synthesizer errors (400-499)
	ErrCodeSynthesisFailed ErrorCode = 400

	// Market data errors (700-799)
	ErrCodeUpstreamUnavailable   ErrorCode = 700
	ErrCodeMarketDataParseFailed ErrorCode = 702
	ErrCodeInvalidProvider       ErrorCode = 704
)
