package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidType      ErrorCode = "TRANSACTION_003"
	TransactionInvalidPeriod    ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
)

// Investment error codes (INVESTMENT_*)
const (
	InvestmentNotFound         ErrorCode = "INVESTMENT_001"
	InvestmentInvalidType      ErrorCode = "INVESTMENT_002"
	InvestmentInvalidAmount    ErrorCode = "INVESTMENT_003"
	InvestmentInvalidLot       ErrorCode = "INVESTMENT_004"
	InvestmentValuationFailed  ErrorCode = "INVESTMENT_005"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound            ErrorCode = "GOAL_001"
	GoalInvalidContribution ErrorCode = "GOAL_002"
	GoalAlreadyCompleted    ErrorCode = "GOAL_003"
	GoalTargetDateRequired  ErrorCode = "GOAL_004"
)

// Market error codes (MARKET_*)
const (
	MarketQuoteNotFound ErrorCode = "MARKET_001"
	MarketInvalidPrice  ErrorCode = "MARKET_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidType:      "Invalid transaction type",
	TransactionInvalidPeriod:    "Invalid recurring period",
	TransactionValidationFailed: "Transaction validation failed",

	// Investment errors
	InvestmentNotFound:        "Investment not found",
	InvestmentInvalidType:     "Invalid asset type",
	InvestmentInvalidAmount:   "Invalid investment amount",
	InvestmentInvalidLot:      "Invalid purchase lot",
	InvestmentValuationFailed: "Investment valuation failed",

	// Goal errors
	GoalNotFound:            "Goal not found",
	GoalInvalidContribution: "Contribution amount must be positive",
	GoalAlreadyCompleted:    "Goal is already completed",
	GoalTargetDateRequired:  "Goal target date is required",

	// Market errors
	MarketQuoteNotFound: "No quote available for this symbol",
	MarketInvalidPrice:  "Quote price must be positive",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
