package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the envelope every failed request answers with.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code plus human context.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption mutates a response under construction.
type ErrorOption func(*ErrorResponse)

// WithDetails sets the per-field or per-item detail lines.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the code's default message.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code with its default message,
// then applies any options.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError flattens a field-to-message map into a VALIDATION_001
// response with one "field: message" detail line per entry.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	return NewValidationErrorFromList(details, traceID)
}

// NewValidationErrorFromList builds a VALIDATION_001 response from
// pre-formatted detail lines.
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError replaces err with the generic SYSTEM_001 envelope so
// internals never reach the client. The original error comes back for
// server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError is WrapSystemError with the database-specific code.
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the response.
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus maps an error code onto the HTTP status it should answer
// with. Unknown codes fall back to 500.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate,
		TransactionInvalidAmount, InvestmentInvalidAmount, MarketInvalidPrice:
		return http.StatusBadRequest

	case TransactionNotFound, InvestmentNotFound, GoalNotFound, MarketQuoteNotFound:
		return http.StatusNotFound

	case GoalAlreadyCompleted:
		return http.StatusConflict

	// Well-formed requests that break a domain rule.
	case TransactionValidationFailed, TransactionInvalidType, TransactionInvalidPeriod,
		InvestmentInvalidType, InvestmentInvalidLot, InvestmentValuationFailed,
		GoalInvalidContribution, GoalTargetDateRequired:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the status for this response's code.
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError reports whether the response maps to a 4xx status.
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError reports whether the response maps to a 5xx status.
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
