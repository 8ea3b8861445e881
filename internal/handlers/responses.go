package handlers

import (
	"net/http"

	"homeledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers never return raw errors or use echo.NewHTTPError. Client and
// business failures go through SendError with a code from internal/errors;
// anything unexpected goes through SendSystemError so internals stay out of
// the response body.

// TraceIDContextKey is where the request id middleware stores the trace id.
const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope for every 2xx body.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse aliases the shared error envelope so handler tests can
// unmarshal without importing internal/errors directly.
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// SendError writes the error envelope for code, with the HTTP status the
// code maps to. Returns the c.JSON error, which is nil on success.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.GetHTTPStatus(), resp)
}

// SendSystemError logs err and answers with a generic 500 envelope.
func SendSystemError(c echo.Context, err error) error {
	resp, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, resp)
}
