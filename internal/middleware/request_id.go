package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID between client and server
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace ID lives in the request context
	TraceIDContextKey = "trace_id"
)

// RequestID attaches a trace ID to every request. A client-supplied
// X-Trace-ID is kept so callers can correlate their own logs; otherwise a
// fresh UUID is generated. The ID is stored in the context for handlers and
// echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored by RequestID, or "" when the
// middleware did not run for this request.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
