package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"homeledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns handler panics into a 500 with the shared error
// envelope. The trace id is preserved so the crash can be correlated with
// the request log line.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("recovered from panic",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
				)

				body := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, body); err != nil {
					slog.Error("could not write panic response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
