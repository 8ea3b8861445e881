package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"homeledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler renders any error that escapes a handler as the
// shared error envelope, logs it, and counts it. Errors raised after the
// response is committed are dropped.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var resp *errors.ErrorResponse
	var status int

	switch e := err.(type) {
	case *echo.HTTPError:
		resp = errors.NewErrorResponse(
			statusToErrorCode(e.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", e.Message)),
		)
		status = e.Code
	case validator.ValidationErrors:
		fields := make(map[string]string, len(e))
		for _, fe := range e {
			fields[fe.Field()] = describeFieldError(fe)
		}
		resp = errors.NewValidationError(fields, traceID)
		status = http.StatusBadRequest
	default:
		resp, _ = errors.WrapSystemError(err, traceID)
		status = resp.GetHTTPStatus()
	}

	level := slog.LevelWarn
	if status >= 500 {
		level = slog.LevelError
	}

	slog.Log(c.Request().Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", resp.Error.Code,
		"status", status,
		"message", resp.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(resp.Error.Code, c.Path(), fmt.Sprintf("%d", status)).Inc()

	if sendErr := c.JSON(status, resp); sendErr != nil {
		slog.Error("could not write error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

func statusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		// Route-level 404s have no resource context, treat as transaction lookups.
		return errors.TransactionNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// tagMessages covers the validator tags whose message needs no parameter.
var tagMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email address",
	"alpha":            "must contain only alphabetic characters",
	"alphanum":         "must contain only alphanumeric characters",
	"numeric":          "must be a valid number",
	"uuid":             "must be a valid UUID",
	"uuid4":            "must be a valid UUID v4",
	"positive_amount":  "must be greater than 0",
	"user_id":          "must be a valid user ID (UUID format)",
	"transaction_type": "must be a valid transaction type (income, expense)",
	"recurring_period": "must be a valid recurring period (WEEKLY, MONTHLY, QUARTERLY, YEARLY)",
	"asset_type":       "must be a valid asset type",
	"iso_date":         "must be a valid date (YYYY-MM-DD)",
}

// describeFieldError turns a validator.FieldError into a short message
// suitable for the per-field details map.
func describeFieldError(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
