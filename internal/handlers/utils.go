package handlers

import (
	"fmt"
	"strings"
	"time"

	"homeledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseUserIDParam parses the :userId path parameter
func parseUserIDParam(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID")
	}
	return userID, nil
}

// parseDateParam parses an optional YYYY-MM-DD query parameter
func parseDateParam(c echo.Context, name string) (*time.Time, error) {
	value := c.QueryParam(name)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected YYYY-MM-DD", name)
	}
	return &parsed, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getBoolParam(c echo.Context, name string) bool {
	return strings.EqualFold(c.QueryParam(name), "true")
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
