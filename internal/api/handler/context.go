package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/mistgo/inventory-api/internal/api/middleware"
)

// ctxUserID extracts the caller id injected by the Auth middleware and
// fast-fails before any service call. A zero or missing id means the
// middleware did not run on this route — reject rather than fall through
// with an unscoped query.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(apimiddleware.ContextUserID).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return id, nil
}
