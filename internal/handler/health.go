package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health handles GET /manage/health. It is used by liveness probes and load
// balancers and always answers 200 without touching any downstream service.
func Health(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
