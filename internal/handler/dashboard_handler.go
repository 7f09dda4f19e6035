package handler

import (
	"net/http"
	"time"

	"restaurant-service/pkg/logger"
	"restaurant-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dashboard returns paid-order sales aggregates for the caller's restaurant:
// total sales, the five best-selling menus, and revenue per category. An
// optional ?month=YYYY-MM narrows the window.
func (h *Handler) Dashboard(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("dashboard", "get")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	dashboard, err := h.store.GetDashboard(ident.RestaurantID, c.QueryParam("month"))
	if err != nil {
		log.Error("Failed to fetch dashboard data", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch dashboard data"})
	}

	return c.JSON(http.StatusOK, dashboard)
}
