package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-service/internal/store"
	"restaurant-service/pkg/logger"
	"restaurant-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListTables returns the dine-in tables of the caller's restaurant.
func (h *Handler) ListTables(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("table", "list")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	tables, err := h.store.ListTables(ident.RestaurantID)
	if err != nil {
		log.Error("Failed to fetch tables", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch tables"})
	}

	return c.JSON(http.StatusOK, tables)
}

// UpdateTableStatus flips one table between free and occupied.
func (h *Handler) UpdateTableStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("table", "update_status")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	tableID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid table ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.store.UpdateTableStatus(ident.RestaurantID, uint(tableID), req.Status); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status"})
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Table not found"})
		default:
			log.Error("Failed to update table status", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update table"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
