package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-service/internal/model"
	"restaurant-service/internal/store"
	"restaurant-service/pkg/logger"
	"restaurant-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MenuOptionRequest is one customization choice supplied with a menu.
type MenuOptionRequest struct {
	OptionGroupName string  `json:"option_group_name"`
	OptionType      string  `json:"option_type"`
	OptionName      string  `json:"option_name"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

// MenuRequest is the create payload for a menu item. The owning restaurant
// always comes from the token, never from the body.
type MenuRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	BasePrice   *float64            `json:"base_price"`
	Category    string              `json:"category"`
	ImageURL    string              `json:"image_url"`
	IsAvailable *bool               `json:"is_available"`
	Options     []MenuOptionRequest `json:"options"`
}

// ListMenus returns the caller's menu catalog, optionally filtered by
// category ("All" means no filter).
func (h *Handler) ListMenus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("menu", "list")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	menus, err := h.store.ListMenus(ident.RestaurantID, c.QueryParam("category"))
	if err != nil {
		log.Error("Failed to fetch menus", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch menus"})
	}

	return c.JSON(http.StatusOK, menus)
}

// GetMenu returns one menu item owned by the caller's restaurant.
func (h *Handler) GetMenu(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("menu", "get")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid menu ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	menu, err := h.store.GetMenu(ident.RestaurantID, uint(menuID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Menu not found"})
		}
		log.Error("Failed to fetch menu", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch menu"})
	}

	return c.JSON(http.StatusOK, menu)
}

// CreateMenu adds a menu item (with any options) to the caller's catalog.
func (h *Handler) CreateMenu(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("menu", "create")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	var req MenuRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" || req.BasePrice == nil || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required menu data"})
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	menu := model.Menu{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   *req.BasePrice,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: isAvailable,
	}
	for _, opt := range req.Options {
		optionType := opt.OptionType
		if optionType == "" {
			optionType = "single_choice"
		}
		menu.Options = append(menu.Options, model.MenuOption{
			OptionGroupName: opt.OptionGroupName,
			OptionType:      optionType,
			OptionName:      opt.OptionName,
			PriceAdjustment: opt.PriceAdjustment,
		})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateMenu(ident.RestaurantID, &menu); err != nil {
		log.Error("Failed to create menu", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create menu"})
	}

	log.Info("Menu created",
		zap.Uint("id", menu.ID),
		zap.String("name", menu.Name),
		zap.Uint("restaurant_id", menu.RestaurantID))

	return c.JSON(http.StatusCreated, echo.Map{"message": "Menu created successfully", "id": menu.ID})
}

// UpdateMenu applies the allow-listed fields of the payload to one menu item.
func (h *Handler) UpdateMenu(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("menu", "update")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid menu ID"})
	}

	var update store.MenuUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if update.Empty() {
		return c.JSON(http.StatusOK, echo.Map{"message": "No valid fields provided for update"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.store.UpdateMenu(ident.RestaurantID, uint(menuID), &update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Menu not found"})
		}
		log.Error("Failed to update menu", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update menu"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Menu updated successfully"})
}

// DeleteMenu removes one menu item from the caller's catalog.
func (h *Handler) DeleteMenu(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("menu", "delete")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid menu ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.store.DeleteMenu(ident.RestaurantID, uint(menuID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Menu not found"})
		}
		log.Error("Failed to delete menu", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete menu"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Menu deleted successfully"})
}
