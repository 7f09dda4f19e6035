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

// OrderItemRequest is one line of an order-creation payload.
type OrderItemRequest struct {
	MenuID       *uint    `json:"menu_id"`
	Quantity     *int     `json:"quantity"`
	PriceAtOrder *float64 `json:"price_at_order"`
	Notes        string   `json:"notes"`
}

// OrderRequest is the create payload for an order with its items.
type OrderRequest struct {
	TableNumber   *int               `json:"table_number"`
	TotalAmount   *float64           `json:"total_amount"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	QRCodeURL     string             `json:"qr_code_url"`
	Items         []OrderItemRequest `json:"items"`
}

// ListOrders returns the caller's orders, newest first, items embedded.
func (h *Handler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("order", "list")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	orders, err := h.store.ListOrders(ident.RestaurantID)
	if err != nil {
		log.Error("Failed to fetch orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch orders"})
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order owned by the caller's restaurant.
func (h *Handler) GetOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("order", "get")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid order ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	order, err := h.store.GetOrder(ident.RestaurantID, uint(orderID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		log.Error("Failed to fetch order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch order"})
	}

	return c.JSON(http.StatusOK, order)
}

// CreateOrder writes an order and all of its items atomically.
func (h *Handler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("order", "create")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.TableNumber == nil || req.TotalAmount == nil || req.Status == "" || req.PaymentStatus == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required order data"})
	}

	order := model.Order{
		TableNumber:   *req.TableNumber,
		TotalAmount:   *req.TotalAmount,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		QRCodeURL:     req.QRCodeURL,
	}
	for _, item := range req.Items {
		if item.MenuID == nil || item.Quantity == nil || item.PriceAtOrder == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Item validation error"})
		}
		order.Items = append(order.Items, model.OrderItem{
			MenuID:       *item.MenuID,
			Quantity:     *item.Quantity,
			PriceAtOrder: *item.PriceAtOrder,
			Notes:        item.Notes,
		})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateOrder(ident.RestaurantID, &order); err != nil {
		log.Error("Failed to create order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create order"})
	}

	log.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Uint("restaurant_id", order.RestaurantID))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Order and items created successfully",
		"order_id": order.ID,
	})
}

// UpdateOrder applies the allow-listed fields of the payload to one order.
func (h *Handler) UpdateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("order", "update")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid order ID"})
	}

	var update store.OrderUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if update.Empty() {
		return c.JSON(http.StatusOK, echo.Map{"message": "No valid fields provided for update"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.store.UpdateOrder(ident.RestaurantID, uint(orderID), &update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		log.Error("Failed to update order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update order"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Order updated successfully"})
}

// DeleteOrder removes one order and its items.
func (h *Handler) DeleteOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("order", "delete")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid order ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.store.DeleteOrder(ident.RestaurantID, uint(orderID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		log.Error("Failed to delete order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete order"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Order deleted successfully"})
}

// ListOrderItems returns the items of one order after checking the order
// belongs to the caller's restaurant.
func (h *Handler) ListOrderItems(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("order", "list_items")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid order ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	items, err := h.store.ListOrderItems(ident.RestaurantID, uint(orderID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		log.Error("Failed to fetch order items", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch order items"})
	}

	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
