package handler

import (
	"restaurant-service/internal/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts every endpoint. Registration, login, health and
// metrics are public; everything under /api sits behind the tenant-scoping
// guard.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.HealthCheck)
	e.GET("/metrics", h.Metrics)

	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	api := e.Group("/api")
	api.Use(middleware.Auth(h.jwt))

	api.GET("/admin/protected_data", h.ProtectedData)
	api.GET("/admin/dashboard", h.Dashboard)

	menus := api.Group("/menus")
	menus.GET("", h.ListMenus)
	menus.POST("", h.CreateMenu)
	menus.GET("/:id", h.GetMenu)
	menus.PUT("/:id", h.UpdateMenu)
	menus.PATCH("/:id", h.UpdateMenu)
	menus.DELETE("/:id", h.DeleteMenu)

	orders := api.Group("/orders")
	orders.GET("", h.ListOrders)
	orders.POST("", h.CreateOrder)
	orders.GET("/:id", h.GetOrder)
	orders.PUT("/:id", h.UpdateOrder)
	orders.PATCH("/:id", h.UpdateOrder)
	orders.DELETE("/:id", h.DeleteOrder)
	orders.GET("/:id/items", h.ListOrderItems)

	employees := api.Group("/employees")
	employees.GET("", h.ListEmployees)
	employees.POST("", h.CreateEmployee)
	employees.PUT("/:id", h.UpdateEmployee)
	employees.PATCH("/:id", h.UpdateEmployee)
	employees.DELETE("/:id", h.DeleteEmployee)

	tables := api.Group("/tables")
	tables.GET("", h.ListTables)
	tables.PATCH("/:id", h.UpdateTableStatus)
}
