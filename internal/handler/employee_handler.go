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

// EmployeeRequest is the create payload for a staff roster entry. HireDate
// uses YYYY-MM-DD.
type EmployeeRequest struct {
	FullName    string   `json:"full_name"`
	Position    string   `json:"position"`
	PhoneNumber string   `json:"phone_number"`
	Salary      *float64 `json:"salary"`
	HireDate    string   `json:"hire_date"`
}

// ListEmployees returns the staff roster of the caller's restaurant.
func (h *Handler) ListEmployees(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("employee", "list")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	employees, err := h.store.ListEmployees(ident.RestaurantID)
	if err != nil {
		log.Error("Failed to fetch employees", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch employees"})
	}

	return c.JSON(http.StatusOK, employees)
}

// CreateEmployee adds a staff member to the caller's restaurant.
func (h *Handler) CreateEmployee(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("employee", "create")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.FullName == "" || req.Position == "" || req.Salary == nil || req.HireDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing required employee data: full_name, position, salary, hire_date",
		})
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid hire_date, expected YYYY-MM-DD"})
	}

	employee := model.Employee{
		FullName:    req.FullName,
		Position:    req.Position,
		PhoneNumber: req.PhoneNumber,
		Salary:      *req.Salary,
		HireDate:    hireDate,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateEmployee(ident.RestaurantID, &employee); err != nil {
		log.Error("Failed to create employee", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create employee"})
	}

	log.Info("Employee created",
		zap.Uint("id", employee.ID),
		zap.String("full_name", employee.FullName),
		zap.Uint("restaurant_id", employee.RestaurantID))

	return c.JSON(http.StatusCreated, echo.Map{"message": "Employee created successfully", "id": employee.ID})
}

// UpdateEmployee applies the allow-listed fields of the payload to one
// employee of the caller's restaurant.
func (h *Handler) UpdateEmployee(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("employee", "update")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid employee ID"})
	}

	var update store.EmployeeUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if update.Empty() {
		return c.JSON(http.StatusOK, echo.Map{"message": "No valid fields provided for update"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.store.UpdateEmployee(ident.RestaurantID, uint(employeeID), &update); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
		case errors.Is(err, store.ErrInvalidDate):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid hire_date, expected YYYY-MM-DD"})
		default:
			log.Error("Failed to update employee", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update employee"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Employee updated successfully"})
}

// DeleteEmployee removes one employee from the caller's restaurant.
func (h *Handler) DeleteEmployee(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("employee", "delete")

	ident, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}

	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid employee ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.store.DeleteEmployee(ident.RestaurantID, uint(employeeID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Employee not found"})
		}
		log.Error("Failed to delete employee", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete employee"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Employee deleted successfully"})
}
