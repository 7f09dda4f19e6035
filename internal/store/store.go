package store

import (
	"restaurant-service/internal/model"
)

// MenuUpdate carries the fields a client may change on a menu. Only non-nil
// fields are applied; anything else in the request payload is ignored rather
// than written through to the database.
type MenuUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

// Empty reports whether no updatable field was provided.
func (u *MenuUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.BasePrice == nil &&
		u.Category == nil && u.ImageURL == nil && u.IsAvailable == nil
}

// OrderUpdate carries the fields a client may change on an order. The owning
// restaurant is never among them.
type OrderUpdate struct {
	TableNumber   *int     `json:"table_number"`
	TotalAmount   *float64 `json:"total_amount"`
	Status        *string  `json:"status"`
	PaymentStatus *string  `json:"payment_status"`
	QRCodeURL     *string  `json:"qr_code_url"`
}

// Empty reports whether no updatable field was provided.
func (u *OrderUpdate) Empty() bool {
	return u.TableNumber == nil && u.TotalAmount == nil && u.Status == nil &&
		u.PaymentStatus == nil && u.QRCodeURL == nil
}

// EmployeeUpdate carries the fields a client may change on an employee.
// HireDate uses YYYY-MM-DD.
type EmployeeUpdate struct {
	FullName    *string  `json:"full_name"`
	Position    *string  `json:"position"`
	PhoneNumber *string  `json:"phone_number"`
	Salary      *float64 `json:"salary"`
	HireDate    *string  `json:"hire_date"`
}

// Empty reports whether no updatable field was provided.
func (u *EmployeeUpdate) Empty() bool {
	return u.FullName == nil && u.Position == nil && u.PhoneNumber == nil &&
		u.Salary == nil && u.HireDate == nil
}

// TopItem is a best-selling menu entry on the dashboard.
type TopItem struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
}

// CategorySale is the revenue of one menu category on the dashboard.
type CategorySale struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
}

// Dashboard aggregates paid-order sales for one restaurant.
type Dashboard struct {
	TotalSales    float64        `json:"total_sales"`
	TopItems      []TopItem      `json:"top_items"`
	CategorySales []CategorySale `json:"category_sales"`
}

// Store is the persistence boundary. Every method operating on tenant-owned
// data takes the caller's restaurant ID and applies it as an equality filter;
// there are no primary-key-only lookups.
type Store interface {
	// Register atomically creates a restaurant and its first admin account.
	// The password must already be hashed.
	Register(username, passwordHash, email string) (*model.User, error)
	// GetUserByUsername looks up an account for credential verification.
	GetUserByUsername(username string) (*model.User, error)

	ListMenus(restaurantID uint, category string) ([]model.Menu, error)
	GetMenu(restaurantID, menuID uint) (*model.Menu, error)
	CreateMenu(restaurantID uint, menu *model.Menu) error
	UpdateMenu(restaurantID, menuID uint, update *MenuUpdate) error
	DeleteMenu(restaurantID, menuID uint) error

	ListOrders(restaurantID uint) ([]model.Order, error)
	GetOrder(restaurantID, orderID uint) (*model.Order, error)
	// CreateOrder writes the order and all its items in one transaction.
	CreateOrder(restaurantID uint, order *model.Order) error
	UpdateOrder(restaurantID, orderID uint, update *OrderUpdate) error
	DeleteOrder(restaurantID, orderID uint) error
	ListOrderItems(restaurantID, orderID uint) ([]model.OrderItem, error)

	ListEmployees(restaurantID uint) ([]model.Employee, error)
	CreateEmployee(restaurantID uint, employee *model.Employee) error
	UpdateEmployee(restaurantID, employeeID uint, update *EmployeeUpdate) error
	DeleteEmployee(restaurantID, employeeID uint) error

	ListTables(restaurantID uint) ([]model.Table, error)
	UpdateTableStatus(restaurantID, tableID uint, status string) error

	// GetDashboard aggregates paid sales, optionally limited to one month
	// given as YYYY-MM.
	GetDashboard(restaurantID uint, month string) (*Dashboard, error)
}
