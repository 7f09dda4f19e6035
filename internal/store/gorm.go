package store

import (
	"errors"
	"fmt"
	"time"

	"restaurant-service/internal/model"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm connection pool. The pool is
// shared between requests; all per-request state stays in the arguments.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm connection in a Store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Register creates the restaurant and its first admin account in a single
// transaction so a failed account insert never leaves an orphan restaurant.
func (s *GormStore) Register(username, passwordHash, email string) (*model.User, error) {
	var user model.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		if err := tx.Model(&model.Restaurant{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		restaurant := model.Restaurant{
			Name:  fmt.Sprintf("%s's restaurant", username),
			Email: email,
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}

		user = model.User{
			Username:     username,
			Password:     passwordHash,
			Role:         "admin",
			RestaurantID: restaurant.ID,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListMenus(restaurantID uint, category string) ([]model.Menu, error) {
	query := s.db.Preload("Options").Where("restaurant_id = ?", restaurantID)
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	var menus []model.Menu
	if err := query.Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *GormStore) GetMenu(restaurantID, menuID uint) (*model.Menu, error) {
	var menu model.Menu
	err := s.db.Preload("Options").
		Where("id = ? AND restaurant_id = ?", menuID, restaurantID).
		First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (s *GormStore) CreateMenu(restaurantID uint, menu *model.Menu) error {
	// Owner is always taken from the authenticated context, never the payload.
	menu.RestaurantID = restaurantID
	return s.db.Create(menu).Error
}

func (s *GormStore) UpdateMenu(restaurantID, menuID uint, update *MenuUpdate) error {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.BasePrice != nil {
		values["base_price"] = *update.BasePrice
	}
	if update.Category != nil {
		values["category"] = *update.Category
	}
	if update.ImageURL != nil {
		values["image_url"] = *update.ImageURL
	}
	if update.IsAvailable != nil {
		values["is_available"] = *update.IsAvailable
	}

	result := s.db.Model(&model.Menu{}).
		Where("id = ? AND restaurant_id = ?", menuID, restaurantID).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteMenu(restaurantID, menuID uint) error {
	result := s.db.Where("id = ? AND restaurant_id = ?", menuID, restaurantID).
		Delete(&model.Menu{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// orderItemRow is the join shape used to decorate items with their menu's
// display fields.
type orderItemRow struct {
	model.OrderItem
	Name     string
	ImageURL string
}

func (s *GormStore) loadOrderItems(orderIDs []uint) (map[uint][]model.OrderItem, error) {
	var rows []orderItemRow
	err := s.db.Table("order_items").
		Select("order_items.*, menus.name, menus.image_url").
		Joins("JOIN menus ON menus.id = order_items.menu_id").
		Where("order_items.order_id IN ?", orderIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make(map[uint][]model.OrderItem, len(orderIDs))
	for _, row := range rows {
		item := row.OrderItem
		item.MenuName = row.Name
		item.MenuImage = row.ImageURL
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, nil
}

func (s *GormStore) ListOrders(restaurantID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.Where("restaurant_id = ?", restaurantID).
		Order("order_time DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uint, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}
	items, err := s.loadOrderItems(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []model.OrderItem{}
		}
	}
	return orders, nil
}

func (s *GormStore) GetOrder(restaurantID, orderID uint) (*model.Order, error) {
	var order model.Order
	err := s.db.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := s.loadOrderItems([]uint{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	if order.Items == nil {
		order.Items = []model.OrderItem{}
	}
	return &order, nil
}

// CreateOrder persists the order and every line item in one transaction:
// either all rows land or none do.
func (s *GormStore) CreateOrder(restaurantID uint, order *model.Order) error {
	order.RestaurantID = restaurantID
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (s *GormStore) UpdateOrder(restaurantID, orderID uint, update *OrderUpdate) error {
	values := map[string]interface{}{}
	if update.TableNumber != nil {
		values["table_number"] = *update.TableNumber
	}
	if update.TotalAmount != nil {
		values["total_amount"] = *update.TotalAmount
	}
	if update.Status != nil {
		values["status"] = *update.Status
	}
	if update.PaymentStatus != nil {
		values["payment_status"] = *update.PaymentStatus
	}
	if update.QRCodeURL != nil {
		values["qr_code_url"] = *update.QRCodeURL
	}

	result := s.db.Model(&model.Order{}).
		Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteOrder(restaurantID, orderID uint) error {
	// Items go with the order via the cascading foreign key; doing it in a
	// transaction keeps databases without the constraint consistent too.
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
			Delete(&model.Order{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error
	})
}

func (s *GormStore) ListOrderItems(restaurantID, orderID uint) ([]model.OrderItem, error) {
	// The parent order is the scoping anchor for its items.
	var count int64
	err := s.db.Model(&model.Order{}).
		Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	items, err := s.loadOrderItems([]uint{orderID})
	if err != nil {
		return nil, err
	}
	if items[orderID] == nil {
		return []model.OrderItem{}, nil
	}
	return items[orderID], nil
}

func (s *GormStore) ListEmployees(restaurantID uint) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.db.Where("restaurant_id = ?", restaurantID).Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *GormStore) CreateEmployee(restaurantID uint, employee *model.Employee) error {
	employee.RestaurantID = restaurantID
	return s.db.Create(employee).Error
}

func (s *GormStore) UpdateEmployee(restaurantID, employeeID uint, update *EmployeeUpdate) error {
	values := map[string]interface{}{}
	if update.FullName != nil {
		values["full_name"] = *update.FullName
	}
	if update.Position != nil {
		values["position"] = *update.Position
	}
	if update.PhoneNumber != nil {
		values["phone_number"] = *update.PhoneNumber
	}
	if update.Salary != nil {
		values["salary"] = *update.Salary
	}
	if update.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *update.HireDate)
		if err != nil {
			return ErrInvalidDate
		}
		values["hire_date"] = hireDate
	}

	result := s.db.Model(&model.Employee{}).
		Where("id = ? AND restaurant_id = ?", employeeID, restaurantID).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteEmployee(restaurantID, employeeID uint) error {
	result := s.db.Where("id = ? AND restaurant_id = ?", employeeID, restaurantID).
		Delete(&model.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListTables(restaurantID uint) ([]model.Table, error) {
	var tables []model.Table
	err := s.db.Where("restaurant_id = ?", restaurantID).
		Order("table_number").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *GormStore) UpdateTableStatus(restaurantID, tableID uint, status string) error {
	if status != model.TableStatusFree && status != model.TableStatusOccupied {
		return ErrInvalidStatus
	}

	result := s.db.Model(&model.Table{}).
		Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetDashboard(restaurantID uint, month string) (*Dashboard, error) {
	monthFilter := ""
	args := []interface{}{restaurantID}
	if month != "" {
		monthFilter = " AND to_char(o.order_time, 'YYYY-MM') = ?"
		args = append(args, month)
	}

	dashboard := &Dashboard{
		TopItems:      []TopItem{},
		CategorySales: []CategorySale{},
	}

	err := s.db.Raw(`
		SELECT COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		WHERE o.restaurant_id = ? AND o.payment_status = 'paid'`+monthFilter,
		args...).Scan(&dashboard.TotalSales).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Raw(`
		SELECT m.name,
		       SUM(oi.quantity) AS total_quantity,
		       SUM(oi.quantity * oi.price_at_order) AS total_amount
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN menus m ON oi.menu_id = m.id
		WHERE o.restaurant_id = ? AND o.payment_status = 'paid'`+monthFilter+`
		GROUP BY m.name
		ORDER BY total_quantity DESC
		LIMIT 5`,
		args...).Scan(&dashboard.TopItems).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Raw(`
		SELECT m.category,
		       SUM(oi.quantity * oi.price_at_order) AS total_amount
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN menus m ON oi.menu_id = m.id
		WHERE o.restaurant_id = ? AND o.payment_status = 'paid'`+monthFilter+`
		GROUP BY m.category
		ORDER BY total_amount DESC`,
		args...).Scan(&dashboard.CategorySales).Error
	if err != nil {
		return nil, err
	}

	return dashboard, nil
}
