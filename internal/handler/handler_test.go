package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-service/internal/model"
	"restaurant-service/internal/store"
	"restaurant-service/pkg/jwtutil"

	"github.com/labstack/echo/v4"
)

// fakeStore implements store.Store with per-method function hooks so each
// test controls exactly the calls it cares about.
type fakeStore struct {
	registerFn          func(username, passwordHash, email string) (*model.User, error)
	getUserFn           func(username string) (*model.User, error)
	listMenusFn         func(restaurantID uint, category string) ([]model.Menu, error)
	getMenuFn           func(restaurantID, menuID uint) (*model.Menu, error)
	createMenuFn        func(restaurantID uint, menu *model.Menu) error
	updateMenuFn        func(restaurantID, menuID uint, update *store.MenuUpdate) error
	deleteMenuFn        func(restaurantID, menuID uint) error
	listOrdersFn        func(restaurantID uint) ([]model.Order, error)
	getOrderFn          func(restaurantID, orderID uint) (*model.Order, error)
	createOrderFn       func(restaurantID uint, order *model.Order) error
	updateOrderFn       func(restaurantID, orderID uint, update *store.OrderUpdate) error
	deleteOrderFn       func(restaurantID, orderID uint) error
	listOrderItemsFn    func(restaurantID, orderID uint) ([]model.OrderItem, error)
	listEmployeesFn     func(restaurantID uint) ([]model.Employee, error)
	createEmployeeFn    func(restaurantID uint, employee *model.Employee) error
	updateEmployeeFn    func(restaurantID, employeeID uint, update *store.EmployeeUpdate) error
	deleteEmployeeFn    func(restaurantID, employeeID uint) error
	listTablesFn        func(restaurantID uint) ([]model.Table, error)
	updateTableStatusFn func(restaurantID, tableID uint, status string) error
	getDashboardFn      func(restaurantID uint, month string) (*store.Dashboard, error)
}

func (f *fakeStore) Register(username, passwordHash, email string) (*model.User, error) {
	if f.registerFn == nil {
		return &model.User{ID: 1, Username: username, Role: "admin", RestaurantID: 1}, nil
	}
	return f.registerFn(username, passwordHash, email)
}

func (f *fakeStore) GetUserByUsername(username string) (*model.User, error) {
	if f.getUserFn == nil {
		return nil, store.ErrNotFound
	}
	return f.getUserFn(username)
}

func (f *fakeStore) ListMenus(restaurantID uint, category string) ([]model.Menu, error) {
	if f.listMenusFn == nil {
		return []model.Menu{}, nil
	}
	return f.listMenusFn(restaurantID, category)
}

func (f *fakeStore) GetMenu(restaurantID, menuID uint) (*model.Menu, error) {
	if f.getMenuFn == nil {
		return nil, store.ErrNotFound
	}
	return f.getMenuFn(restaurantID, menuID)
}

func (f *fakeStore) CreateMenu(restaurantID uint, menu *model.Menu) error {
	if f.createMenuFn == nil {
		return nil
	}
	return f.createMenuFn(restaurantID, menu)
}

func (f *fakeStore) UpdateMenu(restaurantID, menuID uint, update *store.MenuUpdate) error {
	if f.updateMenuFn == nil {
		return nil
	}
	return f.updateMenuFn(restaurantID, menuID, update)
}

func (f *fakeStore) DeleteMenu(restaurantID, menuID uint) error {
	if f.deleteMenuFn == nil {
		return nil
	}
	return f.deleteMenuFn(restaurantID, menuID)
}

func (f *fakeStore) ListOrders(restaurantID uint) ([]model.Order, error) {
	if f.listOrdersFn == nil {
		return []model.Order{}, nil
	}
	return f.listOrdersFn(restaurantID)
}

func (f *fakeStore) GetOrder(restaurantID, orderID uint) (*model.Order, error) {
	if f.getOrderFn == nil {
		return nil, store.ErrNotFound
	}
	return f.getOrderFn(restaurantID, orderID)
}

func (f *fakeStore) CreateOrder(restaurantID uint, order *model.Order) error {
	if f.createOrderFn == nil {
		return nil
	}
	return f.createOrderFn(restaurantID, order)
}

func (f *fakeStore) UpdateOrder(restaurantID, orderID uint, update *store.OrderUpdate) error {
	if f.updateOrderFn == nil {
		return nil
	}
	return f.updateOrderFn(restaurantID, orderID, update)
}

func (f *fakeStore) DeleteOrder(restaurantID, orderID uint) error {
	if f.deleteOrderFn == nil {
		return nil
	}
	return f.deleteOrderFn(restaurantID, orderID)
}

func (f *fakeStore) ListOrderItems(restaurantID, orderID uint) ([]model.OrderItem, error) {
	if f.listOrderItemsFn == nil {
		return []model.OrderItem{}, nil
	}
	return f.listOrderItemsFn(restaurantID, orderID)
}

func (f *fakeStore) ListEmployees(restaurantID uint) ([]model.Employee, error) {
	if f.listEmployeesFn == nil {
		return []model.Employee{}, nil
	}
	return f.listEmployeesFn(restaurantID)
}

func (f *fakeStore) CreateEmployee(restaurantID uint, employee *model.Employee) error {
	if f.createEmployeeFn == nil {
		return nil
	}
	return f.createEmployeeFn(restaurantID, employee)
}

func (f *fakeStore) UpdateEmployee(restaurantID, employeeID uint, update *store.EmployeeUpdate) error {
	if f.updateEmployeeFn == nil {
		return nil
	}
	return f.updateEmployeeFn(restaurantID, employeeID, update)
}

func (f *fakeStore) DeleteEmployee(restaurantID, employeeID uint) error {
	if f.deleteEmployeeFn == nil {
		return nil
	}
	return f.deleteEmployeeFn(restaurantID, employeeID)
}

func (f *fakeStore) ListTables(restaurantID uint) ([]model.Table, error) {
	if f.listTablesFn == nil {
		return []model.Table{}, nil
	}
	return f.listTablesFn(restaurantID)
}

func (f *fakeStore) UpdateTableStatus(restaurantID, tableID uint, status string) error {
	if f.updateTableStatusFn == nil {
		return nil
	}
	return f.updateTableStatusFn(restaurantID, tableID, status)
}

func (f *fakeStore) GetDashboard(restaurantID uint, month string) (*store.Dashboard, error) {
	if f.getDashboardFn == nil {
		return &store.Dashboard{TopItems: []store.TopItem{}, CategorySales: []store.CategorySale{}}, nil
	}
	return f.getDashboardFn(restaurantID, month)
}

// testJWT is the codec every handler test signs and verifies with.
func testJWT() *jwtutil.JWT {
	return jwtutil.New("test-signing-key", 24*time.Hour)
}

// newTestServer builds a full echo app with the real routes and guard over
// the given fake store.
func newTestServer(t *testing.T, st store.Store) (*echo.Echo, *jwtutil.JWT) {
	t.Helper()
	jwt := testJWT()
	e := echo.New()
	New(st, jwt).RegisterRoutes(e)
	return e, jwt
}

// bearerToken mints a valid token for the given identity.
func bearerToken(t *testing.T, jwt *jwtutil.JWT, userID uint, username string, restaurantID uint) string {
	t.Helper()
	token, err := jwt.Generate(userID, username, restaurantID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

// doJSON performs a request against the test server and returns the recorder.
func doJSON(e *echo.Echo, method, target, authHeader, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
