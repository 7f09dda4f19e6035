package handler

import (
	"net/http"
	"testing"

	"restaurant-service/internal/model"
	"restaurant-service/internal/store"
)

func TestCreateMenuOwnerFromToken(t *testing.T) {
	var gotRestaurantID uint
	st := &fakeStore{
		createMenuFn: func(restaurantID uint, menu *model.Menu) error {
			gotRestaurantID = restaurantID
			menu.ID = 5
			return nil
		},
	}
	e, jwt := newTestServer(t, st)

	// The payload's restaurant_id is not part of the request schema and must
	// have no effect on ownership.
	rec := doJSON(e, http.MethodPost, "/api/menus", bearerToken(t, jwt, 7, "alice", 42),
		`{"name":"Pad Thai","base_price":89.0,"category":"Noodles","restaurant_id":9999}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotRestaurantID != 42 {
		t.Errorf("owner must come from the token: expected 42, got %d", gotRestaurantID)
	}
}

func TestCreateMenuMissingFields(t *testing.T) {
	st := &fakeStore{
		createMenuFn: func(restaurantID uint, menu *model.Menu) error {
			t.Error("store must not be called on validation failure")
			return nil
		},
	}
	e, jwt := newTestServer(t, st)
	auth := bearerToken(t, jwt, 7, "alice", 42)

	for _, body := range []string{
		`{"base_price":89.0,"category":"Noodles"}`,
		`{"name":"Pad Thai","category":"Noodles"}`,
		`{"name":"Pad Thai","base_price":89.0}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/menus", auth, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestListMenusScopedAndFiltered(t *testing.T) {
	var gotRestaurantID uint
	var gotCategory string
	st := &fakeStore{
		listMenusFn: func(restaurantID uint, category string) ([]model.Menu, error) {
			gotRestaurantID = restaurantID
			gotCategory = category
			return []model.Menu{{ID: 1, RestaurantID: restaurantID, Name: "Pad Thai"}}, nil
		},
	}
	e, jwt := newTestServer(t, st)

	rec := doJSON(e, http.MethodGet, "/api/menus?category=Noodles", bearerToken(t, jwt, 7, "alice", 42), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotRestaurantID != 42 {
		t.Errorf("expected restaurant 42, got %d", gotRestaurantID)
	}
	if gotCategory != "Noodles" {
		t.Errorf("expected category filter, got %q", gotCategory)
	}
}

func TestGetMenuCrossTenantIsNotFound(t *testing.T) {
	st := &fakeStore{
		getMenuFn: func(restaurantID, menuID uint) (*model.Menu, error) {
			// Menu 5 exists but belongs to restaurant 1; caller is 42.
			if restaurantID == 1 && menuID == 5 {
				return &model.Menu{ID: 5, RestaurantID: 1}, nil
			}
			return nil, store.ErrNotFound
		},
	}
	e, jwt := newTestServer(t, st)

	rec := doJSON(e, http.MethodGet, "/api/menus/5", bearerToken(t, jwt, 7, "alice", 42), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-tenant access must look like 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateMenuAllowList(t *testing.T) {
	var gotUpdate *store.MenuUpdate
	st := &fakeStore{
		updateMenuFn: func(restaurantID, menuID uint, update *store.MenuUpdate) error {
			gotUpdate = update
			return nil
		},
	}
	e, jwt := newTestServer(t, st)

	// Unknown keys are dropped by the typed update struct.
	rec := doJSON(e, http.MethodPatch, "/api/menus/5", bearerToken(t, jwt, 7, "alice", 42),
		`{"name":"New Name","restaurant_id":9999,"id":1234}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUpdate == nil || gotUpdate.Name == nil || *gotUpdate.Name != "New Name" {
		t.Fatalf("name update not applied: %+v", gotUpdate)
	}
}

func TestUpdateMenuNoFields(t *testing.T) {
	st := &fakeStore{
		updateMenuFn: func(restaurantID, menuID uint, update *store.MenuUpdate) error {
			t.Error("store must not be called with an empty update")
			return nil
		},
	}
	e, jwt := newTestServer(t, st)

	rec := doJSON(e, http.MethodPatch, "/api/menus/5", bearerToken(t, jwt, 7, "alice", 42), `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDeleteMenuNotFound(t *testing.T) {
	st := &fakeStore{
		deleteMenuFn: func(restaurantID, menuID uint) error {
			return store.ErrNotFound
		},
	}
	e, jwt := newTestServer(t, st)

	rec := doJSON(e, http.MethodDelete, "/api/menus/5", bearerToken(t, jwt, 7, "alice", 42), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMenuRoutesRequireToken(t *testing.T) {
	e, _ := newTestServer(t, &fakeStore{})

	for _, route := range []struct{ method, target string }{
		{http.MethodGet, "/api/menus"},
		{http.MethodPost, "/api/menus"},
		{http.MethodGet, "/api/menus/1"},
		{http.MethodPut, "/api/menus/1"},
		{http.MethodDelete, "/api/menus/1"},
	} {
		rec := doJSON(e, route.method, route.target, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 without token, got %d", route.method, route.target, rec.Code)
		}
	}
}
