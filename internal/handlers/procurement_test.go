package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/grantdesk/internal/models"
)

func createItem(t *testing.T, r *gin.Engine, bearer, name string, count int, category string) models.ProcurementItem {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/p", bearer, map[string]interface{}{
		"item_name":     name,
		"item_count":    count,
		"item_category": category,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create item %q: expected 201, got %d: %s", name, w.Code, w.Body.String())
	}
	var item models.ProcurementItem
	decodeBody(t, w, &item)
	return item
}

func TestListItemsFilters(t *testing.T) {
	r, _ := newTestServer(t)
	bearer := bearerFor(t, models.User{UserID: "admin"})

	createItem(t, r, bearer, "Basketball", 20, "Sports Equipment")
	createItem(t, r, bearer, "Chess Set", 5, "Board Games")
	createItem(t, r, bearer, "Tennis Racket", 8, "Sports Equipment")

	// No filters: everything comes back.
	w := doJSON(t, r, http.MethodGet, "/api/p", bearer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []models.ProcurementItem
	decodeBody(t, w, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 items with no filters, got %d", len(items))
	}

	// Case-insensitive substring match on category.
	w = doJSON(t, r, http.MethodGet, "/api/p?item_category=sports", bearer, nil)
	decodeBody(t, w, &items)
	if len(items) != 2 {
		t.Fatalf("expected 2 sports items, got %d: %+v", len(items), items)
	}
	for _, item := range items {
		if item.ItemCategory != "Sports Equipment" {
			t.Fatalf("filter matched unexpected item: %+v", item)
		}
	}

	// Both filters combine.
	w = doJSON(t, r, http.MethodGet, "/api/p?item_name=racket&item_category=SPORTS", bearer, nil)
	decodeBody(t, w, &items)
	if len(items) != 1 || items[0].ItemName != "Tennis Racket" {
		t.Fatalf("expected only the tennis racket, got %+v", items)
	}

	// A filter that matches nothing yields an empty array, not null.
	w = doJSON(t, r, http.MethodGet, "/api/p?item_name=zzz", bearer, nil)
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestUpdateItemFullReplace(t *testing.T) {
	r, _ := newTestServer(t)
	bearer := bearerFor(t, models.User{UserID: "admin"})

	item := createItem(t, r, bearer, "Basketball", 20, "Sports Equipment")

	w := doJSON(t, r, http.MethodPut, "/api/p", bearer, map[string]interface{}{
		"item_id":       item.ItemID,
		"item_name":     "Basketball Pro",
		"item_count":    15,
		"item_category": "Sports Gear",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.ProcurementItem
	decodeBody(t, w, &updated)
	if updated.ItemName != "Basketball Pro" || updated.ItemCount != 15 || updated.ItemCategory != "Sports Gear" {
		t.Fatalf("full replace not applied: %+v", updated)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	bearer := bearerFor(t, models.User{UserID: "admin"})

	w := doJSON(t, r, http.MethodPut, "/api/p", bearer, map[string]interface{}{
		"item_id":       999,
		"item_name":     "Ghost",
		"item_count":    1,
		"item_category": "None",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteItem(t *testing.T) {
	r, gdb := newTestServer(t)
	bearer := bearerFor(t, models.User{UserID: "admin"})

	item := createItem(t, r, bearer, "Basketball", 20, "Sports Equipment")

	w := doJSON(t, r, http.MethodDelete, "/api/p", bearer, map[string]interface{}{"item_id": item.ItemID})
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.Message == "" {
		t.Fatal("expected a confirmation message")
	}

	var count int64
	if err := gdb.Model(&models.ProcurementItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected item gone, %d left", count)
	}
}

func TestItemRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/api/p", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
