package openfoodfacts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupBarcodeParsesProduct(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "status": 1,
  "product": {
    "product_name": "Yogurt Cup",
    "brands": "Brand Co",
    "serving_quantity": 170,
    "serving_quantity_unit": "g",
    "nutriments": {
      "energy-kcal_serving": 120,
      "proteins_serving": 10,
      "carbohydrates_serving": 15,
      "fat_serving": 2,
      "sodium_serving": 0.05
    }
  }
}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	food, err := c.LookupBarcode(context.Background(), "12345678")
	if err != nil {
		t.Fatalf("lookup barcode: %v", err)
	}
	if food.Name != "Yogurt Cup" || food.Calories != 120 || food.ProteinG != 10 {
		t.Fatalf("unexpected parsed food: %+v", food)
	}
	if food.ServingSize != "170 g" {
		t.Fatalf("expected serving size 170 g, got %q", food.ServingSize)
	}
	if food.SodiumMg != 50 {
		t.Fatalf("expected sodium 50mg, got %v", food.SodiumMg)
	}
}

func TestLookupBarcodeMissIsNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": 0, "product": {}}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, err := c.LookupBarcode(context.Background(), "00000000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchReturnsNormalizedRecords(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "products": [
    {
      "product_name": "Oat Bar",
      "brands": "Oaty",
      "serving_size": "45 g",
      "nutriments": {"energy-kcal_100g": 380, "proteins_100g": "9.5"}
    },
    {"product_name": ""}
  ]
}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	foods, err := c.Search(context.Background(), "oat bar", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(foods) != 1 {
		t.Fatalf("expected 1 result, got %d", len(foods))
	}
	if foods[0].Name != "Oat Bar" || foods[0].Calories != 380 || foods[0].ProteinG != 9.5 {
		t.Fatalf("unexpected result: %+v", foods[0])
	}
}
