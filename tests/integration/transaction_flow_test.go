package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTransactionFlow_CreateAndDerivePeriod(t *testing.T) {
	app := setupApp(t)

	// Step 1: Record a weekly income entry dated inside the first week of March.
	rec := app.request("POST", "/api/v1/transactions",
		`{"date":"2024-03-01","category":"Mingguan","kind":"Pemasukan","description":"Penjualan lele 50kg","amount":500000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	if tx["period"] != "Maret 2024 - Minggu 1" {
		t.Errorf("expected period 'Maret 2024 - Minggu 1', got %v", tx["period"])
	}
	txID := tx["id"].(float64)

	// Step 2: Fetch it back by id.
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", txID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	fetched := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if fetched["description"] != "Penjualan lele 50kg" {
		t.Errorf("description = %v", fetched["description"])
	}
	if fetched["amount"] != "500000" {
		t.Errorf("amount = %v", fetched["amount"])
	}

	// Step 3: Move the entry to the monthly category; the period must follow.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/transactions/%.0f", txID),
		`{"date":"2024-03-01","category":"Bulanan","kind":"Pemasukan","description":"Penjualan lele 50kg","amount":500000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if updated["period"] != "Maret 2024" {
		t.Errorf("expected period 'Maret 2024', got %v", updated["period"])
	}
	if updated["created_at"] != fetched["created_at"] {
		t.Errorf("created_at changed on update: %v != %v", updated["created_at"], fetched["created_at"])
	}

	// Step 4: Delete and confirm it is gone.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/transactions/%.0f", txID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/transactions/%.0f", txID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "TRANSACTION_NOT_FOUND" {
		t.Errorf("code = %q", code)
	}
}

func TestTransactionFlow_ValidationCodes(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "zero amount",
			body:       `{"date":"2024-03-01","category":"Harian","kind":"Pemasukan","amount":0}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_AMOUNT",
		},
		{
			name:       "negative amount",
			body:       `{"date":"2024-03-01","category":"Harian","kind":"Pengeluaran","amount":-5000}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_AMOUNT",
		},
		{
			name:       "unknown kind",
			body:       `{"date":"2024-03-01","category":"Harian","kind":"Transfer","amount":1000}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_KIND",
		},
		{
			name:       "unknown category",
			body:       `{"date":"2024-03-01","category":"Musiman","kind":"Pemasukan","amount":1000}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_CATEGORY",
		},
		{
			name:       "malformed date",
			body:       `{"date":"31-03-2024","category":"Harian","kind":"Pemasukan","amount":1000}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/transactions", tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if code := errorCode(t, rec); code != tc.wantCode {
				t.Errorf("code = %q, want %q", code, tc.wantCode)
			}
		})
	}

	// Rejected entries never reach the store.
	rec := app.request("GET", "/api/v1/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}
	if total := parseJSON(t, rec)["total_items"].(float64); total != 0 {
		t.Errorf("expected empty store, got %.0f entries", total)
	}
}

func TestTransactionFlow_ListFilterAndPaginate(t *testing.T) {
	app := setupApp(t)

	app.createEntry(t, "2024-03-01", "Mingguan", "Pemasukan", "Penjualan lele", 500000)
	app.createEntry(t, "2024-03-02", "Mingguan", "Pengeluaran", "Beli pakan", 200000)
	app.createEntry(t, "2024-03-03", "Harian", "Pengeluaran", "Bensin", 25000)
	app.createEntry(t, "2024-04-10", "Bulanan", "Pemasukan", "Panen bulanan", 1500000)

	// Newest first.
	rec := app.request("GET", "/api/v1/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["description"] != "Panen bulanan" {
		t.Errorf("expected newest entry first, got %v", first["description"])
	}

	// Category filter.
	rec = app.request("GET", "/api/v1/transactions?category=Mingguan", "")
	result = parseJSON(t, rec)
	if result["total_items"].(float64) != 2 {
		t.Errorf("category filter: total = %v", result["total_items"])
	}

	// Case-insensitive search over description.
	rec = app.request("GET", "/api/v1/transactions?q=PAKAN", "")
	result = parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("search filter: total = %v", result["total_items"])
	}

	// Search also matches the derived period label.
	rec = app.request("GET", "/api/v1/transactions?q=april", "")
	result = parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("period search: total = %v", result["total_items"])
	}

	// Pagination.
	rec = app.request("GET", "/api/v1/transactions?page=2&page_size=3", "")
	result = parseJSON(t, rec)
	data = result["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("page 2 of size 3: got %d entries", len(data))
	}
	if result["total_pages"].(float64) != 2 {
		t.Errorf("total_pages = %v", result["total_pages"])
	}

	// Unknown category filter is rejected at binding.
	rec = app.request("GET", "/api/v1/transactions?category=Musiman", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", rec.Code)
	}
}
