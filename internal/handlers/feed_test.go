package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/thanwa-dev/priceboard/internal/repo"
)

func newTestFeedHandler(t *testing.T) (*FeedHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &FeedHandler{Prices: repo.NewPriceRepo(db), RateTHB: 35.5}, mock
}

func getFeed(h *FeedHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/prices", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, req)
	return rr
}

// An empty price table serves the fixed defaults; the feed is never empty.
func TestFeed_EmptyTableServesDefaults(t *testing.T) {
	h, mock := newTestFeedHandler(t)

	mock.ExpectQuery(`SELECT id, ram_price, cpu_price, currency, updated_at`).
		WillReturnError(sql.ErrNoRows)

	rr := getFeed(h)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var out struct {
		RAMPrice     float64 `json:"ram_price"`
		CPUPrice     float64 `json:"cpu_price"`
		ExchangeRate float64 `json:"exchange_rate"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.RAMPrice != 5.00 || out.CPUPrice != 10.00 || out.ExchangeRate != 35.5 {
		t.Errorf("unexpected defaults: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestFeed_ServesLatestRecord(t *testing.T) {
	h, mock := newTestFeedHandler(t)

	mock.ExpectQuery(`SELECT id, ram_price, cpu_price, currency, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ram_price", "cpu_price", "currency", "updated_at"}).
			AddRow(9, 7.25, 12.5, "USD", time.Now()))

	rr := getFeed(h)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	var out map[string]float64
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["ram_price"] != 7.25 || out["cpu_price"] != 12.5 || out["exchange_rate"] != 35.5 {
		t.Errorf("unexpected body: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestFeed_StoreFailure(t *testing.T) {
	h, mock := newTestFeedHandler(t)

	mock.ExpectQuery(`SELECT id, ram_price, cpu_price, currency, updated_at`).
		WillReturnError(errors.New("connection refused"))

	rr := getFeed(h)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rr.Code)
	}

	var out map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["error"] != "internal server error" {
		t.Errorf("internal detail must not leak, got: %q", out["error"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
