package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/thanwa-dev/priceboard/internal/repo"
)

// ==========================
// Price Feed Handler
// ==========================
// Public, read-only mirror of the latest price record. No auth, no
// mutation. An empty table serves the fixed defaults, never an error,
// so the feed is never empty.
type FeedHandler struct {
	Prices  *repo.PriceRepo
	RateTHB float64
}

type feedResponse struct {
	RAMPrice     float64 `json:"ram_price"`
	CPUPrice     float64 `json:"cpu_price"`
	ExchangeRate float64 `json:"exchange_rate"`
}

func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Prices.LatestOrDefault(r.Context())
	if err != nil {
		slog.Error("feed: load latest prices", "err", err)
		JSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feedResponse{
		RAMPrice:     rec.RAMPrice,
		CPUPrice:     rec.CPUPrice,
		ExchangeRate: h.RateTHB,
	})
}
