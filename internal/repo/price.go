package repo

import (
	"context"
	"database/sql"

	"github.com/thanwa-dev/priceboard/internal/models"
)

// ==========================
// PriceRepo
// ==========================
// The prices table is append-only: Insert adds a row, nothing ever updates
// or deletes one, and the row with the highest id is the current price.
type PriceRepo struct {
	DB *sql.DB
}

func NewPriceRepo(db *sql.DB) *PriceRepo {
	return &PriceRepo{DB: db}
}

// ==========================
// Insert Price Record
// ==========================
// Prices are persisted in the reference currency only; callers convert
// display-currency input back to USD before calling Insert.
func (r *PriceRepo) Insert(ctx context.Context, ramPrice, cpuPrice float64) (*models.PriceRecord, error) {
	query := `
		INSERT INTO prices (ram_price, cpu_price, currency)
		VALUES ($1, $2, $3)
		RETURNING id, ram_price, cpu_price, currency, updated_at
	`

	rec := &models.PriceRecord{}

	err := r.DB.QueryRowContext(ctx, query, ramPrice, cpuPrice, models.ReferenceCurrency).
		Scan(&rec.ID, &rec.RAMPrice, &rec.CPUPrice, &rec.Currency, &rec.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ==========================
// Latest Price Record
// ==========================
func (r *PriceRepo) Latest(ctx context.Context) (*models.PriceRecord, error) {
	query := `
		SELECT id, ram_price, cpu_price, currency, updated_at
		FROM prices
		ORDER BY id DESC
		LIMIT 1
	`

	rec := &models.PriceRecord{}

	err := r.DB.QueryRowContext(ctx, query).
		Scan(&rec.ID, &rec.RAMPrice, &rec.CPUPrice, &rec.Currency, &rec.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ==========================
// Latest Or Default
// ==========================
// An empty table is a normal state, not an error: callers that render or
// serve prices get the fixed defaults until the first record lands.
func (r *PriceRepo) LatestOrDefault(ctx context.Context) (*models.PriceRecord, error) {
	rec, err := r.Latest(ctx)
	if err == sql.ErrNoRows {
		return &models.PriceRecord{
			RAMPrice: models.DefaultRAMPrice,
			CPUPrice: models.DefaultCPUPrice,
			Currency: models.ReferenceCurrency,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ==========================
// History
// ==========================
func (r *PriceRepo) History(ctx context.Context, limit int) ([]models.PriceRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, ram_price, cpu_price, currency, updated_at
		FROM prices
		ORDER BY id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PriceRecord
	for rows.Next() {
		var rec models.PriceRecord
		if err := rows.Scan(&rec.ID, &rec.RAMPrice, &rec.CPUPrice, &rec.Currency, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
