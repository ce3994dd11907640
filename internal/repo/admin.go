package repo

import (
	"context"
	"database/sql"

	"github.com/thanwa-dev/priceboard/internal/models"
)

// ==========================
// AdminRepo
// ==========================
// The admins table is read-only from the web surface; rows are provisioned
// through the CLI. There is no signup flow.
type AdminRepo struct {
	DB *sql.DB
}

func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{DB: db}
}

// ==========================
// Get By Username
// ==========================
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, username, password_hash
		FROM admins
		WHERE username = $1
	`

	admin := &models.Admin{}

	err := r.DB.QueryRowContext(ctx, query, username).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash)

	if err != nil {
		return nil, err
	}

	return admin, nil
}

// ==========================
// Create Admin
// ==========================
func (r *AdminRepo) Create(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username
	`

	admin := &models.Admin{PasswordHash: passwordHash}

	err := r.DB.QueryRowContext(ctx, query, username, passwordHash).
		Scan(&admin.ID, &admin.Username)

	if err != nil {
		return nil, err
	}

	return admin, nil
}

// ==========================
// List Admins
// ==========================
func (r *AdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, username FROM admins ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Username); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}

	return admins, rows.Err()
}
