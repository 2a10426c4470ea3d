package storage

import (
	"database/sql"

	"dronemeds/storefront-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			order_id      TEXT NOT NULL,
			customer_name TEXT,
			address       TEXT,
			location      TEXT,
			delivery_time TEXT,
			products      TEXT,
			total_amount  NUMERIC(12, 2),
			status        TEXT NOT NULL DEFAULT 'placed',
			created_at    TIMESTAMPTZ NOT NULL,
			dispatched_at TIMESTAMPTZ
		)
	`)
	return err
}

func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	_, err := r.DB.Exec(`
		INSERT INTO orders (order_id, customer_name, address, location, delivery_time, products, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'placed', $8)
	`, order.OrderID, order.Name, order.Address, order.Location, order.DeliveryTime,
		order.Products, order.TotalAmount.StringFixed(2), order.Timestamp)
	return err
}
