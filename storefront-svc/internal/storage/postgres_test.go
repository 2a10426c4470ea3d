package storage

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_InsertOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	order := sampleOrder("MD-4321")
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(order.OrderID, order.Name, order.Address, order.Location, order.DeliveryTime,
			order.Products, "120.50", order.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresRepository(db)
	assert.NoError(t, repo.InsertOrder(&order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertOrderError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO orders").WillReturnError(errors.New("connection lost"))

	order := sampleOrder("MD-4321")
	assert.Error(t, NewPostgresRepository(db).InsertOrder(&order))
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewPostgresRepository(db).EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}
