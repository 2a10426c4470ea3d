package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"dronemeds/dispatch-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func testEvent() domain.OrderEvent {
	return domain.OrderEvent{
		EventID:      "evt-1",
		Type:         domain.OrderPlaced,
		OrderID:      "MD-1234",
		Products:     []string{"Paracetamol", "Cough Syrup"},
		TotalAmount:  "120.00",
		DeliveryTime: "Morning",
		Latitude:     12.9716,
		Longitude:    77.5946,
	}
}

func TestMarkProcessed(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	ctx := context.Background()

	fresh, err := store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, fresh)

	assert.True(t, mr.Exists("dispatch:event:evt-1"))
	assert.Greater(t, mr.TTL("dispatch:event:evt-1"), 24*time.Hour)
}

func TestUnmarkProcessed(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	ctx := context.Background()

	_, err := store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	require.NoError(t, store.UnmarkProcessed(ctx, "evt-1"))
	assert.False(t, mr.Exists("dispatch:event:evt-1"))

	fresh, err := store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestRecordDispatch_WithPostgres(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mr, rdb := setupRedis(t)
	store := NewStore(mockDB, rdb)

	sqlMock.ExpectExec("UPDATE orders").
		WithArgs("MD-1234", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.RecordDispatch(context.Background(), testEvent()))
	require.NoError(t, sqlMock.ExpectationsWereMet())

	assert.Equal(t, "dispatched", mr.HGet("dispatch:MD-1234", "status"))
	assert.Equal(t, "Morning", mr.HGet("dispatch:MD-1234", "delivery_time"))
	assert.Equal(t, "120.00", mr.HGet("dispatch:MD-1234", "total_amount"))
	assert.Equal(t, 24*time.Hour, mr.TTL("dispatch:MD-1234"))
}

func TestRecordDispatch_PostgresError(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mr, rdb := setupRedis(t)
	store := NewStore(mockDB, rdb)

	sqlMock.ExpectExec("UPDATE orders").
		WithArgs("MD-1234", sqlmock.AnyArg()).
		WillReturnError(errors.New("connection lost"))

	assert.Error(t, store.RecordDispatch(context.Background(), testEvent()))
	assert.False(t, mr.Exists("dispatch:MD-1234"))
}

func TestRecordDispatch_RedisOnly(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)

	require.NoError(t, store.RecordDispatch(context.Background(), testEvent()))
	assert.Equal(t, "dispatched", mr.HGet("dispatch:MD-1234", "status"))
}

func TestUpdatePopularity(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	ctx := context.Background()

	require.NoError(t, store.UpdatePopularity(ctx, testEvent()))
	second := testEvent()
	second.Products = []string{"Paracetamol"}
	second.DeliveryTime = "Evening"
	require.NoError(t, store.UpdatePopularity(ctx, second))

	score, err := mr.ZScore(PopularProductsKey, "Paracetamol")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)

	score, err = mr.ZScore(PopularProductsKey, "Cough Syrup")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	dailyKey := "dispatch:daily:" + time.Now().Format("2006-01-02")
	assert.Equal(t, "1", mr.HGet(dailyKey, "Morning"))
	assert.Equal(t, "1", mr.HGet(dailyKey, "Evening"))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(dailyKey))
}

func TestUpdatePopularity_RedisUnavailable(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewStore(nil, rdb)
	mr.Close()

	assert.Error(t, store.UpdatePopularity(context.Background(), testEvent()))
}
