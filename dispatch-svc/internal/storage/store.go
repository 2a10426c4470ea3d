package storage

import (
	"context"
	"database/sql"
	"time"

	"dronemeds/dispatch-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const PopularProductsKey = "products:popular"

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

// NewStore accepts a nil db when no Postgres mirror is configured.
func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

// MarkProcessed reports whether eventID is seen for the first time.
func (s *Store) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.rdb.SetNX(ctx, eventKey(eventID), "1", 7*24*time.Hour).Result()
}

// UnmarkProcessed releases the marker so a redelivered event is handled again.
func (s *Store) UnmarkProcessed(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, eventKey(eventID)).Err()
}

func eventKey(eventID string) string {
	return "dispatch:event:" + eventID
}

func (s *Store) RecordDispatch(ctx context.Context, event domain.OrderEvent) error {
	now := time.Now()
	if s.db != nil {
		if _, err := s.db.ExecContext(ctx, `
			UPDATE orders
			SET status = 'dispatched', dispatched_at = $2
			WHERE order_id = $1 AND status = 'placed'
		`, event.OrderID, now); err != nil {
			return err
		}
	}

	key := "dispatch:" + event.OrderID
	if err := s.rdb.HSet(ctx, key, map[string]interface{}{
		"status":        "dispatched",
		"delivery_time": event.DeliveryTime,
		"lat":           event.Latitude,
		"lon":           event.Longitude,
		"total_amount":  event.TotalAmount,
		"dispatched_at": now.Unix(),
	}).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, 24*time.Hour).Err()
}

func (s *Store) UpdatePopularity(ctx context.Context, event domain.OrderEvent) error {
	pipe := s.rdb.TxPipeline()
	for _, name := range event.Products {
		pipe.ZIncrBy(ctx, PopularProductsKey, 1, name)
	}

	dailyKey := "dispatch:daily:" + time.Now().Format("2006-01-02")
	pipe.HIncrBy(ctx, dailyKey, event.DeliveryTime, 1)
	pipe.Expire(ctx, dailyKey, 7*24*time.Hour)

	_, err := pipe.Exec(ctx)
	return err
}
