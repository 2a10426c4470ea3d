package service

import (
	"context"
	"encoding/json"
	"time"

	"dronemeds/dispatch-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: readRetryDelay,
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	logrus.Info("Starting Dispatch Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logrus.Info("Dispatch Service consumer stopped")
				return
			}
			logrus.WithError(err).Error("Error reading message")
			select {
			case <-ctx.Done():
				logrus.Info("Dispatch Service consumer stopped")
				return
			case <-time.After(c.RetryDelay):
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logrus.WithError(err).Error("Error unmarshaling message")
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

// ProcessOrder claims the event id before dispatching and releases the claim
// when dispatch fails, so a redelivered event is processed again.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.OrderPlaced {
		return
	}
	entry := logrus.WithFields(logrus.Fields{
		"order_id": event.OrderID,
		"slot":     event.DeliveryTime,
	})

	if event.EventID != "" {
		fresh, err := c.Store.MarkProcessed(ctx, event.EventID)
		if err != nil {
			entry.WithError(err).Error("Error checking event id")
			return
		}
		if !fresh {
			entry.Info("Skipping duplicate order event")
			return
		}
	}

	if err := c.Store.RecordDispatch(ctx, event); err != nil {
		entry.WithError(err).Error("Error recording dispatch")
		c.release(ctx, entry, event.EventID)
		return
	}

	if err := c.Store.UpdatePopularity(ctx, event); err != nil {
		entry.WithError(err).Error("Error updating product popularity")
		c.release(ctx, entry, event.EventID)
		return
	}

	entry.Info("Drone dispatch scheduled")
}

func (c *Consumer) release(ctx context.Context, entry *logrus.Entry, eventID string) {
	if eventID == "" {
		return
	}
	if err := c.Store.UnmarkProcessed(ctx, eventID); err != nil {
		entry.WithError(err).Warn("Error releasing event id")
	}
}
