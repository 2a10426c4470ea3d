package service

import (
	"context"

	"dronemeds/dispatch-svc/internal/domain"
	"dronemeds/dispatch-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	UnmarkProcessed(ctx context.Context, eventID string) error
	RecordDispatch(ctx context.Context, event domain.OrderEvent) error
	UpdatePopularity(ctx context.Context, event domain.OrderEvent) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, event domain.OrderEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
