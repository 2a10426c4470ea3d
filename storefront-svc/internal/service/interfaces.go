package service

import (
	"context"
	"net/http"

	"dronemeds/storefront-svc/internal/domain"
	"dronemeds/storefront-svc/internal/storage"

	"github.com/shopspring/decimal"
)

type CatalogServiceInterface interface {
	List() []domain.Product
	Select(names []string) ([]domain.Product, decimal.Decimal)
	Recommend(names []string, limit int) []domain.Product
	Quote(names []string) domain.Quote
	Popular(ctx context.Context, limit int) ([]domain.ProductPopularity, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, req domain.OrderRequest) (*domain.OrderReceipt, error)
	List() ([]domain.Order, error)
	Get(orderID string) (*domain.OrderReceipt, error)
	PaymentQRCode(orderID string) ([]byte, error)
}

type LocationServiceInterface interface {
	DefaultLocation(ctx context.Context, clientIP string) string
}

type Recommender interface {
	Recommend(selected []string, topN int) []domain.Product
}

type PopularityStore interface {
	PopularProducts(ctx context.Context, limit int) ([]domain.ProductPopularity, error)
}

type OrderLog interface {
	Append(order domain.Order) error
	List() ([]domain.Order, error)
	Find(orderID string) (*domain.Order, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Payee() (upiID, name string)
	PaymentURL(amount decimal.Decimal) string
	Generate(amount decimal.Decimal) ([]byte, error)
}

type LocationCache interface {
	GetLocation(ctx context.Context, ip string) (string, bool, error)
	SetLocation(ctx context.Context, ip, location string) error
}

type IPLocator interface {
	Locate(ctx context.Context, ip string) (lat, lon float64, err error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	_ OrderLog        = (*storage.CSVOrderLog)(nil)
	_ OrderRepository = (*storage.PostgresRepository)(nil)
	_ OrderPublisher  = (*storage.KafkaPublisher)(nil)
	_ LocationCache   = (*storage.RedisCache)(nil)
	_ PopularityStore = (*storage.RedisCache)(nil)
)
