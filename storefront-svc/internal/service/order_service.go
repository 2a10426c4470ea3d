package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dronemeds/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PaymentWindow is how long a placed order waits for payment before it is
// considered cancelled.
const PaymentWindow = 30 * time.Minute

type OrderService struct {
	catalog   CatalogServiceInterface
	log       OrderLog
	repo      OrderRepository
	publisher OrderPublisher
	payments  QRGenerator

	NewID func() string
	Now   func() time.Time
}

// NewOrderService wires the order flow. repo and publisher are optional
// mirrors; the order log is the source of truth.
func NewOrderService(catalog CatalogServiceInterface, log OrderLog, repo OrderRepository, publisher OrderPublisher, payments QRGenerator) *OrderService {
	return &OrderService{
		catalog:   catalog,
		log:       log,
		repo:      repo,
		publisher: publisher,
		payments:  payments,
		NewID:     NewOrderID,
		Now:       time.Now,
	}
}

// NewOrderID returns MD- followed by a random number in [1000, 9999].
func NewOrderID() string {
	return fmt.Sprintf("MD-%d", 1000+rand.Intn(9000))
}

func (s *OrderService) Place(ctx context.Context, req domain.OrderRequest) (*domain.OrderReceipt, error) {
	selected, total := s.catalog.Select(req.Products)
	if len(selected) == 0 {
		return nil, ErrNoProducts
	}

	lat, lon, err := ParseCoordinates(req.Location)
	if err != nil {
		return nil, err
	}

	slot, err := normalizeSlot(req.DeliveryTime)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(selected))
	for i, p := range selected {
		names[i] = p.Name
	}

	order := domain.Order{
		OrderID:      s.NewID(),
		Name:         req.Name,
		Address:      req.Address,
		Location:     req.Location,
		Latitude:     lat,
		Longitude:    lon,
		DeliveryTime: slot,
		Products:     strings.Join(names, ", "),
		TotalAmount:  total,
		Timestamp:    s.Now().Truncate(time.Second),
	}

	if err := s.log.Append(order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	entry := logrus.WithFields(logrus.Fields{
		"order_id": order.OrderID,
		"slot":     order.DeliveryTime,
		"total":    order.TotalAmount.StringFixed(2),
	})
	entry.Info("order placed")

	if s.repo != nil {
		if err := s.repo.InsertOrder(&order); err != nil {
			entry.WithError(err).Warn("failed to mirror order to postgres")
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			EventID:      uuid.NewString(),
			Type:         domain.OrderPlaced,
			OrderID:      order.OrderID,
			Products:     names,
			TotalAmount:  order.TotalAmount.StringFixed(2),
			DeliveryTime: order.DeliveryTime,
			Latitude:     lat,
			Longitude:    lon,
			Timestamp:    order.Timestamp,
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			entry.WithError(err).Warn("failed to publish order event")
		}
	}

	return &domain.OrderReceipt{Order: order, Payment: s.payment(order)}, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.log.List()
}

func (s *OrderService) Get(orderID string) (*domain.OrderReceipt, error) {
	order, err := s.log.Find(orderID)
	if err != nil {
		return nil, err
	}
	return &domain.OrderReceipt{Order: *order, Payment: s.payment(*order)}, nil
}

func (s *OrderService) PaymentQRCode(orderID string) ([]byte, error) {
	order, err := s.log.Find(orderID)
	if err != nil {
		return nil, err
	}
	return s.payments.Generate(order.TotalAmount)
}

func (s *OrderService) payment(order domain.Order) domain.Payment {
	upiID, payee := s.payments.Payee()
	return domain.Payment{
		UPIID:     upiID,
		PayeeName: payee,
		Amount:    order.TotalAmount,
		URL:       s.payments.PaymentURL(order.TotalAmount),
		QRCode:    QRLink(order.OrderID),
		PayBefore: order.Timestamp.Add(PaymentWindow),
	}
}

func QRLink(orderID string) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
