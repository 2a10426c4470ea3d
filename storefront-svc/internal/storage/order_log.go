package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"dronemeds/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

var orderLogHeader = []string{
	"Order ID", "Name", "Address", "Location", "Delivery Time", "Products", "Total Amount", "Timestamp",
}

// CSVOrderLog is an append-only order log. Writes from this process are
// serialized; other processes appending to the same file are not.
type CSVOrderLog struct {
	Path string
	mu   sync.Mutex
}

func NewCSVOrderLog(path string) *CSVOrderLog {
	return &CSVOrderLog{Path: path}
}

func (l *CSVOrderLog) Append(order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open order log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat order log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(orderLogHeader); err != nil {
			return err
		}
	}
	if err := w.Write([]string{
		order.OrderID,
		order.Name,
		order.Address,
		order.Location,
		order.DeliveryTime,
		order.Products,
		order.TotalAmount.StringFixed(2),
		order.Timestamp.Format(domain.TimestampLayout),
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// List returns every logged order; a missing file is an empty log.
func (l *CSVOrderLog) List() ([]domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open order log: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(skipBOM(f))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read order log header: %w", err)
	}
	colIndex, err := columnIndex(header, orderLogHeader)
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read order log: %w", err)
		}
		get := func(key string) string {
			if idx := colIndex[key]; idx < len(rec) {
				return rec[idx]
			}
			return ""
		}

		order := domain.Order{
			OrderID:      get("Order ID"),
			Name:         get("Name"),
			Address:      get("Address"),
			Location:     get("Location"),
			DeliveryTime: get("Delivery Time"),
			Products:     get("Products"),
		}
		order.TotalAmount, _ = decimal.NewFromString(get("Total Amount"))
		order.Timestamp, _ = time.ParseInLocation(domain.TimestampLayout, get("Timestamp"), time.Local)
		if parts := strings.Split(order.Location, ","); len(parts) == 2 {
			order.Latitude, _ = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			order.Longitude, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Find returns the most recent order with the given id.
func (l *CSVOrderLog) Find(orderID string) (*domain.Order, error) {
	orders, err := l.List()
	if err != nil {
		return nil, err
	}
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}
