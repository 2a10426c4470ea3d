package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the order log timestamp format (DD-MM-YYYY HH:MM:SS).
const TimestampLayout = "02-01-2006 15:04:05"

const (
	SlotMorning   = "Morning"
	SlotAfternoon = "Afternoon"
	SlotEvening   = "Evening"
)

// OrderPlaced is the event type published for every accepted order.
const OrderPlaced = "order_placed"

var DeliverySlots = []string{SlotMorning, SlotAfternoon, SlotEvening}

type Product struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price_inr"`
}

type ProductPopularity struct {
	Name       string  `json:"name"`
	Dispatches float64 `json:"dispatches"`
}

type Quote struct {
	Selected        []Product       `json:"selected"`
	Total           decimal.Decimal `json:"total"`
	Recommendations []Product       `json:"recommendations"`
}

type OrderRequest struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Location     string   `json:"location"`
	DeliveryTime string   `json:"delivery_time"`
	Products     []string `json:"products"`
}

type Order struct {
	OrderID      string          `json:"order_id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Location     string          `json:"location"`
	Latitude     float64         `json:"lat"`
	Longitude    float64         `json:"lon"`
	DeliveryTime string          `json:"delivery_time"`
	Products     string          `json:"products"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Timestamp    time.Time       `json:"timestamp"`
}

type Payment struct {
	UPIID     string          `json:"upi_id"`
	PayeeName string          `json:"payee_name"`
	URL       string          `json:"upi_url"`
	Amount    decimal.Decimal `json:"amount"`
	QRCode    string          `json:"qr_code"`
	PayBefore time.Time       `json:"pay_before"`
}

type OrderReceipt struct {
	Order   Order   `json:"order"`
	Payment Payment `json:"payment"`
}

type OrderEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	Products     []string  `json:"products"`
	TotalAmount  string    `json:"total_amount"`
	DeliveryTime string    `json:"delivery_time"`
	Latitude     float64   `json:"lat"`
	Longitude    float64   `json:"lon"`
	Timestamp    time.Time `json:"timestamp"`
}
