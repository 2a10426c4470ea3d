package domain

import "time"

const OrderPlaced = "order_placed"

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
