package service

import (
	"errors"
	"strconv"
	"strings"

	"dronemeds/storefront-svc/internal/domain"
)

var (
	ErrMissingCoordinates  = errors.New("Please enter valid GPS coordinates.")
	ErrInvalidCoordinates  = errors.New("Invalid GPS format. Please enter coordinates like: 12.9716, 77.5946")
	ErrNoProducts          = errors.New("Select at least one product to place an order.")
	ErrInvalidDeliverySlot = errors.New("Delivery slot must be Morning, Afternoon or Evening.")
)

// ParseCoordinates accepts "lat, lon". Blank input or input without a comma
// is missing; anything else that is not two floats is malformed.
func ParseCoordinates(raw string) (lat, lon float64, err error) {
	if strings.TrimSpace(raw) == "" || !strings.Contains(raw, ",") {
		return 0, 0, ErrMissingCoordinates
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidCoordinates
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	return lat, lon, nil
}

func normalizeSlot(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return domain.SlotMorning, nil
	}
	for _, s := range domain.DeliverySlots {
		if strings.EqualFold(s, slot) {
			return s, nil
		}
	}
	return "", ErrInvalidDeliverySlot
}
