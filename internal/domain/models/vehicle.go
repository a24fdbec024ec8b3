package models

import "time"

// Vehicle is a fleet entry. Vehicles are never hard-deleted while bookings
// reference them; IsActive=false hides them from public reads instead.
type Vehicle struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	QuantityPassengers int       `json:"quantityPassengers"`
	QuantityBaggage    int       `json:"quantityBaggage"`
	Description        string    `json:"description"`
	PricePerHour       float64   `json:"pricePerHour"`
	PricePerMile       float64   `json:"pricePerMile"`
	Images             []string  `json:"images"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}
