package models

import "time"

// TripType classifies a booking (point-to-point, hourly, round trip, ...).
type TripType struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"isActive"`
	BookingCount int       `json:"bookingCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
