package models

import "time"

// Service is a bookable service category (weddings, airport transfers, ...).
// The slug is URL-safe and unique across active and inactive records.
type Service struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Image        string    `json:"image,omitempty"`
	IsActive     bool      `json:"isActive"`
	BookingCount int       `json:"bookingCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
