package models

import "time"

// Booking statuses. Any status may follow any other; the design leaves
// transitions unconstrained and gates them behind the admin role instead.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

// BookingStatuses lists every accepted booking status value.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// Booking is the aggregate root. BookingNumber is generated at creation and
// immutable afterwards; only Status and SpecialInstructions may be updated.
type Booking struct {
	ID            string `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	UserID        string `json:"userId,omitempty"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	PickUpLocation  string   `json:"pickUpLocation"`
	DropOffLocation string   `json:"dropOffLocation"`
	Stops           []string `json:"stops"`
	DateOfService   string   `json:"dateOfService"`
	PickUpTime      string   `json:"pickUpTime"`

	RoundTrip  bool    `json:"roundTrip"`
	ReturnDate *string `json:"returnDate,omitempty"`
	ReturnTime *string `json:"returnTime,omitempty"`

	VehicleID  string  `json:"vehicleId"`
	TripTypeID string  `json:"tripTypeId"`
	ServiceID  *string `json:"serviceId,omitempty"`

	Passengers  int      `json:"passengers"`
	ChildSeat   bool     `json:"childSeat"`
	MeetGreet   bool     `json:"meetGreet"`
	Champagne   bool     `json:"champagne"`
	AddOnsTotal float64  `json:"addOnsTotal"`
	Distance    *float64 `json:"distance,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	TotalPrice  float64  `json:"totalPrice"`

	SpecialInstructions *string `json:"specialInstructions,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	Vehicle *Vehicle `json:"vehicle,omitempty"`
	Service *Service `json:"service,omitempty"`
}

// BookingUpdate carries the only two mutable booking fields.
// SpecialInstructions distinguishes explicit null (clear) from omitted.
type BookingUpdate struct {
	Status                 *string
	SpecialInstructions    *string
	SpecialInstructionsSet bool
}
