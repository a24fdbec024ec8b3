package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
	"limoapi/internal/utils"
)

const bookingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// bookingNumberAttempts bounds the regenerate-and-retry loop on a
// booking_number unique-key collision. The UNIQUE constraint stays the
// correctness backstop.
const bookingNumberAttempts = 3

// BookingService owns the booking lifecycle: reference checks, booking
// number generation and the restricted post-creation update policy.
type BookingService struct {
	Bookings  repositories.BookingRepository
	Vehicles  repositories.VehicleRepository
	TripTypes repositories.TripTypeRepository
	Services  repositories.ServiceRepository
	RequestID string

	// NumberFunc overrides booking number generation in tests.
	NumberFunc func(time.Time) string
}

// Create validates the relational references, assigns a booking number and
// inserts the record. Returns the booking joined with vehicle and service.
func (s BookingService) Create(b models.Booking) (models.Booking, error) {
	if _, err := s.Vehicles.GetByID(b.VehicleID, false); err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, domain.NotFoundError{Resource: "vehicle"}
		}
		return models.Booking{}, err
	}
	if _, err := s.TripTypes.GetByID(b.TripTypeID, false); err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, domain.NotFoundError{Resource: "trip type"}
		}
		return models.Booking{}, err
	}
	if b.ServiceID != nil {
		if _, err := s.Services.GetByID(*b.ServiceID, false); err != nil {
			if domain.IsNotFound(err) {
				return models.Booking{}, domain.NotFoundError{Resource: "service"}
			}
			return models.Booking{}, err
		}
	}

	b.Status = models.BookingStatusPending

	var created models.Booking
	var err error
	for attempt := 0; attempt < bookingNumberAttempts; attempt++ {
		b.BookingNumber = s.generateNumber(time.Now())
		created, err = s.Bookings.Create(b)
		if err == nil {
			utils.LogEvent(s.RequestID, "booking", "create",
				fmt.Sprintf("booking_number=%s total=%s", created.BookingNumber, utils.FormatUSD(created.TotalPrice)))
			return created, nil
		}
		if !errors.Is(err, repositories.ErrBookingNumberTaken) {
			return models.Booking{}, err
		}
		utils.LogEvent(s.RequestID, "booking", "number_collision",
			fmt.Sprintf("attempt=%d booking_number=%s", attempt+1, b.BookingNumber))
	}
	return models.Booking{}, err
}

func (s BookingService) GetByID(id string) (models.Booking, error) {
	return s.Bookings.GetByID(id)
}

func (s BookingService) GetByNumber(number string) (models.Booking, error) {
	return s.Bookings.GetByNumber(number)
}

func (s BookingService) ListAll() ([]models.Booking, error) {
	return s.Bookings.ListAll()
}

func (s BookingService) ListByUser(userID string) ([]models.Booking, error) {
	return s.Bookings.ListByUser(userID)
}

// Update applies the only two mutable fields. Status transitions are
// deliberately unconstrained; the admin gate restricts who may call this.
func (s BookingService) Update(id string, upd models.BookingUpdate) (models.Booking, error) {
	b, err := s.Bookings.Update(id, upd)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "update", "id="+id+" status="+b.Status)
	return b, nil
}

func (s BookingService) Delete(id string) error {
	if err := s.Bookings.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "delete", "id="+id)
	return nil
}

// generateNumber builds BK-<YYYYMMDD>-<6 uppercase alphanumerics>. The
// random segment is drawn independently per booking; global uniqueness is
// enforced by the store constraint plus the caller's retry loop.
func (s BookingService) generateNumber(now time.Time) string {
	if s.NumberFunc != nil {
		return s.NumberFunc(now)
	}
	code := make([]byte, 6)
	for i := range code {
		code[i] = bookingNumberAlphabet[rand.Intn(len(bookingNumberAlphabet))]
	}
	return "BK-" + now.Format("20060102") + "-" + string(code)
}
