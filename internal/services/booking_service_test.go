package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
)

func TestGenerateNumberFormat(t *testing.T) {
	svc := BookingService{}
	re := regexp.MustCompile(`^BK-\d{8}-[A-Z0-9]{6}$`)
	for i := 0; i < 50; i++ {
		n := svc.generateNumber(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC))
		if !re.MatchString(n) {
			t.Fatalf("booking number %q does not match expected format", n)
		}
		if n[3:11] != "20260915" {
			t.Fatalf("date segment wrong in %q", n)
		}
	}
}

func newBookingServiceMock(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		Bookings:  repositories.BookingRepository{DB: db},
		Vehicles:  repositories.VehicleRepository{DB: db},
		TripTypes: repositories.TripTypeRepository{DB: db},
		Services:  repositories.ServiceRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectVehicleLookup(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery(`FROM vehicles WHERE id = \?`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "quantity_passengers", "quantity_baggage", "description",
			"price_per_hour", "price_per_mile", "images", "is_active", "created_at",
		}).AddRow(id, "Sedan", 3, 2, "Executive sedan", 85, 2.5, `[]`, true, time.Now()))
}

func expectTripTypeLookup(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery(`FROM trip_types t WHERE t\.id = \?`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "name", "description", "is_active", "created_at", "booking_count",
		}).AddRow(id, "one-way", "One Way", "", true, time.Now(), 0))
}

func expectBookingSelect(mock sqlmock.Sqlmock, number string) {
	rows := sqlmock.NewRows([]string{
		"id", "booking_number", "user_id", "first_name", "last_name", "email", "phone",
		"pick_up_location", "drop_off_location", "stops", "date_of_service", "pick_up_time",
		"round_trip", "return_date", "return_time", "vehicle_id", "trip_type_id", "service_id",
		"passengers", "child_seat", "meet_greet", "champagne", "add_ons_total",
		"distance", "duration", "total_price", "special_instructions", "status", "created_at",
	}).AddRow(
		"b1", number, "user_1", "Ada", "Lovelace", "ada@example.com", "5551234567",
		"JFK Airport", "Manhattan", `[]`, "2026-09-15", "14:30",
		false, nil, nil, "v1", "tt1", nil,
		2, false, false, false, 0,
		nil, nil, 320, nil, models.BookingStatusPending, time.Now(),
	)
	mock.ExpectQuery(`FROM bookings WHERE id = \?`).WillReturnRows(rows)
}

func TestBookingCreate_RetriesOnNumberCollision(t *testing.T) {
	svc, mock, closeDB := newBookingServiceMock(t)
	defer closeDB()

	attempt := 0
	svc.NumberFunc = func(now time.Time) string {
		attempt++
		return fmt.Sprintf("BK-20260915-TEST%02d", attempt)
	}

	expectVehicleLookup(mock, "v1")
	expectTripTypeLookup(mock, "tt1")

	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectBookingSelect(mock, "BK-20260915-TEST02")
	expectVehicleLookup(mock, "v1")

	created, err := svc.Create(models.Booking{
		VehicleID:  "v1",
		TripTypeID: "tt1",
		Passengers: 2,
		TotalPrice: 320,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if attempt != 2 {
		t.Fatalf("expected a single retry, generator called %d times", attempt)
	}
	if created.BookingNumber != "BK-20260915-TEST02" {
		t.Fatalf("expected the regenerated number, got %s", created.BookingNumber)
	}
	if created.Status != models.BookingStatusPending {
		t.Fatalf("new bookings must start PENDING, got %s", created.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreate_GivesUpAfterBoundedRetries(t *testing.T) {
	svc, mock, closeDB := newBookingServiceMock(t)
	defer closeDB()

	svc.NumberFunc = func(time.Time) string { return "BK-20260915-SAMENO" }

	expectVehicleLookup(mock, "v1")
	expectTripTypeLookup(mock, "tt1")
	for i := 0; i < bookingNumberAttempts; i++ {
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	}

	_, err := svc.Create(models.Booking{VehicleID: "v1", TripTypeID: "tt1"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict after exhausting retries, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreate_UnknownVehicle(t *testing.T) {
	svc, mock, closeDB := newBookingServiceMock(t)
	defer closeDB()

	mock.ExpectQuery(`FROM vehicles WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "quantity_passengers", "quantity_baggage", "description",
			"price_per_hour", "price_per_mile", "images", "is_active", "created_at",
		}))

	_, err := svc.Create(models.Booking{VehicleID: "missing", TripTypeID: "tt1"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown vehicle, got %v", err)
	}
}

func TestBookingCreate_UnknownService(t *testing.T) {
	svc, mock, closeDB := newBookingServiceMock(t)
	defer closeDB()

	expectVehicleLookup(mock, "v1")
	expectTripTypeLookup(mock, "tt1")
	mock.ExpectQuery(`FROM services s WHERE s\.id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "title", "description", "image", "is_active", "created_at", "booking_count",
		}))

	serviceID := "missing"
	_, err := svc.Create(models.Booking{VehicleID: "v1", TripTypeID: "tt1", ServiceID: &serviceID})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown service, got %v", err)
	}
}
