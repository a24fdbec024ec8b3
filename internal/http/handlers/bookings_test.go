package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
)

func bookingTestRouter(repo repositories.BookingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := BookingHandler{Bookings: repo, Dev: true}
	r.POST("/api/bookings", h.Create)
	r.PUT("/api/bookings/:id", h.Update)
	return r
}

func bookingTestRows(instructions any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_number", "user_id", "first_name", "last_name", "email", "phone",
		"pick_up_location", "drop_off_location", "stops", "date_of_service", "pick_up_time",
		"round_trip", "return_date", "return_time", "vehicle_id", "trip_type_id", "service_id",
		"passengers", "child_seat", "meet_greet", "champagne", "add_ons_total",
		"distance", "duration", "total_price", "special_instructions", "status", "created_at",
	}).AddRow(
		"b1", "BK-20260915-AB12CD", "user_1", "Ada", "Lovelace", "ada@example.com", "5551234567",
		"JFK Airport", "Manhattan", `[]`, "2026-09-15", "14:30",
		false, nil, nil, "v1", "tt1", nil,
		2, false, false, false, 0,
		nil, nil, 320, instructions, models.BookingStatusConfirmed, time.Now(),
	)
}

func expectBookingReload(mock sqlmock.Sqlmock, instructions any) {
	mock.ExpectQuery(`FROM bookings WHERE id = \?`).
		WithArgs("b1").
		WillReturnRows(bookingTestRows(instructions))
	mock.ExpectQuery(`FROM vehicles WHERE id = \?`).
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "quantity_passengers", "quantity_baggage", "description",
			"price_per_hour", "price_per_mile", "images", "is_active", "created_at",
		}).AddRow("v1", "Sedan", 3, 2, "Executive sedan", 85, 2.5, `[]`, true, time.Now()))
}

func TestBookingCreate_ValidationCollectsAllIssues(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	r := bookingTestRouter(repositories.BookingRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"firstName":"Ada","email":"not-an-email","dateOfService":"15-09-2026","totalPrice":0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	want := map[string]bool{"email": false, "dateOfService": false, "totalPrice": false, "vehicleId": false}
	for _, d := range body.Details {
		if _, ok := want[d.Field]; ok {
			want[d.Field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Fatalf("expected an issue for %s, got %s", field, w.Body.String())
		}
	}
}

func TestBookingUpdate_StatusOnlyLeavesInstructionsAlone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET status=\? WHERE id=\?`).
		WithArgs(models.BookingStatusConfirmed, "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectBookingReload(mock, "keep me")

	r := bookingTestRouter(repositories.BookingRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1",
		strings.NewReader(`{"status":"CONFIRMED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingUpdate_ExplicitNullClearsInstructions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET special_instructions=\? WHERE id=\?`).
		WithArgs(nil, "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectBookingReload(mock, nil)

	r := bookingTestRouter(repositories.BookingRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1",
		strings.NewReader(`{"specialInstructions":null}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingUpdate_RejectsUnknownStatus(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	r := bookingTestRouter(repositories.BookingRepository{DB: db})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1",
		strings.NewReader(`{"status":"SHIPPED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
