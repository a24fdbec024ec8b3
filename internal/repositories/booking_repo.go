package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	intdb "limoapi/internal/db"
	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
)

// ErrBookingNumberTaken signals a unique-key collision on booking_number so
// the caller can regenerate and retry.
var ErrBookingNumberTaken = errors.New("booking number already in use")

// BookingRepository wraps store access for the bookings table. Reads return
// the booking joined with its vehicle and optional service, mirroring what
// clients render. Bookings are hard-deleted; nothing references them.
type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `id, booking_number, user_id, first_name, last_name, email, phone,
	pick_up_location, drop_off_location, stops, date_of_service, pick_up_time,
	round_trip, return_date, return_time, vehicle_id, trip_type_id, service_id,
	passengers, child_seat, meet_greet, champagne, add_ons_total,
	distance, duration, total_price, special_instructions, status, created_at`

// Create inserts a booking with a server-assigned id and creation timestamp.
// The booking number must already be set by the caller.
func (r BookingRepository) Create(b models.Booking) (models.Booking, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}

	stops, err := json.Marshal(b.Stops)
	if err != nil {
		return models.Booking{}, domain.DependencyError{Msg: "failed to encode stops", Err: err}
	}

	_, err = r.DB.Exec(`
		INSERT INTO bookings
		(id, booking_number, user_id, first_name, last_name, email, phone,
		 pick_up_location, drop_off_location, stops, date_of_service, pick_up_time,
		 round_trip, return_date, return_time, vehicle_id, trip_type_id, service_id,
		 passengers, child_seat, meet_greet, champagne, add_ons_total,
		 distance, duration, total_price, special_instructions, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.BookingNumber, intdb.NullIfEmpty(b.UserID), b.FirstName, b.LastName, b.Email, b.Phone,
		b.PickUpLocation, b.DropOffLocation, string(stops), b.DateOfService, b.PickUpTime,
		b.RoundTrip, intdb.NullString(b.ReturnDate), intdb.NullString(b.ReturnTime),
		b.VehicleID, b.TripTypeID, intdb.NullString(b.ServiceID),
		b.Passengers, b.ChildSeat, b.MeetGreet, b.Champagne, b.AddOnsTotal,
		intdb.NullFloat(b.Distance), intdb.NullInt(b.Duration), b.TotalPrice,
		intdb.NullString(b.SpecialInstructions), b.Status, b.CreatedAt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.Booking{}, domain.ConflictError{
				Resource: "booking", Msg: "booking number already in use", Err: ErrBookingNumberTaken,
			}
		}
		return models.Booking{}, domain.DependencyError{Msg: "failed to create booking", Err: err}
	}
	return r.GetByID(b.ID)
}

func (r BookingRepository) GetByID(id string) (models.Booking, error) {
	return r.getOne(`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
}

func (r BookingRepository) GetByNumber(number string) (models.Booking, error) {
	return r.getOne(`SELECT `+bookingColumns+` FROM bookings WHERE booking_number = ?`, number)
}

// ListAll returns every booking newest-first, joined with relations.
func (r BookingRepository) ListAll() ([]models.Booking, error) {
	return r.list(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`)
}

// ListByUser scopes bookings to the requesting identity.
func (r BookingRepository) ListByUser(userID string) ([]models.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
}

// Update touches only status and special_instructions; every other field is
// immutable after creation.
func (r BookingRepository) Update(id string, upd models.BookingUpdate) (models.Booking, error) {
	sets := []string{}
	args := []any{}

	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *upd.Status)
	}
	if upd.SpecialInstructionsSet {
		sets = append(sets, "special_instructions=?")
		args = append(args, intdb.NullString(upd.SpecialInstructions))
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := r.DB.Exec(`UPDATE bookings SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
		if err != nil {
			return models.Booking{}, domain.DependencyError{Msg: "failed to update booking", Err: err}
		}
		if n, _ := res.RowsAffected(); n == 0 {
			if _, err := r.GetByID(id); err != nil {
				return models.Booking{}, err
			}
		}
	}
	return r.GetByID(id)
}

func (r BookingRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return domain.DependencyError{Msg: "failed to delete booking", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) getOne(query string, arg any) (models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.DependencyError{Msg: "failed to load booking", Err: err}
	}
	list := []models.Booking{b}
	if err := r.attachRelations(list); err != nil {
		return models.Booking{}, err
	}
	return list[0], nil
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.DependencyError{Msg: "failed to list bookings", Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.DependencyError{Msg: "failed to scan booking", Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DependencyError{Msg: "failed to list bookings", Err: err}
	}
	if err := r.attachRelations(list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachRelations joins in the referenced vehicle and optional service.
// Inactive records are still resolved so historical bookings stay readable.
func (r BookingRepository) attachRelations(list []models.Booking) error {
	vehicles := VehicleRepository{DB: r.DB}
	services := ServiceRepository{DB: r.DB}

	vehicleCache := map[string]*models.Vehicle{}
	serviceCache := map[string]*models.Service{}

	for i := range list {
		vid := list[i].VehicleID
		if _, ok := vehicleCache[vid]; !ok {
			v, err := vehicles.GetByID(vid, false)
			if err != nil {
				if domain.IsNotFound(err) {
					vehicleCache[vid] = nil
				} else {
					return err
				}
			} else {
				vehicleCache[vid] = &v
			}
		}
		list[i].Vehicle = vehicleCache[vid]

		if list[i].ServiceID == nil {
			continue
		}
		sid := *list[i].ServiceID
		if _, ok := serviceCache[sid]; !ok {
			s, err := services.GetByID(sid, false)
			if err != nil {
				if domain.IsNotFound(err) {
					serviceCache[sid] = nil
				} else {
					return err
				}
			} else {
				serviceCache[sid] = &s
			}
		}
		list[i].Service = serviceCache[sid]
	}
	return nil
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var userID, returnDate, returnTime, serviceID, special sql.NullString
	var distance sql.NullFloat64
	var duration sql.NullInt64
	var stops string

	if err := row.Scan(
		&b.ID, &b.BookingNumber, &userID, &b.FirstName, &b.LastName, &b.Email, &b.Phone,
		&b.PickUpLocation, &b.DropOffLocation, &stops, &b.DateOfService, &b.PickUpTime,
		&b.RoundTrip, &returnDate, &returnTime, &b.VehicleID, &b.TripTypeID, &serviceID,
		&b.Passengers, &b.ChildSeat, &b.MeetGreet, &b.Champagne, &b.AddOnsTotal,
		&distance, &duration, &b.TotalPrice, &special, &b.Status, &b.CreatedAt,
	); err != nil {
		return models.Booking{}, err
	}

	b.UserID = userID.String
	b.ReturnDate = intdb.StringPtr(returnDate)
	b.ReturnTime = intdb.StringPtr(returnTime)
	b.ServiceID = intdb.StringPtr(serviceID)
	b.SpecialInstructions = intdb.StringPtr(special)
	b.Distance = intdb.FloatPtr(distance)
	b.Duration = intdb.IntPtr(duration)
	if err := json.Unmarshal([]byte(stops), &b.Stops); err != nil || b.Stops == nil {
		b.Stops = []string{}
	}
	return b, nil
}
