package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
)

// VehicleRepository wraps store access for the vehicles table.
type VehicleRepository struct {
	DB *sql.DB
}

// VehiclePatch carries the updatable vehicle fields; nil means not provided.
type VehiclePatch struct {
	Name               *string
	QuantityPassengers *int
	QuantityBaggage    *int
	Description        *string
	PricePerHour       *float64
	PricePerMile       *float64
	Images             []string
	IsActive           *bool
}

const vehicleColumns = `id, name, quantity_passengers, quantity_baggage, description,
	price_per_hour, price_per_mile, images, is_active, created_at`

// List returns vehicles newest-first, optionally restricted to active ones.
func (r VehicleRepository) List(activeOnly bool) ([]models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, domain.DependencyError{Msg: "failed to list vehicles", Err: err}
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, domain.DependencyError{Msg: "failed to scan vehicle", Err: err}
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DependencyError{Msg: "failed to list vehicles", Err: err}
	}
	return list, nil
}

// GetByID loads one vehicle; activeOnly restricts to public visibility.
func (r VehicleRepository) GetByID(id string, activeOnly bool) (models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ?`
	if activeOnly {
		query += ` AND is_active = 1`
	}

	v, err := scanVehicle(r.DB.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle", Err: err}
	}
	if err != nil {
		return models.Vehicle{}, domain.DependencyError{Msg: "failed to load vehicle", Err: err}
	}
	return v, nil
}

// Create inserts a vehicle with a server-assigned id and creation timestamp.
func (r VehicleRepository) Create(v models.Vehicle) (models.Vehicle, error) {
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now()

	images, err := json.Marshal(v.Images)
	if err != nil {
		return models.Vehicle{}, domain.DependencyError{Msg: "failed to encode images", Err: err}
	}

	_, err = r.DB.Exec(`
		INSERT INTO vehicles
		(id, name, quantity_passengers, quantity_baggage, description,
		 price_per_hour, price_per_mile, images, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Name, v.QuantityPassengers, v.QuantityBaggage, v.Description,
		v.PricePerHour, v.PricePerMile, string(images), v.IsActive, v.CreatedAt,
	)
	if err != nil {
		return models.Vehicle{}, domain.DependencyError{Msg: "failed to create vehicle", Err: err}
	}
	return v, nil
}

// Update merges only the provided fields and returns the updated record.
func (r VehicleRepository) Update(id string, patch VehiclePatch) (models.Vehicle, error) {
	sets := []string{}
	args := []any{}
	add := func(column string, val any) {
		sets = append(sets, column+"=?")
		args = append(args, val)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.QuantityPassengers != nil {
		add("quantity_passengers", *patch.QuantityPassengers)
	}
	if patch.QuantityBaggage != nil {
		add("quantity_baggage", *patch.QuantityBaggage)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.PricePerHour != nil {
		add("price_per_hour", *patch.PricePerHour)
	}
	if patch.PricePerMile != nil {
		add("price_per_mile", *patch.PricePerMile)
	}
	if patch.Images != nil {
		images, err := json.Marshal(patch.Images)
		if err != nil {
			return models.Vehicle{}, domain.DependencyError{Msg: "failed to encode images", Err: err}
		}
		add("images", string(images))
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := r.DB.Exec(`UPDATE vehicles SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
		if err != nil {
			return models.Vehicle{}, domain.DependencyError{Msg: "failed to update vehicle", Err: err}
		}
		if n, _ := res.RowsAffected(); n == 0 {
			// the UPDATE may also match zero rows when nothing changed,
			// so confirm existence before reporting not found
			if _, err := r.GetByID(id, false); err != nil {
				return models.Vehicle{}, err
			}
		}
	}
	return r.GetByID(id, false)
}

// Deactivate is the only deletion path for vehicles (soft delete).
func (r VehicleRepository) Deactivate(id string) (models.Vehicle, error) {
	inactive := false
	return r.Update(id, VehiclePatch{IsActive: &inactive})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var v models.Vehicle
	var images string
	if err := row.Scan(
		&v.ID, &v.Name, &v.QuantityPassengers, &v.QuantityBaggage, &v.Description,
		&v.PricePerHour, &v.PricePerMile, &images, &v.IsActive, &v.CreatedAt,
	); err != nil {
		return models.Vehicle{}, err
	}
	if err := json.Unmarshal([]byte(images), &v.Images); err != nil || v.Images == nil {
		v.Images = []string{}
	}
	return v, nil
}
