package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	intdb "limoapi/internal/db"
	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
)

// TripTypeRepository wraps store access for the trip_types table. Unlike the
// other catalogs, trip types list alphabetically by name.
type TripTypeRepository struct {
	DB *sql.DB
}

// TripTypePatch carries the updatable trip-type fields. Description is
// nullable: the Set flag distinguishes explicit null from omitted.
type TripTypePatch struct {
	Slug           *string
	Name           *string
	Description    *string
	DescriptionSet bool
	IsActive       *bool
}

const tripTypeSelect = `SELECT t.id, t.slug, t.name, COALESCE(t.description,''),
	t.is_active, t.created_at,
	(SELECT COUNT(*) FROM bookings b WHERE b.trip_type_id = t.id) AS booking_count
	FROM trip_types t`

func (r TripTypeRepository) List(activeOnly bool) ([]models.TripType, error) {
	query := tripTypeSelect
	if activeOnly {
		query += ` WHERE t.is_active = 1`
	}
	query += ` ORDER BY t.name ASC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, domain.DependencyError{Msg: "failed to list trip types", Err: err}
	}
	defer rows.Close()

	list := []models.TripType{}
	for rows.Next() {
		t, err := scanTripType(rows)
		if err != nil {
			return nil, domain.DependencyError{Msg: "failed to scan trip type", Err: err}
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DependencyError{Msg: "failed to list trip types", Err: err}
	}
	return list, nil
}

func (r TripTypeRepository) GetByID(id string, activeOnly bool) (models.TripType, error) {
	query := tripTypeSelect + ` WHERE t.id = ?`
	if activeOnly {
		query += ` AND t.is_active = 1`
	}
	return r.getOne(query, id)
}

func (r TripTypeRepository) GetBySlug(slug string, activeOnly bool) (models.TripType, error) {
	query := tripTypeSelect + ` WHERE t.slug = ?`
	if activeOnly {
		query += ` AND t.is_active = 1`
	}
	return r.getOne(query, slug)
}

// SlugExists checks slug usage across active and inactive records alike.
func (r TripTypeRepository) SlugExists(slug, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM trip_types WHERE slug = ?`
	args := []any{slug}
	if excludeID != "" {
		query += ` AND id <> ?`
		args = append(args, excludeID)
	}
	var count int
	if err := r.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return false, domain.DependencyError{Msg: "failed to check trip type slug", Err: err}
	}
	return count > 0, nil
}

func (r TripTypeRepository) Create(t models.TripType) (models.TripType, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()

	_, err := r.DB.Exec(`
		INSERT INTO trip_types (id, slug, name, description, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Slug, t.Name, intdb.NullIfEmpty(t.Description), t.IsActive, t.CreatedAt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.TripType{}, domain.ConflictError{
				Resource: "trip type", Msg: "slug already in use", Err: err,
			}
		}
		return models.TripType{}, domain.DependencyError{Msg: "failed to create trip type", Err: err}
	}
	return t, nil
}

func (r TripTypeRepository) Update(id string, patch TripTypePatch) (models.TripType, error) {
	sets := []string{}
	args := []any{}

	if patch.Slug != nil {
		sets = append(sets, "slug=?")
		args = append(args, *patch.Slug)
	}
	if patch.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *patch.Name)
	}
	if patch.DescriptionSet {
		sets = append(sets, "description=?")
		args = append(args, intdb.NullString(patch.Description))
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active=?")
		args = append(args, *patch.IsActive)
	}

	if len(sets) > 0 {
		args = append(args, id)
		_, err := r.DB.Exec(`UPDATE trip_types SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
		if err != nil {
			if isDuplicateKey(err) {
				return models.TripType{}, domain.ConflictError{
					Resource: "trip type", Msg: "slug already in use", Err: err,
				}
			}
			return models.TripType{}, domain.DependencyError{Msg: "failed to update trip type", Err: err}
		}
	}
	return r.GetByID(id, false)
}

func (r TripTypeRepository) Deactivate(id string) (models.TripType, error) {
	inactive := false
	return r.Update(id, TripTypePatch{IsActive: &inactive})
}

func (r TripTypeRepository) getOne(query string, arg any) (models.TripType, error) {
	t, err := scanTripType(r.DB.QueryRow(query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TripType{}, domain.NotFoundError{Resource: "trip type", Err: err}
	}
	if err != nil {
		return models.TripType{}, domain.DependencyError{Msg: "failed to load trip type", Err: err}
	}
	return t, nil
}

func scanTripType(row rowScanner) (models.TripType, error) {
	var t models.TripType
	if err := row.Scan(
		&t.ID, &t.Slug, &t.Name, &t.Description,
		&t.IsActive, &t.CreatedAt, &t.BookingCount,
	); err != nil {
		return models.TripType{}, err
	}
	return t, nil
}
