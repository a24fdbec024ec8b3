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

// ServiceRepository wraps store access for the services table. Lists and
// single reads are annotated with the dependent booking count.
type ServiceRepository struct {
	DB *sql.DB
}

// ServicePatch carries the updatable service fields. Description and Image
// are nullable: the Set flag distinguishes explicit null from omitted.
type ServicePatch struct {
	Slug           *string
	Title          *string
	Description    *string
	DescriptionSet bool
	Image          *string
	ImageSet       bool
	IsActive       *bool
}

const serviceSelect = `SELECT s.id, s.slug, s.title, COALESCE(s.description,''),
	COALESCE(s.image,''), s.is_active, s.created_at,
	(SELECT COUNT(*) FROM bookings b WHERE b.service_id = s.id) AS booking_count
	FROM services s`

// List returns services newest-first, optionally restricted to active ones.
func (r ServiceRepository) List(activeOnly bool) ([]models.Service, error) {
	query := serviceSelect
	if activeOnly {
		query += ` WHERE s.is_active = 1`
	}
	query += ` ORDER BY s.created_at DESC, s.id DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, domain.DependencyError{Msg: "failed to list services", Err: err}
	}
	defer rows.Close()

	list := []models.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, domain.DependencyError{Msg: "failed to scan service", Err: err}
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DependencyError{Msg: "failed to list services", Err: err}
	}
	return list, nil
}

func (r ServiceRepository) GetByID(id string, activeOnly bool) (models.Service, error) {
	query := serviceSelect + ` WHERE s.id = ?`
	if activeOnly {
		query += ` AND s.is_active = 1`
	}
	return r.getOne(query, id)
}

func (r ServiceRepository) GetBySlug(slug string, activeOnly bool) (models.Service, error) {
	query := serviceSelect + ` WHERE s.slug = ?`
	if activeOnly {
		query += ` AND s.is_active = 1`
	}
	return r.getOne(query, slug)
}

// SlugExists checks slug usage across active and inactive records alike,
// optionally excluding one record (for updates).
func (r ServiceRepository) SlugExists(slug, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM services WHERE slug = ?`
	args := []any{slug}
	if excludeID != "" {
		query += ` AND id <> ?`
		args = append(args, excludeID)
	}
	var count int
	if err := r.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return false, domain.DependencyError{Msg: "failed to check service slug", Err: err}
	}
	return count > 0, nil
}

func (r ServiceRepository) Create(s models.Service) (models.Service, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()

	_, err := r.DB.Exec(`
		INSERT INTO services (id, slug, title, description, image, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Slug, s.Title, intdb.NullIfEmpty(s.Description),
		intdb.NullIfEmpty(s.Image), s.IsActive, s.CreatedAt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.Service{}, domain.ConflictError{
				Resource: "service", Msg: "slug already in use", Err: err,
			}
		}
		return models.Service{}, domain.DependencyError{Msg: "failed to create service", Err: err}
	}
	return s, nil
}

func (r ServiceRepository) Update(id string, patch ServicePatch) (models.Service, error) {
	sets := []string{}
	args := []any{}

	if patch.Slug != nil {
		sets = append(sets, "slug=?")
		args = append(args, *patch.Slug)
	}
	if patch.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, *patch.Title)
	}
	if patch.DescriptionSet {
		sets = append(sets, "description=?")
		args = append(args, intdb.NullString(patch.Description))
	}
	if patch.ImageSet {
		sets = append(sets, "image=?")
		args = append(args, intdb.NullString(patch.Image))
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active=?")
		args = append(args, *patch.IsActive)
	}

	if len(sets) > 0 {
		args = append(args, id)
		_, err := r.DB.Exec(`UPDATE services SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
		if err != nil {
			if isDuplicateKey(err) {
				return models.Service{}, domain.ConflictError{
					Resource: "service", Msg: "slug already in use", Err: err,
				}
			}
			return models.Service{}, domain.DependencyError{Msg: "failed to update service", Err: err}
		}
	}
	return r.GetByID(id, false)
}

// Deactivate flips is_active off; services referenced by bookings stay
// resolvable.
func (r ServiceRepository) Deactivate(id string) (models.Service, error) {
	inactive := false
	return r.Update(id, ServicePatch{IsActive: &inactive})
}

func (r ServiceRepository) getOne(query string, arg any) (models.Service, error) {
	s, err := scanService(r.DB.QueryRow(query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, domain.NotFoundError{Resource: "service", Err: err}
	}
	if err != nil {
		return models.Service{}, domain.DependencyError{Msg: "failed to load service", Err: err}
	}
	return s, nil
}

func scanService(row rowScanner) (models.Service, error) {
	var s models.Service
	if err := row.Scan(
		&s.ID, &s.Slug, &s.Title, &s.Description, &s.Image,
		&s.IsActive, &s.CreatedAt, &s.BookingCount,
	); err != nil {
		return models.Service{}, err
	}
	return s, nil
}
