package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	intdb "limoapi/internal/db"
	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
)

// ContactRepository wraps store access for the contacts table. Contacts are
// not referenced by other resources, so deletion here is a hard delete.
type ContactRepository struct {
	DB *sql.DB
}

const contactColumns = `id, name, email, phone, COALESCE(message,''), status, created_at`

func (r ContactRepository) List() ([]models.Contact, error) {
	rows, err := r.DB.Query(`SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, domain.DependencyError{Msg: "failed to list contacts", Err: err}
	}
	defer rows.Close()

	list := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, domain.DependencyError{Msg: "failed to scan contact", Err: err}
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DependencyError{Msg: "failed to list contacts", Err: err}
	}
	return list, nil
}

func (r ContactRepository) GetByID(id string) (models.Contact, error) {
	c, err := scanContact(r.DB.QueryRow(`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, domain.NotFoundError{Resource: "contact", Err: err}
	}
	if err != nil {
		return models.Contact{}, domain.DependencyError{Msg: "failed to load contact", Err: err}
	}
	return c, nil
}

// Create stores a submission. Status is forced to NEW regardless of input.
func (r ContactRepository) Create(c models.Contact) (models.Contact, error) {
	c.ID = uuid.NewString()
	c.Status = models.ContactStatusNew
	c.CreatedAt = time.Now()

	_, err := r.DB.Exec(`
		INSERT INTO contacts (id, name, email, phone, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, intdb.NullIfEmpty(c.Message), c.Status, c.CreatedAt,
	)
	if err != nil {
		return models.Contact{}, domain.DependencyError{Msg: "failed to create contact", Err: err}
	}
	return c, nil
}

func (r ContactRepository) UpdateStatus(id, status string) (models.Contact, error) {
	res, err := r.DB.Exec(`UPDATE contacts SET status=? WHERE id=?`, status, id)
	if err != nil {
		return models.Contact{}, domain.DependencyError{Msg: "failed to update contact status", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return models.Contact{}, err
		}
	}
	return r.GetByID(id)
}

func (r ContactRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM contacts WHERE id=?`, id)
	if err != nil {
		return domain.DependencyError{Msg: "failed to delete contact", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "contact"}
	}
	return nil
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Status, &c.CreatedAt); err != nil {
		return models.Contact{}, err
	}
	return c, nil
}
