package models

import "time"

// Contact statuses. The order NEW → READ → REPLIED → ARCHIVED is the usual
// flow but is not enforced.
const (
	ContactStatusNew      = "NEW"
	ContactStatusRead     = "READ"
	ContactStatusReplied  = "REPLIED"
	ContactStatusArchived = "ARCHIVED"
)

// ContactStatuses lists every accepted contact status value.
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusArchived,
}

// Contact is a public contact-form submission. Created without
// authentication; status always starts at NEW server-side.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
