// Package repositories holds one repository per resource. Each repository
// receives its *sql.DB at construction time; there is no shared client.
package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateKey reports a MySQL unique-constraint violation (error 1062).
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
