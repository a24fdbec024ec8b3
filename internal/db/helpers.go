package db

import "database/sql"

// NullIfEmpty helps store optional strings as NULL instead of "".
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullString converts an optional field into a driver value.
func NullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// NullFloat converts an optional numeric field into a driver value.
func NullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// NullInt converts an optional integer field into a driver value.
func NullInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

// StringPtr turns a scanned nullable column back into an optional field.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// FloatPtr turns a scanned nullable column back into an optional field.
func FloatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

// IntPtr turns a scanned nullable column back into an optional field.
func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}
