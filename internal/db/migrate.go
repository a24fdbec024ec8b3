package db

import (
	"database/sql"
	"log"
)

// Migrate creates the schema when missing. UNIQUE keys on services.slug,
// trip_types.slug and bookings.booking_number are the storage-level backstop
// for the caller-level uniqueness checks.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS vehicles (
			id CHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(191) NOT NULL,
			quantity_passengers INT NOT NULL,
			quantity_baggage INT NOT NULL,
			description TEXT NOT NULL,
			price_per_hour DECIMAL(10,2) NOT NULL,
			price_per_mile DECIMAL(10,2) NOT NULL,
			images TEXT NOT NULL,
			is_active TINYINT(1) NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS services (
			id CHAR(36) NOT NULL PRIMARY KEY,
			slug VARCHAR(191) NOT NULL,
			title VARCHAR(191) NOT NULL,
			description TEXT NULL,
			image VARCHAR(512) NULL,
			is_active TINYINT(1) NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_services_slug (slug)
		)`,
		`CREATE TABLE IF NOT EXISTS trip_types (
			id CHAR(36) NOT NULL PRIMARY KEY,
			slug VARCHAR(191) NOT NULL,
			name VARCHAR(191) NOT NULL,
			description TEXT NULL,
			is_active TINYINT(1) NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_trip_types_slug (slug)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id CHAR(36) NOT NULL PRIMARY KEY,
			booking_number VARCHAR(32) NOT NULL,
			user_id VARCHAR(191) NULL,
			first_name VARCHAR(191) NOT NULL,
			last_name VARCHAR(191) NOT NULL,
			email VARCHAR(191) NOT NULL,
			phone VARCHAR(32) NOT NULL,
			pick_up_location VARCHAR(512) NOT NULL,
			drop_off_location VARCHAR(512) NOT NULL,
			stops TEXT NOT NULL,
			date_of_service VARCHAR(10) NOT NULL,
			pick_up_time VARCHAR(8) NOT NULL,
			round_trip TINYINT(1) NOT NULL DEFAULT 0,
			return_date VARCHAR(10) NULL,
			return_time VARCHAR(8) NULL,
			vehicle_id CHAR(36) NOT NULL,
			trip_type_id CHAR(36) NOT NULL,
			service_id CHAR(36) NULL,
			passengers INT NOT NULL,
			child_seat TINYINT(1) NOT NULL DEFAULT 0,
			meet_greet TINYINT(1) NOT NULL DEFAULT 0,
			champagne TINYINT(1) NOT NULL DEFAULT 0,
			add_ons_total DECIMAL(10,2) NOT NULL DEFAULT 0,
			distance DECIMAL(10,2) NULL,
			duration INT NULL,
			total_price DECIMAL(10,2) NOT NULL,
			special_instructions TEXT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_bookings_number (booking_number),
			KEY idx_bookings_user (user_id),
			KEY idx_bookings_vehicle (vehicle_id),
			KEY idx_bookings_trip_type (trip_type_id),
			KEY idx_bookings_service (service_id)
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id CHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(191) NOT NULL,
			email VARCHAR(191) NOT NULL,
			phone VARCHAR(16) NOT NULL,
			message TEXT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'NEW',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Println("schema migration complete")
	return nil
}
