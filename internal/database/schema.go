package database

import (
	"context"
	"database/sql"
)

// schemaStatements creates every table the service needs. Statements
// are idempotent so Bootstrap can run on every startup. The sequences
// table backs the ticket/receive number allocator; its value column is
// advanced with a single atomic UPDATE, never read-modify-written from
// the application.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cars (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		make        VARCHAR(64)  NOT NULL,
		model       VARCHAR(64)  NOT NULL,
		year        INT          NOT NULL,
		price       BIGINT       NOT NULL,
		description TEXT         NOT NULL,
		photos      JSON         NOT NULL,
		active      TINYINT(1)   NOT NULL DEFAULT 1,
		UNIQUE KEY uq_cars_make_model_year (make, model, year)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS clients (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name         VARCHAR(128) NOT NULL,
		email        VARCHAR(255) NOT NULL,
		contact_info VARCHAR(255) NOT NULL,
		address      VARCHAR(255) NOT NULL,
		sales_person BIGINT UNSIGNED NOT NULL,
		photo_url    VARCHAR(512) NOT NULL,
		active       TINYINT(1)   NOT NULL DEFAULT 1,
		UNIQUE KEY uq_clients_name (name),
		KEY idx_clients_sales_person (sales_person)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(64)  NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		roles         JSON         NOT NULL,
		photo_url     VARCHAR(512) NOT NULL,
		active        TINYINT(1)   NOT NULL DEFAULT 1,
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		buyer          BIGINT UNSIGNED NOT NULL,
		sale_date      DATETIME     NOT NULL,
		quantity       INT          NOT NULL,
		total_price    BIGINT       NOT NULL,
		payment_method VARCHAR(64)  NOT NULL,
		sales_person   BIGINT UNSIGNED NOT NULL,
		ticket         BIGINT UNSIGNED NOT NULL,
		UNIQUE KEY uq_sales_ticket (ticket),
		KEY idx_sales_buyer (buyer)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		sales_person BIGINT UNSIGNED NOT NULL,
		due_date     DATETIME     NULL,
		total_amount BIGINT       NOT NULL,
		paid         TINYINT(1)   NOT NULL DEFAULT 0,
		receive      BIGINT UNSIGNED NOT NULL,
		UNIQUE KEY uq_invoices_receive (receive)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		car_id   BIGINT UNSIGNED NOT NULL,
		quantity INT          NOT NULL DEFAULT 0,
		location VARCHAR(128) NOT NULL DEFAULT '',
		KEY idx_inventory_car_id (car_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS comments (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		related_sale BIGINT UNSIGNED NOT NULL,
		comment      TEXT         NOT NULL,
		created_by   BIGINT UNSIGNED NOT NULL,
		created_at   DATETIME     NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS images (
		id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		link_url VARCHAR(512) NOT NULL,
		car_id   BIGINT UNSIGNED NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS payments (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		payment_date DATETIME NOT NULL,
		amount       BIGINT   NOT NULL,
		created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS sequences (
		name  VARCHAR(32)     NOT NULL PRIMARY KEY,
		value BIGINT UNSIGNED NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Bootstrap creates the schema and seeds the named counters at
// start-1, so the first allocation for each returns exactly start.
// INSERT IGNORE keeps existing counters untouched across restarts:
// a counter that has already advanced must never move backwards.
func Bootstrap(ctx context.Context, db *sql.DB, start uint64, sequenceNames ...string) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for _, name := range sequenceNames {
		if _, err := db.ExecContext(ctx,
			`INSERT IGNORE INTO sequences (name, value) VALUES (?, ?)`,
			name, start-1); err != nil {
			return err
		}
	}
	return nil
}
