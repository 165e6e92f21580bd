package repository

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

var schemas = map[string][]string{
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name          TEXT NOT NULL DEFAULT '',
			lastname      TEXT NOT NULL DEFAULT '',
			phone         TEXT NOT NULL DEFAULT '',
			created_at    INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id     INTEGER NOT NULL REFERENCES users (id),
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date        TEXT NOT NULL,
			time        TEXT,
			created_at  INTEGER NOT NULL,
			updated_at  INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_user_id ON events (user_id)`,
	},
	"mysql": {
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGINT AUTO_INCREMENT PRIMARY KEY,
			username      VARCHAR(64)  NOT NULL,
			email         VARCHAR(120) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name          VARCHAR(64)  NOT NULL DEFAULT '',
			lastname      VARCHAR(64)  NOT NULL DEFAULT '',
			phone         VARCHAR(20)  NOT NULL DEFAULT '',
			created_at    BIGINT NOT NULL,
			UNIQUE KEY username (username),
			UNIQUE KEY email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id          BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id     BIGINT NOT NULL,
			title       VARCHAR(120) NOT NULL,
			description TEXT NOT NULL,
			date        CHAR(10) NOT NULL,
			time        CHAR(5) NULL,
			created_at  BIGINT NOT NULL,
			updated_at  BIGINT NOT NULL,
			KEY idx_events_user_id (user_id),
			CONSTRAINT fk_events_user FOREIGN KEY (user_id) REFERENCES users (id)
		)`,
	},
}

// NewDB opens a connection pool for the configured driver ("sqlite" or
// "mysql") and ensures the schema exists. Username/email uniqueness lives
// in the schema so concurrent registrations fail deterministically instead
// of racing past an application-level existence check.
func NewDB(driver, dsn string) (*sql.DB, error) {
	if _, ok := schemas[driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	switch driver {
	case "sqlite":
		// The pure-Go sqlite driver does not support concurrent writers;
		// a single connection plus a busy timeout serializes access.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set busy timeout: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	case "mysql":
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range schemas[driver] {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	return db, nil
}
