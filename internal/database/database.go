package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// SeedOptionNames is the fixed set of votable options created at startup.
var SeedOptionNames = []string{"Politics", "Economy", "Sports", "Technology"}

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS options (
		name TEXT NOT NULL PRIMARY KEY,
		votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		rating REAL NOT NULL,
		comment TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE,
		password_hash TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT NOT NULL PRIMARY KEY,
		user_name TEXT NOT NULL,
		user_email TEXT,
		age TEXT,
		address TEXT,
		profile_picture TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// SeedOptions inserts the fixed option set with zero votes. The unique name
// column makes this safe to run on every startup, concurrent ones included.
func SeedOptions(db *sql.DB) error {
	stmt, err := db.Prepare("INSERT INTO options(name, votes) VALUES(?, 0) ON CONFLICT(name) DO NOTHING")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, name := range SeedOptionNames {
		if _, err := stmt.Exec(name); err != nil {
			return err
		}
	}
	return nil
}
