package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// schema creates the jobs table used by the conversion queue.
const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	status TEXT NOT NULL DEFAULT 'queued',
	priority INTEGER NOT NULL DEFAULT 0,
	video_path TEXT NOT NULL,
	subtitle_path TEXT NOT NULL,
	fit_mode TEXT NOT NULL DEFAULT 'cover',
	progress_bar INTEGER NOT NULL DEFAULT 1,
	fps INTEGER NOT NULL DEFAULT 30,
	current_step TEXT,
	progress INTEGER DEFAULT 0,
	error_message TEXT,
	retry_count INTEGER DEFAULT 0,
	output_path TEXT,
	output_size INTEGER DEFAULT 0,
	queued_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	started_at TIMESTAMP,
	completed_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status, priority, queued_at);
`

// InitDB initializes the database connection and creates tables if needed
func InitDB(dbPath string) error {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database connection
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	DB = db
	log.Printf("Database initialized at %s", dbPath)
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
