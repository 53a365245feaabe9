package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ning0612/fspreview/internal/domain"
)

// DBFileName is the name of the history database inside the data directory
const DBFileName = "fspreview.db"

// Manager persists the history of previewed paths
type Manager struct {
	db *sql.DB
}

// ViewRecord represents a single preview of a path
type ViewRecord struct {
	ID        int64
	Path      string
	Kind      domain.PathKind
	Size      int64
	SizeLabel string
	Icon      string
	ViewedAt  time.Time
}

// NewManager creates a new state manager
func NewManager(dataDir string) (*Manager, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Limit connection pool to prevent "database is locked" errors
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode and busy timeout: %w", err)
	}

	manager := &Manager{db: db}

	if err := manager.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return manager, nil
}

// initSchema creates the database schema
func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		kind TEXT NOT NULL,
		size INTEGER DEFAULT 0,
		size_label TEXT NOT NULL,
		icon TEXT NOT NULL,
		viewed_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_views_path_time ON views(path, viewed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_views_time ON views(viewed_at DESC);
	`

	_, err := m.db.Exec(schema)
	return err
}

// RecordView stores a preview of a path
func (m *Manager) RecordView(record ViewRecord) error {
	if record.Path == "" {
		return fmt.Errorf("view path cannot be empty")
	}
	if !record.Kind.IsValid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownPathKind, int(record.Kind))
	}
	if record.ViewedAt.IsZero() {
		record.ViewedAt = time.Now()
	}

	query := `
		INSERT INTO views (path, kind, size, size_label, icon, viewed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := m.db.Exec(query,
		record.Path,
		record.Kind.String(),
		record.Size,
		record.SizeLabel,
		record.Icon,
		record.ViewedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save view record: %w", err)
	}

	return nil
}

// Recent retrieves the most recent views, newest first
func (m *Manager) Recent(limit int) ([]ViewRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, path, kind, size, size_label, icon, viewed_at
		FROM views
		ORDER BY viewed_at DESC, id DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query views: %w", err)
	}
	defer rows.Close()

	var records []ViewRecord
	for rows.Next() {
		record, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// LastView retrieves the latest view of a path, or nil if it was never previewed
func (m *Manager) LastView(path string) (*ViewRecord, error) {
	query := `
		SELECT id, path, kind, size, size_label, icon, viewed_at
		FROM views
		WHERE path = ?
		ORDER BY viewed_at DESC, id DESC
		LIMIT 1
	`

	record, err := scanView(m.db.QueryRow(query, path))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanView(s scanner) (ViewRecord, error) {
	var (
		record ViewRecord
		kind   string
	)
	err := s.Scan(
		&record.ID,
		&record.Path,
		&kind,
		&record.Size,
		&record.SizeLabel,
		&record.Icon,
		&record.ViewedAt,
	)
	if err == sql.ErrNoRows {
		return record, err
	}
	if err != nil {
		return record, fmt.Errorf("failed to scan record: %w", err)
	}

	record.Kind, err = domain.ParsePathKind(kind)
	if err != nil {
		return record, fmt.Errorf("record %d: %w", record.ID, err)
	}
	return record, nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
