// internal/database/sqlite.go
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sstent/fittracker-go/internal/parser"
)

type SQLiteDB struct {
	db *sql.DB
}

var _ Database = (*SQLiteDB)(nil)

func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	sqlite := &SQLiteDB{db: db}

	if err := sqlite.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sqlite, nil
}

func (s *SQLiteDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS packages (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT UNIQUE NOT NULL,
		code TEXT NOT NULL,
		data TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_packages_code ON packages(code);
	`

	_, err := s.db.Exec(schema)
	return err
}

// AddPackage stores a raw package. Codes and values are kept as given;
// dispatch errors surface when the package is reported.
func (s *SQLiteDB) AddPackage(pkg parser.Package) (*StoredPackage, error) {
	data, err := json.Marshal(pkg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode package data: %w", err)
	}

	stored := &StoredPackage{
		ID:        uuid.NewString(),
		Code:      pkg.Code,
		Data:      pkg.Data,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	query := `INSERT INTO packages (id, code, data, created_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.Exec(query, stored.ID, stored.Code, string(data), stored.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert package: %w", err)
	}

	return stored, nil
}

// GetPackages returns packages in insertion order. A non-positive limit
// returns every package from offset on.
func (s *SQLiteDB) GetPackages(limit, offset int) ([]StoredPackage, error) {
	if limit <= 0 {
		limit = -1
	}

	query := `
	SELECT id, code, data, created_at
	FROM packages
	ORDER BY seq ASC
	LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []StoredPackage
	for rows.Next() {
		var p StoredPackage
		var data string

		// go-sqlite3 decodes DATETIME columns into time.Time
		if err := rows.Scan(&p.ID, &p.Code, &data, &p.CreatedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(data), &p.Data); err != nil {
			return nil, fmt.Errorf("package %s: failed to decode data: %w", p.ID, err)
		}

		packages = append(packages, p)
	}

	return packages, rows.Err()
}

func (s *SQLiteDB) CountPackages() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM packages").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
