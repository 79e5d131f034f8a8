// internal/database/models.go
package database

import (
	"time"

	"github.com/sstent/fittracker-go/internal/parser"
)

// StoredPackage is a raw sensor package kept for later reports.
type StoredPackage struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Data      []float64 `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// Package returns the reading without storage metadata.
func (p StoredPackage) Package() parser.Package {
	return parser.Package{Code: p.Code, Data: p.Data}
}

// Database interface
type Database interface {
	AddPackage(pkg parser.Package) (*StoredPackage, error)
	GetPackages(limit, offset int) ([]StoredPackage, error)
	CountPackages() (int, error)

	// Close connection
	Close() error
}
