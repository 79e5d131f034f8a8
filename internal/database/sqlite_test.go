package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstent/fittracker-go/internal/parser"
)

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "fittracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddAndGetPackages(t *testing.T) {
	db := newTestDB(t)

	for _, pkg := range parser.DemoPackages() {
		stored, err := db.AddPackage(pkg)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.ID)
		assert.False(t, stored.CreatedAt.IsZero())
	}

	packages, err := db.GetPackages(0, 0)
	require.NoError(t, err)
	require.Len(t, packages, 3)

	for i, pkg := range parser.DemoPackages() {
		assert.Equal(t, pkg, packages[i].Package())
	}

	count, err := db.CountPackages()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetPackagesPagination(t *testing.T) {
	db := newTestDB(t)

	for _, pkg := range parser.DemoPackages() {
		_, err := db.AddPackage(pkg)
		require.NoError(t, err)
	}

	page, err := db.GetPackages(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "RUN", page[0].Code)

	rest, err := db.GetPackages(0, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "WLK", rest[0].Code)
}

func TestAddPackageKeepsUnknownCodes(t *testing.T) {
	db := newTestDB(t)

	_, err := db.AddPackage(parser.Package{Code: "BIK", Data: []float64{1, 2}})
	require.NoError(t, err)

	packages, err := db.GetPackages(10, 0)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, parser.Package{Code: "BIK", Data: []float64{1, 2}}, packages[0].Package())
}

func TestEmptyStore(t *testing.T) {
	db := newTestDB(t)

	packages, err := db.GetPackages(10, 0)
	require.NoError(t, err)
	assert.Empty(t, packages)

	count, err := db.CountPackages()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetPackagesReadsBackCreatedAt(t *testing.T) {
	db := newTestDB(t)

	stored, err := db.AddPackage(parser.Package{Code: "RUN", Data: []float64{15000, 1, 75}})
	require.NoError(t, err)

	packages, err := db.GetPackages(0, 0)
	require.NoError(t, err)
	require.Len(t, packages, 1)

	assert.Equal(t, stored.ID, packages[0].ID)
	assert.Equal(t, parser.Package{Code: "RUN", Data: []float64{15000, 1, 75}}, packages[0].Package())
	assert.True(t, stored.CreatedAt.Equal(packages[0].CreatedAt),
		"created_at: stored %v, read %v", stored.CreatedAt, packages[0].CreatedAt)
}
