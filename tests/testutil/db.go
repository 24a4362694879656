package testutil

import (
	"testing"

	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
// Every test gets its own database, so no cleanup between tests is needed.
func SetupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory test database")

	err = db.AutoMigrate(
		&domain.PrintOrder{},
		&domain.Estimate{},
		&domain.ArtworkFile{},
		&domain.AuditLog{},
	)
	require.NoError(t, err, "Failed to migrate test schema")

	return db
}
