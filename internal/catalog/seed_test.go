package catalog

import (
	"testing"

	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.JobCategory{}, &models.JobSubcategory{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestSeedJobCategories(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, SeedJobCategories(db))

	var categories []models.JobCategory
	require.NoError(t, db.Preload("Subcategories").Order("display_order").Find(&categories).Error)
	require.Len(t, categories, 17)

	for _, c := range categories {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Subcategories, "category %q has no subcategories", c.Name)
	}
}

func TestSeedJobCategoriesIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, SeedJobCategories(db))

	var before int64
	db.Model(&models.JobCategory{}).Count(&before)

	// Running the seed again must not duplicate anything
	require.NoError(t, SeedJobCategories(db))

	var after int64
	db.Model(&models.JobCategory{}).Count(&after)
	assert.Equal(t, before, after)

	var subcategories int64
	db.Model(&models.JobSubcategory{}).Count(&subcategories)
	assert.Greater(t, subcategories, before)
}
