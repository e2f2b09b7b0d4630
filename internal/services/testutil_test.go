package services

import (
	"testing"
	"time"

	"github.com/fidias-dev/technician-agenda/internal/config"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/fidias-dev/technician-agenda/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Client{},
		&models.Direction{},
		&models.JobCategory{},
		&models.JobSubcategory{},
		&models.Technician{},
		&models.Work{},
		&models.WorkFile{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret-key",
		JWTIssuer:        "technician-agenda",
		JWTAudience:      "technician-agenda-ui",
		JWTExpiry:        time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func setupTestStorage(t *testing.T) *storage.Local {
	t.Helper()

	store, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to prepare test storage: %v", err)
	}
	return store
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		FullName: "Test " + username,
		Active:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}

func createTestClient(t *testing.T, db *gorm.DB, userID uint, name string) *models.Client {
	t.Helper()

	client := models.Client{
		Name:    name,
		Surname: "Soto",
		Phone:   "+56911112222",
		Email:   name + "@clientes.cl",
		Active:  true,
		UserID:  userID,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return &client
}

func createTestDirection(t *testing.T, db *gorm.DB, clientID uint) *models.Direction {
	t.Helper()

	direction := models.Direction{
		Street:   "Av. Providencia 1234",
		Region:   7,
		Comuna:   "Providencia",
		ClientID: clientID,
	}
	if err := db.Create(&direction).Error; err != nil {
		t.Fatalf("Failed to create test direction: %v", err)
	}
	return &direction
}

func createTestCatalog(t *testing.T, db *gorm.DB) (*models.JobCategory, *models.JobSubcategory) {
	t.Helper()

	category := models.JobCategory{
		Name:         "Electricidad",
		Icon:         "⚡",
		DisplayOrder: 1,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	subcategory := models.JobSubcategory{
		Name:          "Instalación de enchufes",
		DisplayOrder:  1,
		JobCategoryID: category.ID,
	}
	if err := db.Create(&subcategory).Error; err != nil {
		t.Fatalf("Failed to create test subcategory: %v", err)
	}
	return &category, &subcategory
}

func createTestTechnician(t *testing.T, db *gorm.DB, userID uint, documentID string) *models.Technician {
	t.Helper()

	technician := models.Technician{
		Name:       "Pedro",
		Surname:    "Rojas",
		DocumentID: documentID,
		Region:     7,
		Comuna:     "Santiago",
		UserID:     userID,
	}
	if err := db.Create(&technician).Error; err != nil {
		t.Fatalf("Failed to create test technician: %v", err)
	}
	return &technician
}
