package services_test

import (
	"fmt"
	"testing"

	"tripstay/models"
	"tripstay/services/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB tạo DB sqlite in-memory cho test. TranslateError để lỗi
// unique constraint được ánh xạ về gorm.ErrDuplicatedKey như trên postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// DB in-memory biến mất khi connection đóng nên chỉ giữ một connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}))

	return db
}

func testLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestListing(t *testing.T, db *gorm.DB, hostID uint, price float64, maxGuests int) models.Listing {
	t.Helper()

	listing := models.Listing{
		HostID:        hostID,
		Name:          "Cozy Apartment in Lagos",
		Location:      "Lagos",
		PricePerNight: price,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     maxGuests,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}
