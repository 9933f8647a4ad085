package seed_test

import (
	"fmt"
	"testing"

	"tripstay/constants"
	"tripstay/models"
	"tripstay/seed"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}))

	return db
}

func TestSeedRun(t *testing.T) {
	db := setupTestDB(t)

	opts := seed.Options{Users: 10, Listings: 8, Bookings: 15, Reviews: 12}
	require.NoError(t, seed.Run(db, opts))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(10), users)

	var listings []models.Listing
	require.NoError(t, db.Find(&listings).Error)
	assert.Len(t, listings, 8)

	var bookings []models.Booking
	require.NoError(t, db.Find(&bookings).Error)
	assert.Len(t, bookings, 15)

	listingByID := make(map[string]models.Listing)
	for _, l := range listings {
		listingByID[l.ID] = l
	}

	for _, b := range bookings {
		listing := listingByID[b.ListingID]

		// Khách không phải là chủ nhà của chính listing đó
		assert.NotEqual(t, listing.HostID, b.UserID)

		// Tổng giá là giá trị dẫn xuất từ số đêm và giá mỗi đêm
		assert.Equal(t, float64(b.DurationDays())*listing.PricePerNight, b.TotalPrice)
		assert.True(t, b.DurationDays() >= 1 && b.DurationDays() <= 14)
		assert.True(t, constants.IsValidBookingStatus(b.Status))
	}

	var reviews []models.Review
	require.NoError(t, db.Find(&reviews).Error)

	// Trùng cặp (listing, user) bị bỏ qua nên số review có thể ít hơn yêu cầu
	assert.LessOrEqual(t, len(reviews), 12)
	assert.NotEmpty(t, reviews)

	seen := make(map[string]bool)
	for _, r := range reviews {
		key := fmt.Sprintf("%s/%d", r.ListingID, r.UserID)
		assert.False(t, seen[key])
		seen[key] = true
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}

func TestSeedClear(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, seed.Run(db, seed.Options{Users: 5, Listings: 3, Bookings: 4, Reviews: 3}))
	require.NoError(t, seed.Run(db, seed.Options{Users: 5, Listings: 3, Bookings: 4, Reviews: 3, Clear: true}))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(5), users)
}
