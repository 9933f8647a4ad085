package services_test

import (
	"fmt"
	"testing"

	"tripstay/dto"
	"tripstay/errors"
	"tripstay/models"
	"tripstay/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListingAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())

	host := createTestUser(t, db, "host01")

	listing, err := svc.Create(&dto.CreateListingRequest{
		HostID:        host.ID,
		Name:          "Garden Cottage in Kigali",
		Location:      "Kigali",
		PricePerNight: 80.00,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, 1, listing.Bedrooms)
	assert.Equal(t, 1, listing.Bathrooms)
	assert.Equal(t, 2, listing.MaxGuests)
	assert.True(t, listing.IsAvailable)
	assert.Equal(t, host.ID, listing.Host.ID)
}

func TestCreateListingRejectsUnknownHost(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())

	_, err := svc.Create(&dto.CreateListingRequest{
		HostID:        99999,
		Name:          "Ghost House",
		Location:      "Nowhere",
		PricePerNight: 80.00,
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeReference, appErr.Code)
	assert.Equal(t, "Invalid host ID.", appErr.Message)
}

func TestCreateListingRejectsNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())

	host := createTestUser(t, db, "host01")

	_, err := svc.Create(&dto.CreateListingRequest{
		HostID:        host.ID,
		Name:          "Bargain Basement",
		Location:      "Accra",
		PricePerNight: -10.00,
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "price_per_night", appErr.Field)
	assert.Equal(t, "Price per night must not be negative.", appErr.Message)
}

func TestCreateListingAcceptsZeroPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())

	host := createTestUser(t, db, "host01")

	listing, err := svc.Create(&dto.CreateListingRequest{
		HostID:        host.ID,
		Name:          "Free Stay Promo",
		Location:      "Dakar",
		PricePerNight: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.00, listing.PricePerNight)
}

func TestUpdateListing(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())

	host := createTestUser(t, db, "host01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	newName := "Renovated Apartment in Lagos"
	available := false
	updated, err := svc.Update(listing.ID, &dto.UpdateListingRequest{
		Name:        &newName,
		IsAvailable: &available,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.False(t, updated.IsAvailable)

	// Trường không gửi lên giữ nguyên giá trị cũ
	assert.Equal(t, 100.00, updated.PricePerNight)
	assert.Equal(t, "Lagos", updated.Location)
}

func TestAverageRatingAndTotalReviews(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())
	reviewSvc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	// Chưa có review: điểm trung bình bằng 0
	avg, err := svc.AverageRating(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.00, avg)

	for i, rating := range []int{5, 4} {
		guest := createTestUser(t, db, fmt.Sprintf("guest%02d", i+1))
		_, err := reviewSvc.Create(&dto.CreateReviewRequest{
			PropertyID: listing.ID,
			UserID:     guest.ID,
			Rating:     rating,
			Comment:    "Nice place",
		})
		require.NoError(t, err)
	}

	avg, err = svc.AverageRating(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)

	total, err := svc.TotalReviews(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestDeleteListingCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())
	bookingSvc := services.NewBookingService(db, testLogger())
	reviewSvc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	_, err := bookingSvc.Create(&dto.CreateBookingRequest{
		PropertyID:   listing.ID,
		UserID:       guest.ID,
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
		Guests:       1,
	})
	require.NoError(t, err)

	_, err = reviewSvc.Create(&dto.CreateReviewRequest{
		PropertyID: listing.ID,
		UserID:     guest.ID,
		Rating:     5,
		Comment:    "Great",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(listing.ID))

	var bookings int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookings).Error)
	assert.Equal(t, int64(0), bookings)

	var reviews int64
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Equal(t, int64(0), reviews)
}

func TestSearchByLocation(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewListingService(db, testLogger())

	host := createTestUser(t, db, "host01")

	locations := []string{"Lagos", "Nairobi", "Cape Town"}
	for _, loc := range locations {
		listing := models.Listing{
			HostID:        host.ID,
			Name:          "Stay in " + loc,
			Location:      loc,
			PricePerNight: 100.00,
			Bedrooms:      1,
			Bathrooms:     1,
			MaxGuests:     2,
			IsAvailable:   true,
		}
		require.NoError(t, db.Create(&listing).Error)
	}

	// Khớp chuỗi con, không phân biệt hoa thường
	results, err := svc.SearchByLocation("nairobi")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Nairobi", results[0].Location)

	// Gõ sai nhẹ vẫn ra địa điểm gần nhất
	results, err = svc.SearchByLocation("niarobi")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Nairobi", results[0].Location)

	// Chuỗi quá khác thì không trả kết quả
	results, err = svc.SearchByLocation("zzzzzzzzzz")
	require.NoError(t, err)
	assert.Empty(t, results)

	// Truy vấn rỗng trả về toàn bộ
	results, err = svc.SearchByLocation("")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
