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

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	review, err := svc.Create(&dto.CreateReviewRequest{
		PropertyID: listing.ID,
		UserID:     guest.ID,
		Rating:     5,
		Comment:    "Amazing stay!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, guest.ID, review.User.ID)
}

func TestCreateReviewRejectsDuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	_, err := svc.Create(&dto.CreateReviewRequest{
		PropertyID: listing.ID,
		UserID:     guest.ID,
		Rating:     5,
		Comment:    "First review",
	})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateReviewRequest{
		PropertyID: listing.ID,
		UserID:     guest.ID,
		Rating:     3,
		Comment:    "Second attempt",
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeConflict, appErr.Code)
	assert.Equal(t, "You have already reviewed this property.", appErr.Message)
}

func TestReviewUniquenessEnforcedByStorage(t *testing.T) {
	db := setupTestDB(t)

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	// Ghi thẳng vào DB, bỏ qua pre-check của service: unique index vẫn chặn
	first := models.Review{ListingID: listing.ID, UserID: guest.ID, Rating: 5}
	require.NoError(t, db.Create(&first).Error)

	second := models.Review{ListingID: listing.ID, UserID: guest.ID, Rating: 4}
	err := db.Create(&second).Error
	require.Error(t, err)
}

func TestSameUserCanReviewDifferentListings(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	listingA := createTestListing(t, db, host.ID, 100.00, 4)
	listingB := createTestListing(t, db, host.ID, 150.00, 4)

	_, err := svc.Create(&dto.CreateReviewRequest{
		PropertyID: listingA.ID, UserID: guest.ID, Rating: 5,
	})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateReviewRequest{
		PropertyID: listingB.ID, UserID: guest.ID, Rating: 4,
	})
	require.NoError(t, err)
}

func TestReviewRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	for i, rating := range []int{0, 6, -1} {
		guest := createTestUser(t, db, fmt.Sprintf("badguest%02d", i+1))
		_, err := svc.Create(&dto.CreateReviewRequest{
			PropertyID: listing.ID,
			UserID:     guest.ID,
			Rating:     rating,
		})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "rating", appErr.Field)
		assert.Equal(t, "Rating must be between 1 and 5.", appErr.Message)
	}

	for i, rating := range []int{1, 5} {
		guest := createTestUser(t, db, fmt.Sprintf("okguest%02d", i+1))
		_, err := svc.Create(&dto.CreateReviewRequest{
			PropertyID: listing.ID,
			UserID:     guest.ID,
			Rating:     rating,
		})
		require.NoError(t, err)
	}
}

func TestCreateReviewRejectsUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	_, err := svc.Create(&dto.CreateReviewRequest{
		PropertyID: "3f0b7f64-0000-0000-0000-000000000000",
		UserID:     guest.ID,
		Rating:     5,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "property_id", appErr.Field)
	assert.Equal(t, "Invalid property ID.", appErr.Message)

	_, err = svc.Create(&dto.CreateReviewRequest{
		PropertyID: listing.ID,
		UserID:     99999,
		Rating:     5,
	})
	require.Error(t, err)
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "user_id", appErr.Field)
}

func TestUpdateReviewIdentityImmutable(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	other := createTestUser(t, db, "guest02")
	listingA := createTestListing(t, db, host.ID, 100.00, 4)
	listingB := createTestListing(t, db, host.ID, 150.00, 4)

	review, err := svc.Create(&dto.CreateReviewRequest{
		PropertyID: listingA.ID,
		UserID:     guest.ID,
		Rating:     4,
		Comment:    "Good",
	})
	require.NoError(t, err)

	_, err = svc.Update(&dto.UpdateReviewRequest{
		ID:         review.ID,
		PropertyID: &listingB.ID,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Property of a review cannot be changed.", appErr.Message)

	_, err = svc.Update(&dto.UpdateReviewRequest{
		ID:     review.ID,
		UserID: &other.ID,
	})
	require.Error(t, err)
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "User of a review cannot be changed.", appErr.Message)

	// Gửi lại đúng giá trị hiện có thì không sao
	newRating := 2
	newComment := "Changed my mind"
	updated, err := svc.Update(&dto.UpdateReviewRequest{
		ID:         review.ID,
		PropertyID: &listingA.ID,
		UserID:     &guest.ID,
		Rating:     &newRating,
		Comment:    &newComment,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Changed my mind", updated.Comment)
}

func TestListReviewsByListing(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guestA := createTestUser(t, db, "guest01")
	guestB := createTestUser(t, db, "guest02")
	listingA := createTestListing(t, db, host.ID, 100.00, 4)
	listingB := createTestListing(t, db, host.ID, 150.00, 4)

	for _, pair := range []struct {
		listingID string
		userID    uint
	}{
		{listingA.ID, guestA.ID},
		{listingA.ID, guestB.ID},
		{listingB.ID, guestA.ID},
	} {
		_, err := svc.Create(&dto.CreateReviewRequest{
			PropertyID: pair.listingID,
			UserID:     pair.userID,
			Rating:     4,
		})
		require.NoError(t, err)
	}

	reviews, err := svc.ListByListing(listingA.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	all, err := svc.ListByListing("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteReview(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReviewService(db, testLogger())

	host := createTestUser(t, db, "host01")
	guest := createTestUser(t, db, "guest01")
	listing := createTestListing(t, db, host.ID, 100.00, 4)

	review, err := svc.Create(&dto.CreateReviewRequest{
		PropertyID: listing.ID,
		UserID:     guest.ID,
		Rating:     5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(review.ID))

	// Xóa xong thì user có thể review lại listing này
	_, err = svc.Create(&dto.CreateReviewRequest{
		PropertyID: listing.ID,
		UserID:     guest.ID,
		Rating:     3,
	})
	require.NoError(t, err)
}
