package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"tripstay/constants"
	"tripstay/dto"
	"tripstay/models"
	"tripstay/services"
	"tripstay/services/logger"
	"tripstay/validator"

	"gorm.io/gorm"
)

// Options điều khiển số lượng bản ghi được sinh ra
type Options struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

var propertyTypes = []string{
	"Cozy Apartment",
	"Modern Loft",
	"Beachfront Villa",
	"Mountain Cabin",
	"City Studio",
	"Country House",
	"Penthouse Suite",
	"Garden Cottage",
}

var locations = []string{
	"Lagos",
	"Nairobi",
	"Cape Town",
	"Cairo",
	"Accra",
	"Kigali",
	"Marrakech",
	"Zanzibar",
	"Addis Ababa",
	"Dakar",
}

var amenityPool = []string{
	"wifi", "kitchen", "parking", "pool", "air conditioning",
	"washer", "tv", "workspace", "balcony", "gym",
}

var commentSamples = []string{
	"Amazing stay, would definitely come back!",
	"The host was very welcoming and the place was spotless.",
	"Great location, close to everything we wanted to see.",
	"Comfortable beds and a beautiful view.",
	"Decent place but the wifi was a bit slow.",
	"Exceeded our expectations in every way.",
	"Good value for the price.",
	"The photos do not do this place justice, it is even better.",
}

// randomRating chọn điểm 1..5 theo trọng số nghiêng về điểm cao
func randomRating(r *rand.Rand) int {
	weights := []int{5, 10, 15, 35, 35}
	total := 0
	for _, w := range weights {
		total += w
	}
	pick := r.Intn(total)
	for i, w := range weights {
		if pick < w {
			return i + 1
		}
		pick -= w
	}
	return 5
}

func randomAmenities(r *rand.Rand) []string {
	n := 2 + r.Intn(4)
	picked := r.Perm(len(amenityPool))[:n]
	out := make([]string, 0, n)
	for _, i := range picked {
		out = append(out, amenityPool[i])
	}
	return out
}

// Run sinh dữ liệu mẫu qua tầng service nên mọi ràng buộc về giá và
// tính duy nhất của review vẫn được áp dụng
func Run(db *gorm.DB, opts Options) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	lg := logger.NewDefaultLogger(logger.InfoLevel)

	listingService := services.NewListingService(db, lg)
	bookingService := services.NewBookingService(db, lg)
	reviewService := services.NewReviewService(db, lg)

	if opts.Clear {
		if err := clear(db); err != nil {
			return err
		}
	}

	users, err := seedUsers(db, opts.Users)
	if err != nil {
		return err
	}

	listings, err := seedListings(listingService, users, opts.Listings, r)
	if err != nil {
		return err
	}

	if err := seedBookings(bookingService, users, listings, opts.Bookings, r); err != nil {
		return err
	}

	if err := seedReviews(reviewService, users, listings, opts.Reviews, r); err != nil {
		return err
	}

	log.Printf("Seed hoàn tất: %d users, %d listings, %d bookings, %d reviews",
		opts.Users, opts.Listings, opts.Bookings, opts.Reviews)
	return nil
}

func clear(db *gorm.DB) error {
	// Xóa theo thứ tự phụ thuộc khóa ngoại
	for _, model := range []interface{}{&models.Review{}, &models.Booking{}, &models.Listing{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("không thể xóa dữ liệu cũ: %w", err)
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, count int) ([]models.User, error) {
	hashed, err := services.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		role := constants.RoleGuest
		if i%3 == 0 {
			role = constants.RoleHost
		}
		user := models.User{
			Username:  fmt.Sprintf("traveler%02d", i+1),
			Email:     fmt.Sprintf("traveler%02d@example.com", i+1),
			Password:  hashed,
			FirstName: fmt.Sprintf("User%02d", i+1),
			LastName:  "Demo",
			Role:      role,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("không thể tạo user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func hosts(users []models.User) []models.User {
	var out []models.User
	for _, u := range users {
		if u.Role == constants.RoleHost {
			out = append(out, u)
		}
	}
	if len(out) == 0 {
		out = users
	}
	return out
}

func seedListings(svc *services.ListingService, users []models.User, count int, r *rand.Rand) ([]models.Listing, error) {
	hostUsers := hosts(users)

	listings := make([]models.Listing, 0, count)
	for i := 0; i < count; i++ {
		host := hostUsers[r.Intn(len(hostUsers))]
		propertyType := propertyTypes[r.Intn(len(propertyTypes))]
		location := locations[r.Intn(len(locations))]
		available := r.Intn(100) < 75

		req := &dto.CreateListingRequest{
			HostID:        host.ID,
			Name:          fmt.Sprintf("%s in %s", propertyType, location),
			Description:   fmt.Sprintf("A lovely %s located in the heart of %s.", propertyType, location),
			Location:      location,
			PricePerNight: float64(30 + r.Intn(270)),
			Bedrooms:      1 + r.Intn(4),
			Bathrooms:     1 + r.Intn(3),
			MaxGuests:     2 + r.Intn(7),
			Amenities:     randomAmenities(r),
			IsAvailable:   &available,
		}

		listing, err := svc.Create(req)
		if err != nil {
			return nil, fmt.Errorf("không thể tạo listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	return listings, nil
}

// pickGuest chọn một user khác host của listing
func pickGuest(users []models.User, hostID uint, r *rand.Rand) (models.User, bool) {
	for attempts := 0; attempts < 20; attempts++ {
		u := users[r.Intn(len(users))]
		if u.ID != hostID {
			return u, true
		}
	}
	return models.User{}, false
}

func seedBookings(svc *services.BookingService, users []models.User, listings []models.Listing, count int, r *rand.Rand) error {
	statuses := []string{
		constants.BookingStatusPending,
		constants.BookingStatusConfirmed,
		constants.BookingStatusCanceled,
		constants.BookingStatusCompleted,
	}

	for i := 0; i < count; i++ {
		listing := listings[r.Intn(len(listings))]
		guest, ok := pickGuest(users, listing.HostID, r)
		if !ok {
			continue
		}

		checkIn := time.Now().AddDate(0, 0, -30+r.Intn(90))
		duration := 1 + r.Intn(14)
		checkOut := checkIn.AddDate(0, 0, duration)

		req := &dto.CreateBookingRequest{
			PropertyID:   listing.ID,
			UserID:       guest.ID,
			CheckInDate:  checkIn.Format(validator.DateLayout),
			CheckOutDate: checkOut.Format(validator.DateLayout),
			Guests:       1 + r.Intn(listing.MaxGuests),
			Status:       statuses[r.Intn(len(statuses))],
		}

		if _, err := svc.Create(req); err != nil {
			return fmt.Errorf("không thể tạo booking: %w", err)
		}
	}
	return nil
}

func seedReviews(svc *services.ReviewService, users []models.User, listings []models.Listing, count int, r *rand.Rand) error {
	for i := 0; i < count; i++ {
		listing := listings[r.Intn(len(listings))]
		guest, ok := pickGuest(users, listing.HostID, r)
		if !ok {
			continue
		}

		req := &dto.CreateReviewRequest{
			PropertyID: listing.ID,
			UserID:     guest.ID,
			Rating:     randomRating(r),
			Comment:    commentSamples[r.Intn(len(commentSamples))],
		}

		// Mỗi cặp (listing, user) chỉ được một review, bỏ qua trùng lặp
		if _, err := svc.Create(req); err != nil {
			continue
		}
	}
	return nil
}
