package validator

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"tripstay/errors"
	"tripstay/models"

	"github.com/go-playground/validator/v10"
)

// DateLayout là định dạng ngày dùng trên toàn bộ API
const DateLayout = "2006-01-02"

var validate = validator.New()

// ValidateStruct kiểm tra các tag `validate` trên request DTO, trả về
// AppError gắn với trường đầu tiên bị lỗi
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		f := fieldErrs[0]
		return errors.NewValidationError(f.Field(), fmt.Sprintf("Field %s failed validation on %s.", f.Field(), f.Tag()))
	}
	return errors.NewAppError(errors.ErrCodeValidation, "Invalid input.", err)
}

// ValidateListing kiểm tra các bất biến của listing trước khi lưu
func ValidateListing(listing *models.Listing) error {
	if listing.Name == "" {
		return errors.NewValidationError("name", "Name must not be empty.")
	}

	// Đếm theo ký tự, không theo byte: tên có dấu vẫn được đủ 200 ký tự
	if utf8.RuneCountInString(listing.Name) > 200 {
		return errors.NewValidationError("name", "Name must be at most 200 characters.")
	}

	if listing.Location == "" {
		return errors.NewValidationError("location", "Location must not be empty.")
	}

	if utf8.RuneCountInString(listing.Location) > 200 {
		return errors.NewValidationError("location", "Location must be at most 200 characters.")
	}

	if listing.PricePerNight < 0 {
		return errors.NewValidationError("price_per_night", "Price per night must not be negative.")
	}

	if listing.MaxGuests < 1 {
		return errors.NewValidationError("max_guests", "Max guests must be at least 1.")
	}

	if listing.Bedrooms < 1 {
		return errors.NewValidationError("bedrooms", "Bedrooms must be at least 1.")
	}

	if listing.Bathrooms < 1 {
		return errors.NewValidationError("bathrooms", "Bathrooms must be at least 1.")
	}

	return nil
}

// ValidateBookingDates kiểm tra thứ tự ngày nhận / trả phòng
func ValidateBookingDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.NewValidationError("check_out_date", "Check-out date must be after check-in date.")
	}
	return nil
}

// ValidateBooking kiểm tra ngày ở và sức chứa của booking với listing
// tương ứng
func ValidateBooking(listing *models.Listing, guests int, checkIn, checkOut time.Time) error {
	if err := ValidateBookingDates(checkIn, checkOut); err != nil {
		return err
	}

	if guests < 1 {
		return errors.NewValidationError("guests", "Number of guests must be at least 1.")
	}

	if guests > listing.MaxGuests {
		return errors.NewValidationError("guests", fmt.Sprintf("Number of guests exceeds maximum capacity of %d.", listing.MaxGuests))
	}

	return nil
}

// ValidateReview kiểm tra điểm đánh giá
func ValidateReview(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return errors.NewValidationError("rating", "Rating must be between 1 and 5.")
	}
	return nil
}

// ValidateUser kiểm tra thông tin user trước khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Username == "" {
		return errors.NewValidationError("username", "Username must not be empty.")
	}

	if user.Email == "" {
		return errors.NewValidationError("email", "Email must not be empty.")
	}

	if !isValidEmail(user.Email) {
		return errors.NewValidationError("email", "Email is not valid.")
	}

	if len(user.Password) < 6 {
		return errors.NewValidationError("password", "Password must be at least 6 characters.")
	}

	return nil
}

// ParseDate chuyển chuỗi ngày dạng 2006-01-02 thành time.Time
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewValidationError(field, "Invalid date format, expected YYYY-MM-DD.")
	}
	return t, nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
