package services

import (
	"fmt"
	"time"

	"tripstay/builders"
	"tripstay/constants"
	"tripstay/dto"
	"tripstay/errors"
	"tripstay/models"
	"tripstay/services/logger"
	"tripstay/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService xử lý toàn bộ vòng đời đặt chỗ theo pipeline
// validate -> tính giá -> lưu. Pipeline này chạy giống nhau cho cả tạo
// mới lẫn cập nhật, không có hook ngầm trên save.
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewBookingService(db *gorm.DB, l logger.Logger) *BookingService {
	return &BookingService{db: db, logger: l}
}

// Validate kiểm tra ngày ở và sức chứa của booking với listing tương ứng
func (s *BookingService) Validate(listing *models.Listing, guests int, checkIn, checkOut time.Time) error {
	return validator.ValidateBooking(listing, guests, checkIn, checkOut)
}

// ComputeTotalPrice tính tổng giá = số đêm ở x giá mỗi đêm của listing.
// Kỳ ở luôn là số ngày nguyên, không hỗ trợ ở lẻ ngày.
func (s *BookingService) ComputeTotalPrice(listing *models.Listing, checkIn, checkOut time.Time) float64 {
	numDays := int(checkOut.Sub(checkIn).Hours() / 24)
	return float64(numDays) * listing.PricePerNight
}

// Create tạo booking mới. Các booking trùng khoảng ngày trên cùng một
// listing vẫn được chấp nhận: tầng này không chống double-booking.
func (s *BookingService) Create(req *dto.CreateBookingRequest) (*models.Booking, error) {
	var listing models.Listing
	if err := s.db.First(&listing, "id = ?", req.PropertyID).Error; err != nil {
		return nil, errors.NewReferenceError("property_id", "Invalid property ID.")
	}

	var user models.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		return nil, errors.NewReferenceError("user_id", "Invalid user ID.")
	}

	checkIn, err := validator.ParseDate("check_in_date", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := validator.ParseDate("check_out_date", req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	guests := req.Guests
	if guests == 0 {
		guests = 1
	}

	if err := s.Validate(&listing, guests, checkIn, checkOut); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constants.BookingStatusPending
	}
	if !constants.IsValidBookingStatus(status) {
		return nil, errors.NewValidationError("status", fmt.Sprintf("Invalid status: %s.", status))
	}

	booking := builders.NewBookingBuilder().
		WithListing(listing.ID).
		WithUser(user.ID).
		WithDates(checkIn, checkOut).
		WithGuests(guests).
		WithStatus(status).
		WithTotalPrice(s.ComputeTotalPrice(&listing, checkIn, checkOut)).
		Build()

	if err := s.db.Create(booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not create booking.", err)
	}

	s.logger.Info("Đã tạo booking %s cho listing %s, tổng giá %.2f", booking.ID, listing.ID, booking.TotalPrice)
	booking.Listing = listing
	booking.User = user
	return booking, nil
}

// Update cập nhật booking. Mọi thay đổi về ngày ở hoặc listing đều kích
// hoạt tính lại tổng giá trước khi lưu; tổng giá không bao giờ nhận từ
// caller.
func (s *BookingService) Update(id string, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Listing").Preload("User").First(&booking, "id = ?", id).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found.", err)
	}

	listing := booking.Listing
	if req.PropertyID != nil && *req.PropertyID != booking.ListingID {
		// Query vào struct mới: struct cũ đã có primary key nên gorm sẽ
		// thêm điều kiện id cũ vào câu truy vấn
		var newListing models.Listing
		if err := s.db.First(&newListing, "id = ?", *req.PropertyID).Error; err != nil {
			return nil, errors.NewReferenceError("property_id", "Invalid property ID.")
		}
		listing = newListing
		booking.ListingID = newListing.ID
	}

	if req.CheckInDate != nil {
		checkIn, err := validator.ParseDate("check_in_date", *req.CheckInDate)
		if err != nil {
			return nil, err
		}
		booking.CheckInDate = checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := validator.ParseDate("check_out_date", *req.CheckOutDate)
		if err != nil {
			return nil, err
		}
		booking.CheckOutDate = checkOut
	}
	if req.Guests != nil {
		booking.Guests = *req.Guests
	}

	if err := s.Validate(&listing, booking.Guests, booking.CheckInDate, booking.CheckOutDate); err != nil {
		return nil, err
	}
	booking.TotalPrice = s.ComputeTotalPrice(&listing, booking.CheckInDate, booking.CheckOutDate)

	// Omit để gorm không ghi đè ListingID từ association cũ đã preload
	if err := s.db.Omit(clause.Associations).Save(&booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not update booking.", err)
	}

	booking.Listing = listing
	return &booking, nil
}

// ChangeStatus đổi trạng thái booking. Đây là điểm duy nhất đổi trạng
// thái: chỉ kiểm tra giá trị thuộc enum, tính hợp lệ của bước chuyển
// (pending -> confirmed -> completed) do tầng API bên ngoài quyết định.
func (s *BookingService) ChangeStatus(id string, status string) (*models.Booking, error) {
	if !constants.IsValidBookingStatus(status) {
		return nil, errors.NewValidationError("status", fmt.Sprintf("Invalid status: %s.", status))
	}

	var booking models.Booking
	if err := s.db.Preload("Listing").Preload("User").First(&booking, "id = ?", id).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found.", err)
	}

	booking.Status = status
	if err := s.db.Omit(clause.Associations).Save(&booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not update booking status.", err)
	}

	return &booking, nil
}

// GetByID lấy booking kèm listing và user
func (s *BookingService) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Listing").Preload("Listing.Host").Preload("User").First(&booking, "id = ?", id).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found.", err)
	}
	return &booking, nil
}

// List lấy các booking, lọc theo user nếu userID khác 0
func (s *BookingService) List(userID uint) ([]models.Booking, error) {
	tx := s.db.Preload("Listing").Preload("Listing.Host").Preload("User").Order("created_at DESC")
	if userID != 0 {
		tx = tx.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := tx.Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list bookings.", err)
	}
	return bookings, nil
}

// Delete xóa booking theo id
func (s *BookingService) Delete(id string) error {
	tx := s.db.Delete(&models.Booking{}, "id = ?", id)
	if tx.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not delete booking.", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found.", nil)
	}
	return nil
}

// CompleteExpired chuyển các booking đã xác nhận có ngày trả phòng đã
// qua sang completed, trả về số lượng đã cập nhật. Được gọi từ cron job.
func (s *BookingService) CompleteExpired(now time.Time) (int64, error) {
	tx := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_out_date < ?", constants.BookingStatusConfirmed, now.Truncate(24*time.Hour)).
		Update("status", constants.BookingStatusCompleted)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
