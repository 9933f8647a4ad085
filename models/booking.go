package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripstay/constants"
)

// Booking đại diện cho một lượt đặt chỗ của khách. Ràng buộc
// check_out_date > check_in_date được giữ ở cả tầng validate lẫn tầng dữ liệu.
// TotalPrice là giá trị dẫn xuất: luôn được tính lại từ ngày ở và giá của
// listing, không bao giờ nhận trực tiếp từ caller.
type Booking struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	ListingID    string    `json:"propertyId" gorm:"type:uuid;index;not null"`
	Listing      Listing   `json:"property" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	UserID       uint      `json:"userId" gorm:"not null"`
	User         User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"type:date;not null"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"type:date;not null;check:chk_bookings_dates,check_out_date > check_in_date"`
	Guests       int       `json:"guests" gorm:"default:1"`
	TotalPrice   float64   `json:"totalPrice" gorm:"check:total_price >= 0"` // Tổng giá cho cả kỳ ở
	Status       string    `json:"status" gorm:"size:20;default:pending"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate gán UUID và trạng thái mặc định cho booking trước khi lưu
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = constants.BookingStatusPending
	}
	return nil
}

// DurationDays tính số đêm ở (check-out trừ check-in theo ngày)
func (b *Booking) DurationDays() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
