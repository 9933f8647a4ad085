package builders

import (
	"time"

	"tripstay/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithListing thêm thông tin listing
func (b *BookingBuilder) WithListing(listingID string) *BookingBuilder {
	b.booking.ListingID = listingID
	return b
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithDates thêm ngày nhận và trả phòng
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuests thêm số khách
func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.booking.Guests = guests
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithTotalPrice thêm tổng giá đã được tính từ ngày ở và giá listing
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build trả về booking đã hoàn thiện
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
