package dto

import "time"

// CreateBookingRequest nhận listing và user qua ID thô. Ngày dùng định
// dạng 2006-01-02. Tổng giá không nằm trong request: server tự tính.
type CreateBookingRequest struct {
	PropertyID   string `json:"property_id" validate:"required"`
	UserID       uint   `json:"user_id" validate:"required"`
	CheckInDate  string `json:"checkInDate" validate:"required"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
	Guests       int    `json:"guests"`
	Status       string `json:"status"`
}

type UpdateBookingRequest struct {
	PropertyID   *string `json:"property_id"`
	CheckInDate  *string `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
	Guests       *int    `json:"guests"`
}

// UpdateBookingStatusRequest là DTO cho request cập nhật trạng thái booking
type UpdateBookingStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type BookingResponse struct {
	ID           string                 `json:"id"`
	Property     ListingSummaryResponse `json:"property"`
	User         UserInfo               `json:"user"`
	CheckInDate  string                 `json:"checkInDate"`
	CheckOutDate string                 `json:"checkOutDate"`
	Guests       int                    `json:"guests"`
	TotalPrice   float64                `json:"totalPrice"` // chỉ đọc, server tính
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
	DurationDays int                    `json:"durationDays"` // check-out trừ check-in theo ngày
}
