package dto

import "time"

type CreateReviewRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	UserID     uint   `json:"user_id" validate:"required"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// UpdateReviewRequest chỉ cho phép đổi rating và comment; property_id và
// user_id nếu gửi lên phải trùng giá trị hiện có
type UpdateReviewRequest struct {
	ID         string  `json:"id" binding:"required"`
	Rating     *int    `json:"rating"`
	Comment    *string `json:"comment"`
	PropertyID *string `json:"property_id"`
	UserID     *uint   `json:"user_id"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	User       UserInfo  `json:"user"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
