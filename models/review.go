package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review đại diện cho đánh giá của một khách với một chỗ ở. Mỗi cặp
// (listing, user) chỉ có tối đa một review; unique index ở tầng DB là
// nguồn đảm bảo cuối cùng khi có ghi đồng thời.
type Review struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	ListingID string    `json:"propertyId" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_listing_user"`
	Listing   Listing   `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_reviews_listing_user"`
	User      User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Rating    int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"` // Số sao từ 1 đến 5
	Comment   string    `json:"comment"`                                         // Bình luận của người dùng
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate gán UUID cho review trước khi lưu
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
