package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Listing đại diện cho một chỗ ở cho thuê. ID là UUID, gán một lần khi tạo
// và không bao giờ tái sử dụng.
type Listing struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	HostID        uint           `json:"hostId" gorm:"not null"` // ID của chủ nhà
	Host          User           `json:"host" gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
	Name          string         `json:"name" gorm:"size:200;not null"`     // Tên chỗ ở
	Description   string         `json:"description"`                       // Mô tả chi tiết
	Location      string         `json:"location" gorm:"size:200;not null"` // Địa chỉ
	PricePerNight float64        `json:"pricePerNight" gorm:"check:price_per_night >= 0"` // Giá mỗi đêm
	Bedrooms      int            `json:"bedrooms" gorm:"default:1"`
	Bathrooms     int            `json:"bathrooms" gorm:"default:1"`
	MaxGuests     int            `json:"maxGuests" gorm:"default:2"`   // Số khách tối đa
	Amenities     pq.StringArray `json:"amenities" gorm:"type:text[]"` // Tiện nghi
	IsAvailable   bool           `json:"isAvailable" gorm:"default:true"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings      []Booking      `json:"bookings,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate gán UUID cho listing trước khi lưu
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
