package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Username  string    `gorm:"unique;not null" json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `gorm:"unique" json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	Role      int       `gorm:"default:0" json:"role"`
	Listings  []Listing `json:"listings,omitempty" gorm:"foreignKey:HostID"` // Các chỗ ở user này làm chủ
	Bookings  []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
}
