package dto

import "time"

// CreateListingRequest nhận host qua ID thô, không nhận object lồng nhau
type CreateListingRequest struct {
	HostID        uint     `json:"host_id" validate:"required"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	MaxGuests     int      `json:"maxGuests"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"isAvailable"`
}

type UpdateListingRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PricePerNight *float64 `json:"pricePerNight"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	MaxGuests     *int     `json:"maxGuests"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"isAvailable"`
}

type ListingResponse struct {
	ID            string           `json:"id"`
	Host          UserInfo         `json:"host"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	PricePerNight float64          `json:"pricePerNight"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	MaxGuests     int              `json:"maxGuests"`
	Amenities     []string         `json:"amenities"`
	IsAvailable   bool             `json:"isAvailable"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	AverageRating float64          `json:"averageRating"`
	TotalReviews  int64            `json:"totalReviews"`
	Reviews       []ReviewResponse `json:"reviews,omitempty"`
}

// ListingSummaryResponse là bản rút gọn của listing cho danh sách và
// các response lồng nhau
type ListingSummaryResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	MaxGuests     int     `json:"maxGuests"`
	IsAvailable   bool    `json:"isAvailable"`
	HostName      string  `json:"hostName"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}
