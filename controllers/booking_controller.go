package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tripstay/config"
	"tripstay/dto"
	"tripstay/models"
	"tripstay/response"
	"tripstay/services"
	"tripstay/services/logger"
	"tripstay/utils"
	"tripstay/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const bookingsCacheKey = "bookings:all"

type BookingController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Melody   *melody.Melody
	Service  *services.BookingService
	Listings *services.ListingService
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) BookingController {
	lg := logger.NewDefaultLogger(logger.InfoLevel)
	return BookingController{
		DB:       db,
		Redis:    redisCli,
		Melody:   m,
		Service:  services.NewBookingService(db, lg),
		Listings: services.NewListingService(db, lg),
	}
}

func (bc BookingController) convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           booking.ID,
		Property:     bc.convertToPropertySummary(booking.Listing),
		User:         convertToUserInfo(booking.User),
		CheckInDate:  booking.CheckInDate.Format(validator.DateLayout),
		CheckOutDate: booking.CheckOutDate.Format(validator.DateLayout),
		Guests:       booking.Guests,
		TotalPrice:   booking.TotalPrice,
		DurationDays: booking.DurationDays(),
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

func (bc BookingController) convertToPropertySummary(listing models.Listing) dto.ListingSummaryResponse {
	avg, _ := bc.Listings.AverageRating(listing.ID)
	total, _ := bc.Listings.TotalReviews(listing.ID)
	return dto.ListingSummaryResponse{
		ID:            listing.ID,
		Name:          listing.Name,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight,
		Bedrooms:      listing.Bedrooms,
		Bathrooms:     listing.Bathrooms,
		MaxGuests:     listing.MaxGuests,
		IsAvailable:   listing.IsAvailable,
		HostName:      listing.Host.Username,
		AverageRating: avg,
		TotalReviews:  total,
	}
}

// GetBookings trả về danh sách booking, lọc theo userId nếu có
func (bc BookingController) GetBookings(c *gin.Context) {
	var userID uint
	if raw := c.Query("userId"); raw != "" {
		var parsed uint
		if _, err := fmt.Sscanf(raw, "%d", &parsed); err != nil {
			response.BadRequest(c, "Invalid user ID.")
			return
		}
		userID = parsed
	}

	var responses []dto.BookingResponse

	cacheKey := bookingsCacheKey
	if userID != 0 {
		cacheKey = fmt.Sprintf("bookings:user:%d", userID)
	}

	// Lấy dữ liệu từ Redis
	if err := services.GetFromRedis(config.Ctx, bc.Redis, cacheKey, &responses); err == nil && len(responses) > 0 {
		response.Success(c, responses)
		return
	}

	bookings, err := bc.Service.List(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	for _, booking := range bookings {
		responses = append(responses, bc.convertToBookingResponse(booking))
	}

	if err := services.SetToRedis(config.Ctx, bc.Redis, cacheKey, responses, 5*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
	}

	response.Success(c, responses)
}

func (bc BookingController) GetBookingDetail(c *gin.Context) {
	id := c.Param("id")

	booking, err := bc.Service.GetByID(id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, bc.convertToBookingResponse(*booking))
}

// CreateBooking tạo booking mới, tổng giá luôn do server tính lại
func (bc BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.AppError(c, err)
		return
	}

	booking, err := bc.Service.Create(&req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	utils.LogInfo(fmt.Sprintf("Booking %s created for property %s, total %.2f", booking.ID, booking.ListingID, booking.TotalPrice))

	bc.invalidateBookingCaches(booking.UserID)
	bc.broadcastBooking("booking_created", *booking)

	response.Created(c, bc.convertToBookingResponse(*booking))
}

func (bc BookingController) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	booking, err := bc.Service.Update(id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	bc.invalidateBookingCaches(booking.UserID)

	response.Success(c, bc.convertToBookingResponse(*booking))
}

// ChangeBookingStatus đổi trạng thái booking qua một điểm duy nhất
func (bc BookingController) ChangeBookingStatus(c *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	booking, err := bc.Service.ChangeStatus(req.ID, req.Status)
	if err != nil {
		response.AppError(c, err)
		return
	}

	utils.LogInfo(fmt.Sprintf("Booking %s status changed to %s", booking.ID, booking.Status))

	bc.invalidateBookingCaches(booking.UserID)
	bc.broadcastBooking("booking_status_changed", *booking)

	response.Success(c, bc.convertToBookingResponse(*booking))
}

func (bc BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	booking, err := bc.Service.GetByID(id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	if err := bc.Service.Delete(id); err != nil {
		response.AppError(c, err)
		return
	}

	bc.invalidateBookingCaches(booking.UserID)

	response.Success(c, nil)
}

func (bc BookingController) invalidateBookingCaches(userID uint) {
	keys := []string{bookingsCacheKey}
	if userID != 0 {
		keys = append(keys, fmt.Sprintf("bookings:user:%d", userID))
	}
	_ = services.DeleteFromRedis(config.Ctx, bc.Redis, keys...)
}

// broadcastBooking gửi sự kiện booking tới các client WebSocket
func (bc BookingController) broadcastBooking(event string, booking models.Booking) {
	if bc.Melody == nil {
		return
	}

	payload, err := json.Marshal(gin.H{
		"event":   event,
		"booking": bc.convertToBookingResponse(booking),
	})
	if err != nil {
		log.Printf("Lỗi khi mã hóa sự kiện booking: %v", err)
		return
	}

	if err := bc.Melody.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast sự kiện booking: %v", err)
	}
}
