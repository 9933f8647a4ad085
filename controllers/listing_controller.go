package controllers

import (
	"log"
	"time"

	"tripstay/config"
	"tripstay/dto"
	"tripstay/models"
	"tripstay/response"
	"tripstay/services"
	"tripstay/services/logger"
	"tripstay/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const listingsCacheKey = "listings:all"

type ListingController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.ListingService
}

func NewListingController(db *gorm.DB, redisCli *redis.Client) ListingController {
	return ListingController{
		DB:      db,
		Redis:   redisCli,
		Service: services.NewListingService(db, logger.NewDefaultLogger(logger.InfoLevel)),
	}
}

func (lc ListingController) convertToListingSummary(listing models.Listing) dto.ListingSummaryResponse {
	avg, _ := lc.Service.AverageRating(listing.ID)
	total, _ := lc.Service.TotalReviews(listing.ID)
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

func (lc ListingController) convertToListingResponse(listing models.Listing, includeReviews bool) dto.ListingResponse {
	avg, _ := lc.Service.AverageRating(listing.ID)
	total, _ := lc.Service.TotalReviews(listing.ID)

	resp := dto.ListingResponse{
		ID:            listing.ID,
		Host:          convertToUserInfo(listing.Host),
		Name:          listing.Name,
		Description:   listing.Description,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight,
		Bedrooms:      listing.Bedrooms,
		Bathrooms:     listing.Bathrooms,
		MaxGuests:     listing.MaxGuests,
		Amenities:     listing.Amenities,
		IsAvailable:   listing.IsAvailable,
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
		AverageRating: avg,
		TotalReviews:  total,
	}

	if includeReviews {
		for _, review := range listing.Reviews {
			resp.Reviews = append(resp.Reviews, convertToReviewResponse(review))
		}
	}

	return resp
}

// GetAllListings trả về danh sách listing kèm điểm trung bình và số
// lượng đánh giá, có cache Redis
func (lc ListingController) GetAllListings(c *gin.Context) {
	var summaries []dto.ListingSummaryResponse

	// Lấy dữ liệu từ Redis
	if err := services.GetFromRedis(config.Ctx, lc.Redis, listingsCacheKey, &summaries); err == nil && len(summaries) > 0 {
		response.Success(c, summaries)
		return
	}

	listings, err := lc.Service.List()
	if err != nil {
		response.ServerError(c)
		return
	}

	for _, listing := range listings {
		summaries = append(summaries, lc.convertToListingSummary(listing))
	}

	if err := services.SetToRedis(config.Ctx, lc.Redis, listingsCacheKey, summaries, 10*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách listing vào Redis: %v", err)
	}

	response.Success(c, summaries)
}

// GetListingDetail trả về chi tiết listing kèm các review lồng nhau
func (lc ListingController) GetListingDetail(c *gin.Context) {
	id := c.Param("id")

	listing, err := lc.Service.GetByID(id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, lc.convertToListingResponse(*listing, true))
}

func (lc ListingController) CreateListing(c *gin.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.AppError(c, err)
		return
	}

	listing, err := lc.Service.Create(&req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Xóa cache
	_ = services.DeleteFromRedis(config.Ctx, lc.Redis, listingsCacheKey)

	response.Created(c, lc.convertToListingResponse(*listing, false))
}

func (lc ListingController) UpdateListing(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	listing, err := lc.Service.Update(id, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Xóa cache
	_ = services.DeleteFromRedis(config.Ctx, lc.Redis, listingsCacheKey)

	response.Success(c, lc.convertToListingResponse(*listing, false))
}

// DeleteListing xóa listing; booking và review liên quan bị xóa theo
func (lc ListingController) DeleteListing(c *gin.Context) {
	id := c.Param("id")

	if err := lc.Service.Delete(id); err != nil {
		response.AppError(c, err)
		return
	}

	// Xóa cache listing lẫn review vì review bị cascade theo
	_ = services.DeleteFromRedis(config.Ctx, lc.Redis, listingsCacheKey, reviewsCacheKey)

	response.Success(c, nil)
}

// SearchListings tìm listing theo địa điểm, chấp nhận gõ không dấu và
// sai chính tả nhẹ
func (lc ListingController) SearchListings(c *gin.Context) {
	query := c.Query("q")

	listings, err := lc.Service.SearchByLocation(query)
	if err != nil {
		response.ServerError(c)
		return
	}

	summaries := make([]dto.ListingSummaryResponse, 0, len(listings))
	for _, listing := range listings {
		summaries = append(summaries, lc.convertToListingSummary(listing))
	}

	response.Success(c, summaries)
}
