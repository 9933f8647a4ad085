package controllers

import (
	"fmt"
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

const reviewsCacheKey = "reviews:all"

type ReviewController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.ReviewService
}

func NewReviewController(db *gorm.DB, redisCli *redis.Client) ReviewController {
	return ReviewController{
		DB:      db,
		Redis:   redisCli,
		Service: services.NewReviewService(db, logger.NewDefaultLogger(logger.InfoLevel)),
	}
}

func convertToReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         review.ID,
		PropertyID: review.ListingID,
		User:       convertToUserInfo(review.User),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

// GetAllReviews trả về danh sách review, lọc theo propertyId nếu có
func (rc ReviewController) GetAllReviews(c *gin.Context) {
	propertyID := c.Query("propertyId")

	cacheKey := reviewsCacheKey
	if propertyID != "" {
		cacheKey = fmt.Sprintf("reviews:listing:%s", propertyID)
	}

	var responses []dto.ReviewResponse

	// Lấy dữ liệu từ Redis
	if err := services.GetFromRedis(config.Ctx, rc.Redis, cacheKey, &responses); err == nil && len(responses) > 0 {
		response.Success(c, responses)
		return
	}

	reviews, err := rc.Service.ListByListing(propertyID)
	if err != nil {
		response.AppError(c, err)
		return
	}

	for _, review := range reviews {
		responses = append(responses, convertToReviewResponse(review))
	}

	if err := services.SetToRedis(config.Ctx, rc.Redis, cacheKey, responses, 10*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách review vào Redis: %v", err)
	}

	response.Success(c, responses)
}

func (rc ReviewController) GetReviewDetail(c *gin.Context) {
	id := c.Param("id")

	review, err := rc.Service.GetByID(id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, convertToReviewResponse(*review))
}

// CreateReview tạo review mới, mỗi user chỉ được một review cho mỗi listing
func (rc ReviewController) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.AppError(c, err)
		return
	}

	review, err := rc.Service.Create(&req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	rc.invalidateReviewCaches(review.ListingID)

	response.Created(c, convertToReviewResponse(*review))
}

func (rc ReviewController) UpdateReview(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	review, err := rc.Service.Update(&req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	rc.invalidateReviewCaches(review.ListingID)

	response.Success(c, convertToReviewResponse(*review))
}

func (rc ReviewController) DeleteReview(c *gin.Context) {
	id := c.Param("id")

	review, err := rc.Service.GetByID(id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	if err := rc.Service.Delete(id); err != nil {
		response.AppError(c, err)
		return
	}

	rc.invalidateReviewCaches(review.ListingID)

	response.Success(c, nil)
}

// Điểm trung bình của listing đổi theo review nên xóa luôn cache listing
func (rc ReviewController) invalidateReviewCaches(listingID string) {
	_ = services.DeleteFromRedis(config.Ctx, rc.Redis,
		reviewsCacheKey,
		fmt.Sprintf("reviews:listing:%s", listingID),
		listingsCacheKey,
	)
}
