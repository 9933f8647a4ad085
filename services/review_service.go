package services

import (
	stderrors "errors"
	"strings"

	"tripstay/dto"
	"tripstay/errors"
	"tripstay/models"
	"tripstay/services/logger"
	"tripstay/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewService xử lý đánh giá: mỗi cặp (listing, user) chỉ có một
// review. Pre-check ở tầng ứng dụng chỉ để trả lỗi sớm; unique index ở
// DB mới là nguồn đảm bảo khi có hai request ghi đồng thời, và lỗi vi
// phạm constraint được dịch về cùng một ConflictError.
type ReviewService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewReviewService(db *gorm.DB, l logger.Logger) *ReviewService {
	return &ReviewService{db: db, logger: l}
}

// Create tạo review mới cho một cặp (listing, user) chưa có review
func (s *ReviewService) Create(req *dto.CreateReviewRequest) (*models.Review, error) {
	var listing models.Listing
	if err := s.db.First(&listing, "id = ?", req.PropertyID).Error; err != nil {
		return nil, errors.NewReferenceError("property_id", "Invalid property ID.")
	}

	var user models.User
	if err := s.db.First(&user, req.UserID).Error; err != nil {
		return nil, errors.NewReferenceError("user_id", "Invalid user ID.")
	}

	review := &models.Review{
		ListingID: listing.ID,
		UserID:    user.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := validator.ValidateReview(review); err != nil {
		return nil, err
	}

	var existing models.Review
	if err := s.db.Where("listing_id = ? AND user_id = ?", listing.ID, user.ID).First(&existing).Error; err == nil {
		return nil, errors.NewConflictError("property_id", "You have already reviewed this property.")
	}

	if err := s.db.Create(review).Error; err != nil {
		if isDuplicateError(err) {
			return nil, errors.NewConflictError("property_id", "You have already reviewed this property.")
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not create review.", err)
	}

	s.logger.Info("Đã tạo review %s cho listing %s", review.ID, listing.ID)
	review.User = user
	return review, nil
}

// Update chỉ cho phép đổi rating và comment; cặp (listing, user) là
// định danh của review và không được thay đổi sau khi tạo
func (s *ReviewService) Update(req *dto.UpdateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("User").First(&review, "id = ?", req.ID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Review not found.", err)
	}

	if req.PropertyID != nil && *req.PropertyID != review.ListingID {
		return nil, errors.NewValidationError("property_id", "Property of a review cannot be changed.")
	}
	if req.UserID != nil && *req.UserID != review.UserID {
		return nil, errors.NewValidationError("user_id", "User of a review cannot be changed.")
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := validator.ValidateReview(&review); err != nil {
		return nil, err
	}

	if err := s.db.Omit(clause.Associations).Save(&review).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not update review.", err)
	}

	return &review, nil
}

// GetByID lấy review kèm user
func (s *ReviewService) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("User").First(&review, "id = ?", id).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Review not found.", err)
	}
	return &review, nil
}

// ListByListing lấy các review của một listing, hoặc toàn bộ khi
// listingID rỗng
func (s *ReviewService) ListByListing(listingID string) ([]models.Review, error) {
	tx := s.db.Preload("User").Order("created_at DESC")
	if listingID != "" {
		tx = tx.Where("listing_id = ?", listingID)
	}

	var reviews []models.Review
	if err := tx.Find(&reviews).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list reviews.", err)
	}
	return reviews, nil
}

// Delete xóa review theo id
func (s *ReviewService) Delete(id string) error {
	tx := s.db.Delete(&models.Review{}, "id = ?", id)
	if tx.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not delete review.", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Review not found.", nil)
	}
	return nil
}

// isDuplicateError nhận diện lỗi vi phạm unique constraint từ tầng lưu trữ
func isDuplicateError(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
