package services

import (
	"strings"

	"tripstay/dto"
	"tripstay/errors"
	"tripstay/models"
	"tripstay/services/logger"
	"tripstay/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingService xử lý logic liên quan đến listing: tạo, cập nhật và
// các truy vấn tổng hợp (điểm trung bình, số lượng đánh giá)
type ListingService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewListingService(db *gorm.DB, l logger.Logger) *ListingService {
	return &ListingService{db: db, logger: l}
}

// Create tạo listing mới sau khi kiểm tra bất biến và chủ nhà tồn tại
func (s *ListingService) Create(req *dto.CreateListingRequest) (*models.Listing, error) {
	var host models.User
	if err := s.db.First(&host, req.HostID).Error; err != nil {
		return nil, errors.NewReferenceError("host_id", "Invalid host ID.")
	}

	listing := &models.Listing{
		HostID:        req.HostID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		IsAvailable:   true,
	}
	if listing.Bedrooms == 0 {
		listing.Bedrooms = 1
	}
	if listing.Bathrooms == 0 {
		listing.Bathrooms = 1
	}
	if listing.MaxGuests == 0 {
		listing.MaxGuests = 2
	}
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}

	if err := validator.ValidateListing(listing); err != nil {
		return nil, err
	}

	if err := s.db.Create(listing).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not create listing.", err)
	}

	s.logger.Info("Đã tạo listing %s (%s)", listing.ID, listing.Name)
	listing.Host = host
	return listing, nil
}

// Update cập nhật listing. Thay đổi giá hoặc trạng thái khả dụng không
// kéo theo tính lại booking hay review nào đã có: các booking giữ nguyên
// tổng giá đã chốt lúc đặt.
func (s *ListingService) Update(id string, req *dto.UpdateListingRequest) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.Preload("Host").First(&listing, "id = ?", id).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Listing not found.", err)
	}

	if req.Name != nil {
		listing.Name = *req.Name
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.PricePerNight != nil {
		listing.PricePerNight = *req.PricePerNight
	}
	if req.Bedrooms != nil {
		listing.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		listing.Bathrooms = *req.Bathrooms
	}
	if req.MaxGuests != nil {
		listing.MaxGuests = *req.MaxGuests
	}
	if req.Amenities != nil {
		listing.Amenities = req.Amenities
	}
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}

	if err := validator.ValidateListing(&listing); err != nil {
		return nil, err
	}

	if err := s.db.Omit(clause.Associations).Save(&listing).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not update listing.", err)
	}

	return &listing, nil
}

// GetByID lấy listing kèm chủ nhà và các đánh giá
func (s *ListingService) GetByID(id string) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.Preload("Host").Preload("Reviews").Preload("Reviews.User").First(&listing, "id = ?", id).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Listing not found.", err)
	}
	return &listing, nil
}

// List lấy toàn bộ listing kèm chủ nhà
func (s *ListingService) List() ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.db.Preload("Host").Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list listings.", err)
	}
	return listings, nil
}

// Delete xóa listing; booking và review liên quan bị xóa theo qua
// ràng buộc CASCADE ở tầng DB
func (s *ListingService) Delete(id string) error {
	tx := s.db.Delete(&models.Listing{}, "id = ?", id)
	if tx.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Could not delete listing.", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Listing not found.", nil)
	}
	return nil
}

// AverageRating tính điểm trung bình của listing, bằng 0 khi chưa có
// đánh giá nào để giữ thứ tự số học khi sort
func (s *ListingService) AverageRating(listingID string) (float64, error) {
	var ratings []int
	if err := s.db.Model(&models.Review{}).Where("listing_id = ?", listingID).Pluck("rating", &ratings).Error; err != nil {
		return 0, err
	}

	if len(ratings) == 0 {
		return 0, nil
	}

	total := 0
	for _, r := range ratings {
		total += r
	}
	return float64(total) / float64(len(ratings)), nil
}

// TotalReviews đếm số đánh giá của listing
func (s *ListingService) TotalReviews(listingID string) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Review{}).Where("listing_id = ?", listingID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchByLocation tìm listing theo địa điểm: bỏ dấu rồi so khớp chuỗi
// con, nếu không có kết quả thì thử địa điểm gần đúng nhất để chấp nhận
// gõ sai nhẹ
func (s *ListingService) SearchByLocation(query string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.db.Preload("Host").Find(&listings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not search listings.", err)
	}

	normalizedQuery := strings.ToLower(unidecode.Unidecode(strings.TrimSpace(query)))
	if normalizedQuery == "" {
		return listings, nil
	}

	var matched []models.Listing
	var locations []string
	byLocation := make(map[string][]models.Listing)
	for _, l := range listings {
		normalized := strings.ToLower(unidecode.Unidecode(l.Location))
		if _, ok := byLocation[normalized]; !ok {
			locations = append(locations, normalized)
		}
		byLocation[normalized] = append(byLocation[normalized], l)
		if strings.Contains(normalized, normalizedQuery) {
			matched = append(matched, l)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}
	if len(locations) == 0 {
		return nil, nil
	}

	// Không khớp trực tiếp, thử địa điểm gần nhất theo bag-of-words
	cm := closestmatch.New(locations, []int{2, 3})
	closest := cm.Closest(normalizedQuery)
	if closest == "" {
		return nil, nil
	}

	distance := levenshtein.DistanceForStrings([]rune(normalizedQuery), []rune(closest), levenshtein.DefaultOptions)
	if distance > len(closest)/2 {
		return nil, nil
	}

	return byLocation[closest], nil
}
