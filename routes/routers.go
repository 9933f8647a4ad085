package routes

import (
	"context"
	"net/http"

	"tripstay/constants"
	"tripstay/controllers"
	middlewares "tripstay/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.RequestIDMiddleware())

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db, redisCli)
	listingController := controllers.NewListingController(db, redisCli)
	bookingController := controllers.NewBookingController(db, redisCli, m)
	reviewController := controllers.NewReviewController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/google", authController.AuthGoogle)
	v1.DELETE("/auth/logout", middlewares.AuthMiddleware(), authController.Logout)

	v1.GET("/profile", userController.GetProfile)
	v1.GET("/users/:id", userController.GetUserByID)

	v1.GET("/listings", listingController.GetAllListings)
	v1.GET("/listings/search", listingController.SearchListings)
	v1.GET("/listings/:id", listingController.GetListingDetail)
	v1.POST("/listings", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleAdmin), listingController.CreateListing)
	v1.PUT("/listings/:id", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleAdmin), listingController.UpdateListing)
	v1.DELETE("/listings/:id", middlewares.AuthMiddleware(constants.RoleHost, constants.RoleAdmin), listingController.DeleteListing)

	v1.GET("/bookings", bookingController.GetBookings)
	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.PUT("/bookings/:id", bookingController.UpdateBooking)
	v1.PUT("/bookingStatus", bookingController.ChangeBookingStatus)
	v1.DELETE("/bookings/:id", bookingController.DeleteBooking)

	v1.GET("/reviews", reviewController.GetAllReviews)
	v1.GET("/reviews/:id", reviewController.GetReviewDetail)
	v1.POST("/reviews", reviewController.CreateReview)
	v1.PUT("/reviewsUpdate", reviewController.UpdateReview)
	v1.DELETE("/reviews/:id", reviewController.DeleteReview)

	// Upload ảnh listing lên Cloudinary
	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "listings"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})
}
