package controllers

import (
	"strings"

	"tripstay/dto"
	"tripstay/models"
	"tripstay/response"
	"tripstay/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{DB: db, Redis: redisCli}
}

func convertToUserInfo(user models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// GetProfile lấy thông tin user từ token
func (uc UserController) GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		response.Unauthorized(c, "Authorization token is required.")
		return
	}

	userID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c, "Invalid token.")
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c, "User not found.")
		return
	}

	response.Success(c, convertToLoginResponse(user))
}

func (uc UserController) GetUserByID(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		response.NotFound(c, "User not found.")
		return
	}

	response.Success(c, convertToUserInfo(user))
}
