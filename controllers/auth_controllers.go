package controllers

import (
	"tripstay/config"
	"tripstay/constants"
	"tripstay/dto"
	"tripstay/models"
	"tripstay/response"
	"tripstay/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const tokenExpiryMinutes = 60 * 24

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) AuthController {
	return AuthController{DB: db}
}

func convertToLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Login đăng nhập bằng email hoặc username
func (ac AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ? OR username = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.Unauthorized(c, "Invalid credentials.")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.Unauthorized(c, "Invalid credentials.")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"user":  convertToLoginResponse(user),
	})
}

// Register đăng ký tài khoản mới
func (ac AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
	}

	created, err := services.CreateUser(user)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, convertToLoginResponse(created))
}

// AuthGoogle đăng nhập bằng Google ID token, tự tạo tài khoản nếu chưa có
func (ac AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	payload, err := idtoken.Validate(config.Ctx, input.Token, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c, "Invalid Google token.")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	avatar, _ := payload.Claims["picture"].(string)

	user, err := services.GetUserByEmail(email)
	if err != nil {
		user, err = services.CreateGoogleUser(name, email, avatar)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"user":  convertToLoginResponse(user),
	})
}

// Logout hiện chỉ xác nhận phía client xóa token
func (ac AuthController) Logout(c *gin.Context) {
	role, exists := c.Get("role")
	if exists && role == constants.RoleAdmin {
		response.Success(c, gin.H{"message": "Admin logged out."})
		return
	}
	response.Success(c, gin.H{"message": "Logged out."})
}
