package services

import (
	"fmt"
	"os"
	"time"

	"tripstay/config"
	"tripstay/constants"
	"tripstay/errors"
	"tripstay/models"
	"tripstay/validator"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// UserInfo là payload nhúng vào JWT
type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("không thể băm mật khẩu: %v", err)
	}
	return string(hashed), nil
}

// CheckPassword so khớp mật khẩu với hash đã lưu
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateToken sinh JWT chứa userID và role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": userInfo.UserId,
			"role":   userInfo.Role,
		},
		"exp": time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "SECRET_KEY is not configured.", nil)
	}
	return token.SignedString([]byte(secret))
}

// GetUserByEmail tìm user theo email
func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, errors.ErrUserNotFound
	}
	return user, nil
}

// CreateUser đăng ký user mới, băm mật khẩu trước khi lưu
func CreateUser(input models.User) (models.User, error) {
	if err := validator.ValidateUser(&input); err != nil {
		return models.User{}, err
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", input.Email, input.Username).First(&existing).Error; err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "Email or username is already in use.", nil)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}
	input.Password = hashedPassword

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Could not create user.", err)
	}

	return input, nil
}

// CreateGoogleUser tạo user từ thông tin tài khoản Google, mật khẩu
// được sinh ngẫu nhiên vì user đăng nhập qua Google
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	if _, err := GetUserByEmail(email); err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", email)
	}

	randomPass, err := HashPassword(fmt.Sprintf("%d", time.Now().UnixNano()))
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:  email,
		FirstName: name,
		Email:     email,
		Avatar:    avatar,
		Password:  randomPass,
		Role:      constants.RoleGuest,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Could not create user.", err)
	}

	return user, nil
}
