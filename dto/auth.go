package dto

import "time"

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // email hoặc username
	Password   string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      int    `json:"role"`
}

type GoogleAuthInput struct {
	Token string `json:"token" binding:"required"`
}

type UserLoginResponse struct {
	UserID    uint      `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    string    `json:"avatar"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
