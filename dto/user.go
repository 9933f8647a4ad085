package dto

// UserInfo là DTO cho thông tin user lồng trong các response khác
type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
