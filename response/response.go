package response

import (
	"net/http"

	"tripstay/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Field string      `json:"field,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// Created trả về response tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// Error trả về response lỗi
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: message,
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Forbidden"
	}
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: message,
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError trả về response lỗi validation gắn với một trường
func ValidationError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:  0,
		Mess:  message,
		Field: field,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, field, message string) {
	c.JSON(http.StatusConflict, Response{
		Code:  0,
		Mess:  message,
		Field: field,
	})
}

// AppError ánh xạ AppError sang HTTP status tương ứng. Lỗi không phải
// AppError được coi là lỗi server.
func AppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	status := http.StatusBadRequest
	switch appErr.Code {
	case errors.ErrCodeConflict, errors.ErrCodeDBDuplicate:
		status = http.StatusConflict
	case errors.ErrCodeReference, errors.ErrCodeDBNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		status = http.StatusUnauthorized
	case errors.ErrCodeDBError:
		status = http.StatusInternalServerError
	}

	c.JSON(status, Response{
		Code:  0,
		Mess:  appErr.Message,
		Field: appErr.Field,
	})
}
