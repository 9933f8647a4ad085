package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeConflict  ErrorCode = "CONFLICT"
	ErrCodeReference ErrorCode = "INVALID_REFERENCE"
)

// AppError định nghĩa lỗi của ứng dụng. Field cho biết trường dữ liệu
// gây ra lỗi để client hiển thị trực tiếp cạnh trường đó.
type AppError struct {
	Code    ErrorCode
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError tạo lỗi validation gắn với một trường cụ thể
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Field:   field,
		Message: message,
	}
}

// NewConflictError tạo lỗi trùng lặp dữ liệu (ví dụ review đã tồn tại)
func NewConflictError(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Field:   field,
		Message: message,
	}
}

// NewReferenceError tạo lỗi tham chiếu đến bản ghi không tồn tại
func NewReferenceError(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeReference,
		Field:   field,
		Message: message,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Listing errors
	ErrListingNotFound = errors.New("listing not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")
	ErrReviewExists   = errors.New("review already exists for this listing and user")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
