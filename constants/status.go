package constants

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
	BookingStatusCompleted = "completed"
)

// IsValidBookingStatus kiểm tra giá trị trạng thái booking có nằm trong enum không.
// Tính hợp lệ của bước chuyển trạng thái (pending -> confirmed -> completed)
// không được kiểm tra ở tầng này; tầng API bên ngoài tự quyết định.
func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled, BookingStatusCompleted:
		return true
	}
	return false
}

// User role
const (
	RoleGuest = 0
	RoleHost  = 1
	RoleAdmin = 2
)
