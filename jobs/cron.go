package jobs

import (
	"encoding/json"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// BookingCompleter định nghĩa interface cho việc hoàn tất các booking đã hết hạn
type BookingCompleter interface {
	CompleteExpired(now time.Time) (int64, error)
}

var bookingCompleter BookingCompleter

// SetBookingCompleter thiết lập implementation cho BookingCompleter
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: booking đã xác nhận và qua ngày
	// trả phòng được chuyển sang completed
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		if bookingCompleter == nil {
			log.Printf("Lỗi: BookingCompleter chưa được thiết lập")
			return
		}

		count, err := bookingCompleter.CompleteExpired(now)
		if err != nil {
			log.Printf("Lỗi khi hoàn tất các booking hết hạn: %v", err)
			return
		}
		log.Printf("Đã hoàn tất %d booking hết hạn lúc: %v", count, now)

		if count > 0 && m != nil {
			payload, err := json.Marshal(map[string]interface{}{
				"event": "bookings_completed",
				"count": count,
			})
			if err == nil {
				_ = m.Broadcast(payload)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
