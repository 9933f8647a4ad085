package main

import (
	"flag"
	"log"

	"tripstay/config"
	"tripstay/seed"
)

// Chạy: go run scripts/seed.go -users 20 -listings 30 -bookings 50 -reviews 40
func main() {
	users := flag.Int("users", 20, "số user cần sinh")
	listings := flag.Int("listings", 30, "số listing cần sinh")
	bookings := flag.Int("bookings", 50, "số booking cần sinh")
	reviews := flag.Int("reviews", 40, "số review cần sinh")
	clear := flag.Bool("clear", false, "xóa dữ liệu cũ trước khi seed")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Không load được biến môi trường: %v", err)
	}

	config.ConnectDB()
	config.MigrateDB()

	opts := seed.Options{
		Users:    *users,
		Listings: *listings,
		Bookings: *bookings,
		Reviews:  *reviews,
		Clear:    *clear,
	}

	if err := seed.Run(config.DB, opts); err != nil {
		log.Fatalf("Seed thất bại: %v", err)
	}
}
