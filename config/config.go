package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary khởi tạo client Cloudinary cho việc upload ảnh listing
func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
}

// LoadEnv nạp biến môi trường từ tệp `.env`
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
