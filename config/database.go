package config

import (
	"fmt"
	"log"
	"os"

	"tripstay/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) string {
	var user, password, host, port, name string

	switch env {
	case "dev":
		user = os.Getenv("DEV_DB_USER")
		password = os.Getenv("DEV_DB_PASSWORD")
		host = os.Getenv("DEV_DB_HOST")
		port = os.Getenv("DEV_DB_PORT")
		name = os.Getenv("DEV_DB_NAME")
	case "prod":
		user = os.Getenv("PROD_DB_USER")
		password = os.Getenv("PROD_DB_PASSWORD")
		host = os.Getenv("PROD_DB_HOST")
		port = os.Getenv("PROD_DB_PORT")
		name = os.Getenv("PROD_DB_NAME")
	default:
		log.Fatalf("Unknown environment: %s", env)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=UTC",
		host, user, password, name, port)
	return dsn
}

func ConnectDB() {
	var err error
	env := os.Getenv("ENV")
	dsn := getDBConfigByEnv(env)

	// TranslateError để lỗi vi phạm unique constraint được ánh xạ về
	// gorm.ErrDuplicatedKey thay vì lỗi thô của driver
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB tạo bảng cho các model, bao gồm cả unique index của review
// và check constraint về thứ tự ngày của booking
func MigrateDB() {
	if err := DB.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}
