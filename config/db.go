package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"resort-backend/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "resort_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, runs migrations and seeds the
// room inventory. Sets config.DB on success.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}
	if _, err := mysqldriver.ParseDSN(dsn); err != nil {
		return fmt.Errorf("invalid mysql dsn: %w", err)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// parent before child: rooms carry the guest FK
	if err := db.AutoMigrate(
		&models.Guest{},
		&models.Room{},
	); err != nil {
		return err
	}

	if err := SeedRooms(db); err != nil {
		return err
	}

	DB = db
	return nil
}

// SeedRooms creates the fixed inventory of rooms 1..15, all available, when
// the rooms table is empty. Counting first makes reruns a no-op.
func SeedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if count > 0 {
		return nil
	}

	rooms := make([]models.Room, 0, 15)
	for number := 1; number <= 15; number++ {
		rooms = append(rooms, models.Room{
			RoomNumber: number,
			Status:     models.RoomAvailable,
		})
	}
	if err := db.Create(&rooms).Error; err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Printf("Seeded %d rooms", len(rooms))
	return nil
}
