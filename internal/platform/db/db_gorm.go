package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	coursesentity "courses_backend/internal/feature/courses/domain/entity"
	usersentity "courses_backend/internal/feature/users/domain/entity"
)

// Config holds database connection settings.
type Config struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string
}

// LoadConfig reads connection settings from environment variables.
func LoadConfig() Config {
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN constructs a PostgreSQL DSN from the configuration.
// When InstanceName is set, it connects through the Cloud SQL unix socket;
// otherwise it connects over TCP.
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// ConnectWithRetry opens a database connection, retrying until the deadline passes.
// TranslateError is enabled so unique violations map to gorm.ErrDuplicatedKey
// regardless of driver.
func ConnectWithRetry(dsn string, deadline time.Duration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	limit := time.Now().Add(deadline)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			return db, nil
		}
		if time.Now().After(limit) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", deadline, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は環境変数の設定でデータベースへ接続します。
// RUN_MIGRATIONS=true の場合はマイグレーションも実行します。
func OpenDB() *gorm.DB {
	cfg := LoadConfig()

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Course）
		if err := db.AutoMigrate(
			&usersentity.User{},
			&coursesentity.Course{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
