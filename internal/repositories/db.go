// Package repositories provides the data access layer: the PostgreSQL
// connection, the repository contracts the services depend on, and their
// GORM implementations.
package repositories

import (
	"log"
	"time"

	"gatepass/internal/config"
	"gatepass/internal/models"
	"gatepass/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// CacheService is the shared redis-backed cache, nil when redis is disabled.
var CacheService *cache.CacheService

// InitDB opens the PostgreSQL connection, runs migrations and connects the
// redis cache.
func InitDB() error {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "gatepass") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	logLevel := logger.Warn
	if !config.IsProduction() {
		logLevel = logger.Info
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return err
	}

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	CacheService = cache.NewCacheService(cache.NewRedisClient(redisCfg), 1*time.Hour)

	if err := DB.AutoMigrate(
		&models.Buyer{},
		&models.Offer{},
		&models.Reservation{},
		&models.Payment{},
	); err != nil {
		return err
	}

	log.Println("database initialized")
	return nil
}
