package database

import (
	"fmt"
	"log"
	"time"

	"lazarus_guide/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// ConnectMySQLWithRetry connects the relational guide store and keeps retrying
// with capped exponential backoff. Call it from main after the HTTP server is
// listening so container startup is not blocked on the database.
func ConnectMySQLWithRetry(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)

	var attempt int
	for {
		attempt++
		db, err := gorm.Open(mysql.Open(dsn), gormConfig())
		if err == nil {
			if sqlDB, derr := db.DB(); derr == nil && sqlDB != nil {
				if cfg.MaxOpenConns > 0 {
					sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
				}
				if cfg.MaxIdleConns >= 0 {
					sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
				}
				if cfg.ConnMaxLifeSecs > 0 {
					sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeSecs) * time.Second)
				}
				if cfg.ConnMaxIdleSecs > 0 {
					sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleSecs) * time.Second)
				}
			}
			log.Printf("connected to database (attempt=%d)", attempt)
			return db
		}

		sleep := time.Second * time.Duration(1<<min(attempt, 5))
		if sleep > 30*time.Second {
			sleep = 30 * time.Second
		}
		log.Printf("failed to connect database (attempt=%d): %v; retrying in %s", attempt, err, sleep)
		time.Sleep(sleep)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         gormLogger(),
		NamingStrategy: &schema.NamingStrategy{SingularTable: false},
	}
}

func gormLogger() logger.Interface {
	return logger.Default.LogMode(logger.Error)
}
