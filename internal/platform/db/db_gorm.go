package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "tradefolio_backend/internal/feature/auth/domain/entity"
	demoentity "tradefolio_backend/internal/feature/demo/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/platform/config"
)

// OpenDB connects to MySQL, retrying for up to a minute so the server
// survives a database that is still booting.
func OpenDB(cfg config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&entity.WatchlistEntry{},
			&entity.HoldingEntry{},
			&demoentity.DemoHolding{},
			&demoentity.DemoPosition{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
