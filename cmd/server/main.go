package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"tradefolio_backend/internal/app/di"
	"tradefolio_backend/internal/app/router"
	authadapters "tradefolio_backend/internal/feature/auth/adapters"
	authhandler "tradefolio_backend/internal/feature/auth/transport/handler"
	authusecase "tradefolio_backend/internal/feature/auth/usecase"
	demoadapters "tradefolio_backend/internal/feature/demo/adapters"
	demohandler "tradefolio_backend/internal/feature/demo/transport/handler"
	demousecase "tradefolio_backend/internal/feature/demo/usecase"
	portfolioadapters "tradefolio_backend/internal/feature/portfolio/adapters"
	portfoliohandler "tradefolio_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "tradefolio_backend/internal/feature/portfolio/usecase"
	"tradefolio_backend/internal/platform/cache"
	"tradefolio_backend/internal/platform/config"
	platformdb "tradefolio_backend/internal/platform/db"
	jwtmw "tradefolio_backend/internal/platform/jwt"
	platformredis "tradefolio_backend/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache and session revocation.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	watchlistRepo := portfolioadapters.NewWatchlistRepository(db)
	holdingRepo := portfolioadapters.NewHoldingRepository(db)
	demoRepo := demoadapters.NewDemoRepository(db)

	// Redis cache wrapper for the read-only demo rows
	cachedDemoRepo := cache.NewCachingDemoRepository(rdb, 5*time.Minute, demoRepo, "demo")

	// Demo rows must exist before the first request.
	if err := cachedDemoRepo.Seed(context.Background()); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	// External quote provider and sessions
	quotes := di.NewQuoteProvider(cfg)
	sessions := di.NewSessionStore(rdb)
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, sessions)
	watchlistUC := portfoliousecase.NewWatchlistUsecase(watchlistRepo, quotes)
	holdingsUC := portfoliousecase.NewHoldingsUsecase(holdingRepo, quotes)
	marketUC := portfoliousecase.NewMarketUsecase(quotes)
	demoUC := demousecase.NewDemoUsecase(cachedDemoRepo)

	// Handler
	h := router.Handlers{
		Auth:      authhandler.NewAuthHandler(authUC, cfg.CookieName, cfg.TokenTTL),
		Watchlist: portfoliohandler.NewWatchlistHandler(watchlistUC),
		Holdings:  portfoliohandler.NewHoldingsHandler(holdingsUC),
		Market:    portfoliohandler.NewMarketHandler(marketUC),
		Demo:      demohandler.NewDemoHandler(demoUC),
	}

	authRequired := jwtmw.AuthRequired(tokens, authUC, sessions, cfg.CookieName)

	r := router.NewRouter(cfg, h, authRequired)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
