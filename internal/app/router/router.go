package router

import (
	"time"

	authhandler "tradefolio_backend/internal/feature/auth/transport/handler"
	demohandler "tradefolio_backend/internal/feature/demo/transport/handler"
	portfoliohandler "tradefolio_backend/internal/feature/portfolio/transport/handler"
	"tradefolio_backend/internal/platform/config"
	"tradefolio_backend/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers wired into the route table.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Watchlist *portfoliohandler.WatchlistHandler
	Holdings  *portfoliohandler.HoldingsHandler
	Market    *portfoliohandler.MarketHandler
	Demo      *demohandler.DemoHandler
}

// NewRouter builds the gin engine with the full route table.
// Browser clients send credentials via cookies, so CORS must echo the
// configured origins instead of using a wildcard.
func NewRouter(cfg config.Config, h Handlers, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// Authentication
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/verify", h.Auth.Verify)
	}

	// Public market data: no account required
	market := r.Group("/market")
	{
		market.GET("/watchlist", h.Market.Overview)
		market.GET("/stock/:symbol", h.Market.Stock)
		market.GET("/market-holdings", h.Demo.Holdings)
		market.GET("/market-positions", h.Demo.Positions)
	}

	// Per-user portfolio routes require a valid token
	user := r.Group("/market", authRequired)
	{
		user.GET("/user-watchlist", h.Watchlist.List)
		user.POST("/user-watchlist", h.Watchlist.Add)
		user.PUT("/user-watchlist/:symbol", h.Watchlist.Update)
		user.DELETE("/user-watchlist/:symbol", h.Watchlist.Remove)

		user.GET("/user-holdings", h.Holdings.List)
		user.POST("/user-holdings", h.Holdings.Add)
		user.PUT("/user-holdings/:id", h.Holdings.Update)
		user.DELETE("/user-holdings/:id", h.Holdings.Delete)
		user.POST("/user-holdings/:id/sell", h.Holdings.Sell)

		user.GET("/positions", h.Holdings.Positions)
	}

	return r
}
