package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/transport/http/dto"
	"tradefolio_backend/internal/feature/portfolio/usecase"
)

// MarketUsecase defines the public market-data operations consumed by this handler.
type MarketUsecase interface {
	GetOverview(ctx context.Context) []entity.QuoteRecord
	GetStock(ctx context.Context, symbol string) (*entity.QuoteRecord, error)
}

// MarketHandler handles the public, non-user-scoped market endpoints.
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler creates a new MarketHandler instance.
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// Overview handles GET /market/watchlist, the curated default market view.
func (h *MarketHandler) Overview(c *gin.Context) {
	data := h.uc.GetOverview(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListResponse{Success: true, Data: data, Count: len(data)})
}

// Stock handles GET /market/stock/:symbol.
func (h *MarketHandler) Stock(c *gin.Context) {
	quote, err := h.uc.GetStock(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Stock data not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch stock data"})
		return
	}
	c.JSON(http.StatusOK, dto.ItemResponse{Success: true, Data: quote})
}
