// Package handler provides the HTTP handlers for the demo feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradefolio_backend/internal/feature/demo/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/transport/http/dto"
)

// DemoUsecase defines the demo-data operations consumed by this handler.
type DemoUsecase interface {
	GetHoldings(ctx context.Context) ([]entity.DemoHolding, error)
	GetPositions(ctx context.Context) ([]entity.DemoPosition, error)
}

// DemoHandler handles the public demo dashboard endpoints.
type DemoHandler struct {
	uc DemoUsecase
}

// NewDemoHandler creates a new DemoHandler instance.
func NewDemoHandler(uc DemoUsecase) *DemoHandler {
	return &DemoHandler{uc: uc}
}

// Holdings handles GET /market/market-holdings.
func (h *DemoHandler) Holdings(c *gin.Context) {
	data, err := h.uc.GetHoldings(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch demo holdings", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch holdings data"})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Success: true, Data: data, Count: len(data)})
}

// Positions handles GET /market/market-positions.
func (h *DemoHandler) Positions(c *gin.Context) {
	data, err := h.uc.GetPositions(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch demo positions", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch positions data"})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Success: true, Data: data, Count: len(data)})
}
