package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/transport/http/dto"
	"tradefolio_backend/internal/feature/portfolio/usecase"
)

// HoldingsUsecase defines the holdings operations consumed by this handler.
type HoldingsUsecase interface {
	GetUserHoldings(ctx context.Context, userID uint) ([]usecase.EnrichedHolding, string, error)
	GetUserPositions(ctx context.Context, userID uint) ([]usecase.PositionView, string, error)
	RecordPurchase(ctx context.Context, userID uint, symbol string, quantity, averagePrice float64, notes string) (*entity.HoldingEntry, error)
	RecordSale(ctx context.Context, holdingID, userID uint, soldQuantity float64) (*entity.HoldingEntry, error)
	UpdateHolding(ctx context.Context, holdingID, userID uint, quantity, averagePrice *float64, notes *string) (*entity.HoldingEntry, error)
	DeleteHolding(ctx context.Context, holdingID, userID uint) error
}

// HoldingsHandler handles the user-holdings HTTP endpoints.
type HoldingsHandler struct {
	uc HoldingsUsecase
}

// NewHoldingsHandler creates a new HoldingsHandler instance.
func NewHoldingsHandler(uc HoldingsUsecase) *HoldingsHandler {
	return &HoldingsHandler{uc: uc}
}

// holdingID parses the :id path parameter.
func holdingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// List handles GET /market/user-holdings.
func (h *HoldingsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	data, msg, err := h.uc.GetUserHoldings(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to fetch user holdings", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch user holdings"})
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Success: true, Data: data, Count: len(data), Message: msg})
}

// Positions handles GET /market/positions.
func (h *HoldingsHandler) Positions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	data, msg, err := h.uc.GetUserPositions(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to fetch positions", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch positions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Success: true, Data: data, Count: len(data), Message: msg})
}

// Add handles POST /market/user-holdings (a "buy").
func (h *HoldingsHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req dto.AddHoldingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Symbol, quantity, and average price are required"})
		return
	}

	lot, err := h.uc.RecordPurchase(c.Request.Context(), userID, req.Symbol, req.Quantity, req.AveragePrice, req.Notes)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Quantity and average price must be positive"})
			return
		}
		slog.Error("failed to add holding", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to add holding"})
		return
	}

	c.JSON(http.StatusCreated, dto.ItemResponse{Success: true, Data: lot, Message: "Holding added successfully"})
}

// Sell handles POST /market/user-holdings/:id/sell.
// Overselling leaves the stored quantity unchanged and yields a 400.
func (h *HoldingsHandler) Sell(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := holdingID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Holding not found"})
		return
	}

	var req dto.SellHoldingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Quantity is required"})
		return
	}

	lot, err := h.uc.RecordSale(c.Request.Context(), id, userID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrHoldingNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Holding not found"})
		case errors.Is(err, usecase.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Cannot sell more than held quantity"})
		default:
			slog.Error("failed to record sale", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to record sale"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ItemResponse{Success: true, Data: lot, Message: "Sale recorded successfully"})
}

// Update handles PUT /market/user-holdings/:id.
func (h *HoldingsHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := holdingID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Holding not found"})
		return
	}

	var req dto.UpdateHoldingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request"})
		return
	}

	lot, err := h.uc.UpdateHolding(c.Request.Context(), id, userID, req.Quantity, req.AveragePrice, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrHoldingNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Holding not found"})
		case errors.Is(err, usecase.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Quantity and average price must not be negative"})
		default:
			slog.Error("failed to update holding", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update holding"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ItemResponse{Success: true, Data: lot, Message: "Holding updated successfully"})
}

// Delete handles DELETE /market/user-holdings/:id.
func (h *HoldingsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := holdingID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Holding not found"})
		return
	}

	if err := h.uc.DeleteHolding(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, usecase.ErrHoldingNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Holding not found"})
			return
		}
		slog.Error("failed to delete holding", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete holding"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Holding deleted successfully"})
}
