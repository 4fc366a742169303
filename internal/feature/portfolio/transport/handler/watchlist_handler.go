// Package handler provides the HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/transport/http/dto"
	"tradefolio_backend/internal/feature/portfolio/usecase"
	jwtmw "tradefolio_backend/internal/platform/jwt"
)

// WatchlistUsecase defines the watchlist operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	GetUserWatchlist(ctx context.Context, userID uint) ([]usecase.WatchlistQuote, string, error)
	AddToWatchlist(ctx context.Context, userID uint, symbol string, alertPrice *float64, notes string) (*entity.WatchlistEntry, error)
	UpdateWatchlistEntry(ctx context.Context, userID uint, symbol string, alertPrice *float64, notes *string) (*entity.WatchlistEntry, error)
	RemoveFromWatchlist(ctx context.Context, userID uint, symbol string) error
}

// WatchlistHandler handles the user-watchlist HTTP endpoints.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler instance.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// abortUnauthenticated is the guard for handlers reached without the
// middleware having set an identity.
func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
}

// List handles GET /market/user-watchlist.
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	data, msg, err := h.uc.GetUserWatchlist(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to fetch user watchlist", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch user watchlist"})
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Success: true, Data: data, Count: len(data), Message: msg})
}

// Add handles POST /market/user-watchlist.
// A duplicate (user, symbol) pair is a 400 conflict, whether caught by the
// usecase pre-check or by the storage unique index.
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req dto.AddWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Symbol is required"})
		return
	}

	entry, err := h.uc.AddToWatchlist(c.Request.Context(), userID, req.Symbol, req.AlertPrice, req.Notes)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateSymbol) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Stock already in watchlist"})
			return
		}
		slog.Error("failed to add to watchlist", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to add stock to watchlist"})
		return
	}

	c.JSON(http.StatusCreated, dto.ItemResponse{Success: true, Data: entry, Message: "Stock added to watchlist"})
}

// Update handles PUT /market/user-watchlist/:symbol.
func (h *WatchlistHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req dto.UpdateWatchlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request"})
		return
	}

	entry, err := h.uc.UpdateWatchlistEntry(c.Request.Context(), userID, c.Param("symbol"), req.AlertPrice, req.Notes)
	if err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Stock not found in watchlist"})
			return
		}
		slog.Error("failed to update watchlist entry", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update watchlist item"})
		return
	}

	c.JSON(http.StatusOK, dto.ItemResponse{Success: true, Data: entry, Message: "Watchlist item updated successfully"})
}

// Remove handles DELETE /market/user-watchlist/:symbol.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	if err := h.uc.RemoveFromWatchlist(c.Request.Context(), userID, c.Param("symbol")); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Stock not found in watchlist"})
			return
		}
		slog.Error("failed to remove from watchlist", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to remove stock from watchlist"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Stock removed from watchlist"})
}
