package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/usecase"
)

// mockHoldingsUsecase is a mock implementation of the HoldingsUsecase interface.
type mockHoldingsUsecase struct {
	GetUserHoldingsFunc  func(ctx context.Context, userID uint) ([]usecase.EnrichedHolding, string, error)
	GetUserPositionsFunc func(ctx context.Context, userID uint) ([]usecase.PositionView, string, error)
	RecordPurchaseFunc   func(ctx context.Context, userID uint, symbol string, quantity, averagePrice float64, notes string) (*entity.HoldingEntry, error)
	RecordSaleFunc       func(ctx context.Context, holdingID, userID uint, soldQuantity float64) (*entity.HoldingEntry, error)
	UpdateHoldingFunc    func(ctx context.Context, holdingID, userID uint, quantity, averagePrice *float64, notes *string) (*entity.HoldingEntry, error)
	DeleteHoldingFunc    func(ctx context.Context, holdingID, userID uint) error
}

func (m *mockHoldingsUsecase) GetUserHoldings(ctx context.Context, userID uint) ([]usecase.EnrichedHolding, string, error) {
	if m.GetUserHoldingsFunc != nil {
		return m.GetUserHoldingsFunc(ctx, userID)
	}
	return []usecase.EnrichedHolding{}, usecase.MsgEmptyHoldings, nil
}

func (m *mockHoldingsUsecase) GetUserPositions(ctx context.Context, userID uint) ([]usecase.PositionView, string, error) {
	if m.GetUserPositionsFunc != nil {
		return m.GetUserPositionsFunc(ctx, userID)
	}
	return []usecase.PositionView{}, usecase.MsgEmptyPositions, nil
}

func (m *mockHoldingsUsecase) RecordPurchase(ctx context.Context, userID uint, symbol string, quantity, averagePrice float64, notes string) (*entity.HoldingEntry, error) {
	if m.RecordPurchaseFunc != nil {
		return m.RecordPurchaseFunc(ctx, userID, symbol, quantity, averagePrice, notes)
	}
	return &entity.HoldingEntry{ID: 1, UserID: userID, Symbol: symbol, Quantity: quantity, AveragePrice: averagePrice}, nil
}

func (m *mockHoldingsUsecase) RecordSale(ctx context.Context, holdingID, userID uint, soldQuantity float64) (*entity.HoldingEntry, error) {
	if m.RecordSaleFunc != nil {
		return m.RecordSaleFunc(ctx, holdingID, userID, soldQuantity)
	}
	return nil, usecase.ErrHoldingNotFound
}

func (m *mockHoldingsUsecase) UpdateHolding(ctx context.Context, holdingID, userID uint, quantity, averagePrice *float64, notes *string) (*entity.HoldingEntry, error) {
	if m.UpdateHoldingFunc != nil {
		return m.UpdateHoldingFunc(ctx, holdingID, userID, quantity, averagePrice, notes)
	}
	return nil, usecase.ErrHoldingNotFound
}

func (m *mockHoldingsUsecase) DeleteHolding(ctx context.Context, holdingID, userID uint) error {
	if m.DeleteHoldingFunc != nil {
		return m.DeleteHoldingFunc(ctx, holdingID, userID)
	}
	return nil
}

func TestHoldingsHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns priced holdings", func(t *testing.T) {
		mockUC := &mockHoldingsUsecase{
			GetUserHoldingsFunc: func(ctx context.Context, userID uint) ([]usecase.EnrichedHolding, string, error) {
				return []usecase.EnrichedHolding{
					{ID: 1, Symbol: "AAPL", Quantity: 10, AveragePrice: 150, CurrentPrice: 180, CurrentValue: 1800, PnL: 300, PnLPercentage: 20},
				}, "", nil
			},
		}
		router := gin.New()
		router.GET("/market/user-holdings", asUser(1), NewHoldingsHandler(mockUC).List)

		w := performJSON(t, router, http.MethodGet, "/market/user-holdings", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("empty holdings carry the explanatory message", func(t *testing.T) {
		router := gin.New()
		router.GET("/market/user-holdings", asUser(1), NewHoldingsHandler(&mockHoldingsUsecase{}).List)

		w := performJSON(t, router, http.MethodGet, "/market/user-holdings", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), usecase.MsgEmptyHoldings)
	})
}

func TestHoldingsHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful buy returns 201", func(t *testing.T) {
		router := gin.New()
		router.POST("/market/user-holdings", asUser(1), NewHoldingsHandler(&mockHoldingsUsecase{}).Add)

		w := performJSON(t, router, http.MethodPost, "/market/user-holdings", gin.H{
			"symbol":       "AAPL",
			"quantity":     10,
			"averagePrice": 150.5,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Holding added successfully")
	})

	t.Run("non-positive quantity is rejected by binding", func(t *testing.T) {
		router := gin.New()
		router.POST("/market/user-holdings", asUser(1), NewHoldingsHandler(&mockHoldingsUsecase{}).Add)

		w := performJSON(t, router, http.MethodPost, "/market/user-holdings", gin.H{
			"symbol":       "AAPL",
			"quantity":     -5,
			"averagePrice": 150.5,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHoldingsHandler_Sell(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful sale returns the updated lot", func(t *testing.T) {
		mockUC := &mockHoldingsUsecase{
			RecordSaleFunc: func(ctx context.Context, holdingID, userID uint, soldQuantity float64) (*entity.HoldingEntry, error) {
				return &entity.HoldingEntry{ID: holdingID, UserID: userID, Symbol: "AAPL", Quantity: 6, AveragePrice: 150}, nil
			},
		}
		router := gin.New()
		router.POST("/market/user-holdings/:id/sell", asUser(1), NewHoldingsHandler(mockUC).Sell)

		w := performJSON(t, router, http.MethodPost, "/market/user-holdings/1/sell", gin.H{"quantity": 4})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Sale recorded successfully")
	})

	t.Run("oversell is a 400 with a specific message", func(t *testing.T) {
		mockUC := &mockHoldingsUsecase{
			RecordSaleFunc: func(ctx context.Context, holdingID, userID uint, soldQuantity float64) (*entity.HoldingEntry, error) {
				return nil, usecase.ErrInvalidQuantity
			},
		}
		router := gin.New()
		router.POST("/market/user-holdings/:id/sell", asUser(1), NewHoldingsHandler(mockUC).Sell)

		w := performJSON(t, router, http.MethodPost, "/market/user-holdings/1/sell", gin.H{"quantity": 999})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Cannot sell more than held quantity")
	})

	t.Run("missing holding is a 404", func(t *testing.T) {
		router := gin.New()
		router.POST("/market/user-holdings/:id/sell", asUser(1), NewHoldingsHandler(&mockHoldingsUsecase{}).Sell)

		w := performJSON(t, router, http.MethodPost, "/market/user-holdings/999/sell", gin.H{"quantity": 1})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is a 404", func(t *testing.T) {
		router := gin.New()
		router.POST("/market/user-holdings/:id/sell", asUser(1), NewHoldingsHandler(&mockHoldingsUsecase{}).Sell)

		w := performJSON(t, router, http.MethodPost, "/market/user-holdings/abc/sell", gin.H{"quantity": 1})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("zero quantity is rejected by binding", func(t *testing.T) {
		router := gin.New()
		router.POST("/market/user-holdings/:id/sell", asUser(1), NewHoldingsHandler(&mockHoldingsUsecase{}).Sell)

		w := performJSON(t, router, http.MethodPost, "/market/user-holdings/1/sell", gin.H{"quantity": 0})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHoldingsHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful delete", func(t *testing.T) {
		router := gin.New()
		router.DELETE("/market/user-holdings/:id", asUser(1), NewHoldingsHandler(&mockHoldingsUsecase{}).Delete)

		w := performJSON(t, router, http.MethodDelete, "/market/user-holdings/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Holding deleted successfully")
	})

	t.Run("missing holding is a 404", func(t *testing.T) {
		mockUC := &mockHoldingsUsecase{
			DeleteHoldingFunc: func(ctx context.Context, holdingID, userID uint) error {
				return usecase.ErrHoldingNotFound
			},
		}
		router := gin.New()
		router.DELETE("/market/user-holdings/:id", asUser(1), NewHoldingsHandler(mockUC).Delete)

		w := performJSON(t, router, http.MethodDelete, "/market/user-holdings/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
