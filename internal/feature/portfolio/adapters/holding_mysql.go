package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/usecase"
)

// holdingMySQL is the MySQL implementation of the HoldingRepository interface.
type holdingMySQL struct {
	db *gorm.DB
}

// Compile-time check that holdingMySQL implements HoldingRepository.
var _ usecase.HoldingRepository = (*holdingMySQL)(nil)

// NewHoldingRepository creates a new holdingMySQL bound to the given connection.
func NewHoldingRepository(db *gorm.DB) *holdingMySQL {
	return &holdingMySQL{db: db}
}

// ListByUser returns all holding lots owned by the user.
func (r *holdingMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.HoldingEntry, error) {
	var rows []entity.HoldingEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByIDAndUser returns the lot when it exists and is owned by the user.
func (r *holdingMySQL) FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.HoldingEntry, error) {
	var h entity.HoldingEntry
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrHoldingNotFound
		}
		return nil, err
	}
	return &h, nil
}

// Create persists a new holding lot.
func (r *holdingMySQL) Create(ctx context.Context, h *entity.HoldingEntry) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// Update applies the non-nil fields to the lot.
func (r *holdingMySQL) Update(ctx context.Context, id, userID uint, quantity, averagePrice *float64, notes *string) (*entity.HoldingEntry, error) {
	if _, err := r.FindByIDAndUser(ctx, id, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if quantity != nil {
		updates["quantity"] = *quantity
	}
	if averagePrice != nil {
		updates["average_price"] = *averagePrice
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&entity.HoldingEntry{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByIDAndUser(ctx, id, userID)
}

// DecrementQuantity subtracts qty from the lot in a single conditional
// UPDATE. The `quantity >= ?` guard makes the read-then-write sale path
// safe against concurrent sales on the same lot: the losing request
// affects zero rows and gets ErrInvalidQuantity.
func (r *holdingMySQL) DecrementQuantity(ctx context.Context, id, userID uint, qty float64) error {
	res := r.db.WithContext(ctx).
		Model(&entity.HoldingEntry{}).
		Where("id = ? AND user_id = ? AND quantity >= ?", id, userID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing lot from an oversell.
		if _, err := r.FindByIDAndUser(ctx, id, userID); err != nil {
			return err
		}
		return usecase.ErrInvalidQuantity
	}
	return nil
}

// DeleteByIDAndUser removes the lot when owned by the user.
func (r *holdingMySQL) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.HoldingEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrHoldingNotFound
	}
	return nil
}
