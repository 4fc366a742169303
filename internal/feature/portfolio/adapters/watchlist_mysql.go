// Package adapters provides the repository implementations for the portfolio feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"tradefolio_backend/internal/feature/portfolio/domain/entity"
	"tradefolio_backend/internal/feature/portfolio/usecase"
)

// watchlistMySQL is the MySQL implementation of the WatchlistRepository interface.
type watchlistMySQL struct {
	db *gorm.DB
}

// Compile-time check that watchlistMySQL implements WatchlistRepository.
var _ usecase.WatchlistRepository = (*watchlistMySQL)(nil)

// NewWatchlistRepository creates a new watchlistMySQL bound to the given connection.
func NewWatchlistRepository(db *gorm.DB) *watchlistMySQL {
	return &watchlistMySQL{db: db}
}

// ListByUser returns all watchlist entries owned by the user.
func (r *watchlistMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.WatchlistEntry, error) {
	var rows []entity.WatchlistEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByUserAndSymbol returns the entry for the (user, symbol) pair.
func (r *watchlistMySQL) FindByUserAndSymbol(ctx context.Context, userID uint, symbol string) (*entity.WatchlistEntry, error) {
	var e entity.WatchlistEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create inserts a new entry. The (user_id, symbol) unique index is the
// storage-level defense against duplicates; its rejection surfaces as
// usecase.ErrDuplicateSymbol so callers can treat it as a conflict rather
// than a generic failure.
func (r *watchlistMySQL) Create(ctx context.Context, e *entity.WatchlistEntry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrDuplicateSymbol
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateSymbol
		}
		return err
	}
	return nil
}

// Update replaces the alert price and notes in place. Nil fields are left
// untouched.
func (r *watchlistMySQL) Update(ctx context.Context, userID uint, symbol string, alertPrice *float64, notes *string) (*entity.WatchlistEntry, error) {
	// Existence check first: MySQL reports zero affected rows for no-op
	// updates, which must not read as not-found.
	if _, err := r.FindByUserAndSymbol(ctx, userID, symbol); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if alertPrice != nil {
		updates["alert_price"] = *alertPrice
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&entity.WatchlistEntry{}).
			Where("user_id = ? AND symbol = ?", userID, symbol).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByUserAndSymbol(ctx, userID, symbol)
}

// DeleteByUserAndSymbol removes the entry for the (user, symbol) pair.
func (r *watchlistMySQL) DeleteByUserAndSymbol(ctx context.Context, userID uint, symbol string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&entity.WatchlistEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}
