// Package adapters provides the repository implementation for the demo feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"tradefolio_backend/internal/feature/demo/domain/entity"
	"tradefolio_backend/internal/feature/demo/usecase"
)

// demoMySQL is the MySQL implementation of the DemoRepository interface.
type demoMySQL struct {
	db *gorm.DB
}

// Compile-time check that demoMySQL implements DemoRepository.
var _ usecase.DemoRepository = (*demoMySQL)(nil)

// NewDemoRepository creates a new demoMySQL bound to the given connection.
func NewDemoRepository(db *gorm.DB) *demoMySQL {
	return &demoMySQL{db: db}
}

// ListHoldings returns all demo holdings rows.
func (r *demoMySQL) ListHoldings(ctx context.Context) ([]entity.DemoHolding, error) {
	var rows []entity.DemoHolding
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPositions returns all demo positions rows.
func (r *demoMySQL) ListPositions(ctx context.Context) ([]entity.DemoPosition, error) {
	var rows []entity.DemoPosition
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Seed inserts the canned demo rows when the tables are empty. It runs once
// at startup and is idempotent.
func (r *demoMySQL) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DemoHolding{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := r.db.WithContext(ctx).Create(demoHoldings()).Error; err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).Model(&entity.DemoPosition{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := r.db.WithContext(ctx).Create(demoPositions()).Error; err != nil {
			return err
		}
	}
	return nil
}

func demoHoldings() []entity.DemoHolding {
	return []entity.DemoHolding{
		{Name: "BHARTIARTL", Qty: 2, Avg: 538.05, Price: 541.15, Net: "+0.58%", Day: "+2.99%"},
		{Name: "HDFCBANK", Qty: 2, Avg: 1383.4, Price: 1522.35, Net: "+10.04%", Day: "+0.11%"},
		{Name: "HINDUNILVR", Qty: 1, Avg: 2335.85, Price: 2417.4, Net: "+3.49%", Day: "+0.21%"},
		{Name: "INFY", Qty: 1, Avg: 1350.5, Price: 1555.45, Net: "+15.18%", Day: "-1.60%", IsLoss: true},
		{Name: "ITC", Qty: 5, Avg: 202.0, Price: 207.9, Net: "+2.92%", Day: "+0.80%"},
		{Name: "KPITTECH", Qty: 5, Avg: 250.3, Price: 266.45, Net: "+6.45%", Day: "+3.54%"},
		{Name: "M&M", Qty: 2, Avg: 809.9, Price: 779.8, Net: "-3.72%", Day: "-0.01%", IsLoss: true},
		{Name: "RELIANCE", Qty: 1, Avg: 2193.7, Price: 2112.4, Net: "-3.71%", Day: "+1.44%"},
		{Name: "SBIN", Qty: 4, Avg: 324.35, Price: 430.2, Net: "+32.63%", Day: "-0.34%", IsLoss: true},
		{Name: "SGBMAY29", Qty: 2, Avg: 4727.0, Price: 4719.0, Net: "-0.17%", Day: "+0.15%"},
		{Name: "TATAPOWER", Qty: 5, Avg: 104.2, Price: 124.15, Net: "+19.15%", Day: "-0.24%", IsLoss: true},
		{Name: "TCS", Qty: 1, Avg: 3041.7, Price: 3194.8, Net: "+5.03%", Day: "-0.25%", IsLoss: true},
		{Name: "WIPRO", Qty: 4, Avg: 489.3, Price: 577.75, Net: "+18.08%", Day: "+0.32%"},
	}
}

func demoPositions() []entity.DemoPosition {
	return []entity.DemoPosition{
		{Product: "CNC", Name: "EVEREADY", Qty: 2, Avg: 316.27, Price: 312.35, Net: "+0.58%", Day: "-1.24%", IsLoss: true},
		{Product: "CNC", Name: "JUBLFOOD", Qty: 1, Avg: 3124.75, Price: 3082.65, Net: "+10.04%", Day: "-1.35%", IsLoss: true},
	}
}
