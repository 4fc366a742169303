// Package usecase serves the legacy demo dashboard data.
package usecase

import (
	"context"

	"tradefolio_backend/internal/feature/demo/domain/entity"
)

// DemoRepository abstracts the persistence layer for the demo rows.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DemoRepository interface {
	// ListHoldings returns all demo holdings rows.
	ListHoldings(ctx context.Context) ([]entity.DemoHolding, error)

	// ListPositions returns all demo positions rows.
	ListPositions(ctx context.Context) ([]entity.DemoPosition, error)

	// Seed inserts the canned rows when the tables are empty.
	Seed(ctx context.Context) error
}

// demoUsecase provides read access to the demo data.
type demoUsecase struct {
	repo DemoRepository
}

// NewDemoUsecase creates a new demoUsecase instance.
func NewDemoUsecase(repo DemoRepository) *demoUsecase {
	return &demoUsecase{repo: repo}
}

// GetHoldings returns the demo holdings rows.
func (u *demoUsecase) GetHoldings(ctx context.Context) ([]entity.DemoHolding, error) {
	return u.repo.ListHoldings(ctx)
}

// GetPositions returns the demo positions rows.
func (u *demoUsecase) GetPositions(ctx context.Context) ([]entity.DemoPosition, error) {
	return u.repo.ListPositions(ctx)
}
