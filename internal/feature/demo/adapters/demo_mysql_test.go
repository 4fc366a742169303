package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tradefolio_backend/internal/feature/demo/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.DemoHolding{}, &entity.DemoPosition{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestDemoMySQL_Seed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDemoRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	holdings, err := repo.ListHoldings(ctx)
	require.NoError(t, err)
	assert.Len(t, holdings, 13)

	positions, err := repo.ListPositions(ctx)
	require.NoError(t, err)
	assert.Len(t, positions, 2)

	// Seeding again must not duplicate rows.
	require.NoError(t, repo.Seed(ctx))

	holdings, err = repo.ListHoldings(ctx)
	require.NoError(t, err)
	assert.Len(t, holdings, 13)

	positions, err = repo.ListPositions(ctx)
	require.NoError(t, err)
	assert.Len(t, positions, 2)
}

func TestDemoMySQL_ListHoldings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDemoRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	holdings, err := repo.ListHoldings(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, holdings)

	// Rows come back ordered by id, matching insert order.
	assert.Equal(t, "BHARTIARTL", holdings[0].Name)
	assert.Equal(t, "WIPRO", holdings[len(holdings)-1].Name)
	for i := 1; i < len(holdings); i++ {
		assert.Less(t, holdings[i-1].ID, holdings[i].ID)
	}
}

func TestDemoMySQL_ListPositions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDemoRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	positions, err := repo.ListPositions(ctx)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	assert.Equal(t, "EVEREADY", positions[0].Name)
	assert.Equal(t, "JUBLFOOD", positions[1].Name)
	assert.Equal(t, "CNC", positions[0].Product)
}
