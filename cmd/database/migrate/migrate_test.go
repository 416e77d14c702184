package migration_test

import (
	"context"
	"testing"

	migration "prep-scheduler/cmd/database/migrate"
	"prep-scheduler/entities"
	"prep-scheduler/internal/utils/testdb"
	"prep-scheduler/pkg/inventory"
	"prep-scheduler/pkg/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SeedsCatalogAndPurgesObsolete(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	repo := inventory.NewInventoryRepository(db)

	require.NoError(t, repo.SetQty(ctx, planner.ItemFishBelly, 7))
	require.NoError(t, repo.SetQty(ctx, planner.ItemSausage, 2))

	require.NoError(t, migration.Migrate(db))
	require.NoError(t, migration.Migrate(db))

	rows, err := repo.GetAll(ctx)
	require.NoError(t, err)

	byItem := map[string]*entities.InventoryLevel{}
	for _, r := range rows {
		byItem[r.Item] = r
	}
	assert.Len(t, byItem, len(planner.CatalogItems()))
	assert.NotContains(t, byItem, planner.ItemSausage)
	assert.Equal(t, 7.0, byItem[planner.ItemFishBelly].Qty)
	assert.Equal(t, 0.0, byItem[planner.ItemMeatSauce].Qty)
	assert.Equal(t, entities.DefaultDangerLevel, byItem[planner.ItemMeatSauce].DangerLevel)
}
