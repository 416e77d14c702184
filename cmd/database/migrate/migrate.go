package migration

import (
	"context"
	"prep-scheduler/entities"
	"prep-scheduler/internal/utils"
	"prep-scheduler/pkg/inventory"
	"prep-scheduler/pkg/planner"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates the tables, seeds an inventory row for every catalog item
// and drops rows for item names that are no longer stocked.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(entities.Models()...); err != nil {
		utils.LogError("migration", "Migrate", "auto migrate", nil, err)
		return err
	}

	ctx := context.Background()
	repo := inventory.NewInventoryRepository(db)
	if err := repo.EnsureItems(ctx, planner.CatalogItems()); err != nil {
		utils.LogError("migration", "Migrate", "seed inventory", nil, err)
		return err
	}

	removed, err := repo.DeleteItems(ctx, planner.ObsoleteItems())
	if err != nil {
		utils.LogError("migration", "Migrate", "remove obsolete items", planner.ObsoleteItems(), err)
		return err
	}

	utils.GetLogger().WithFields(logrus.Fields{
		"module":          "migration",
		"obsolete_purged": removed,
	}).Info("database migration complete")
	return nil
}
