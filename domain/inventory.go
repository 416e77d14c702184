package domain

var (
	MessageSuccessGetInventory       = "inventory retrieved successfully"
	MessageSuccessUpdateInventory    = "inventory updated"
	MessageSuccessUpdateDangerLevels = "danger levels updated"

	MessageFailedGetInventory       = "failed to retrieve inventory"
	MessageFailedUpdateInventory    = "failed to update inventory"
	MessageFailedUpdateDangerLevels = "failed to update danger levels"
)

type (
	InventoryEntry struct {
		Qty         float64 `json:"qty"`
		DangerLevel float64 `json:"danger_level"`
	}

	// InventoryResponse is keyed by item name.
	InventoryResponse map[string]InventoryEntry

	UpdateInventoryRequest struct {
		Updates map[string]float64 `json:"updates" validate:"required,min=1,dive,keys,required,endkeys"`
	}

	UpdateDangerLevelsRequest struct {
		DangerLevels map[string]float64 `json:"danger_levels" validate:"required,min=1,dive,keys,required,endkeys,gte=0"`
	}
)
