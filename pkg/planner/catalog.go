// Package planner holds the delivery-planning and prep-scheduling rules.
// Everything here is pure: callers pass the time anchor, inventory snapshot
// and weather label in, and persist whatever comes out.
package planner

import "sort"

const (
	ItemFishBelly     = "fish-belly"
	ItemFishSkin      = "fish-skin"
	ItemFishMeat      = "fish-meat"
	ItemSteamedPowder = "steamed-powder"
	ItemQSausage      = "q-sausage"
	ItemPorkSausage   = "pork-sausage"
	ItemCrispyBall    = "crispy-ball"
	ItemShrimpBall    = "shrimp-ball"
	ItemMeatBall      = "meat-ball"
	ItemMeatSauce     = "meat-sauce"

	// Composite names exist only on schedule tasks.
	ItemSausage        = "sausage"
	ItemShrimpMeatBall = "shrimp-meat-ball"
)

type CatalogEntry struct {
	Item            string
	AverageDelivery float64
}

var catalog = []CatalogEntry{
	{Item: ItemFishBelly, AverageDelivery: 3.0},
	{Item: ItemFishSkin, AverageDelivery: 2.0},
	{Item: ItemFishMeat, AverageDelivery: 3.0},
	{Item: ItemSteamedPowder, AverageDelivery: 2.0},
	{Item: ItemQSausage, AverageDelivery: 1.0},
	{Item: ItemPorkSausage, AverageDelivery: 1.0},
	{Item: ItemCrispyBall, AverageDelivery: 0.8},
	{Item: ItemShrimpBall, AverageDelivery: 1.0},
	{Item: ItemMeatBall, AverageDelivery: 0.5},
	{Item: ItemMeatSauce, AverageDelivery: 0.5},
}

var compositeParts = map[string][2]string{
	ItemSausage:        {ItemQSausage, ItemPorkSausage},
	ItemShrimpMeatBall: {ItemShrimpBall, ItemMeatBall},
}

// Catalog returns a copy of the item catalog in its canonical order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogItems returns the catalog item names in canonical order.
func CatalogItems() []string {
	items := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		items = append(items, entry.Item)
	}
	return items
}

// ObsoleteItems lists inventory rows that must not survive startup.
func ObsoleteItems() []string {
	return []string{ItemSausage, ItemShrimpMeatBall}
}

func IsComposite(item string) bool {
	_, ok := compositeParts[item]
	return ok
}

// CompositeParts returns the two physical items merged into a composite.
func CompositeParts(item string) ([2]string, bool) {
	parts, ok := compositeParts[item]
	return parts, ok
}

func catalogIndex(item string) int {
	for i, entry := range catalog {
		if entry.Item == item {
			return i
		}
	}
	return len(catalog)
}

// SortByCatalog orders items by catalog position; unknown items go last, alphabetically.
func SortByCatalog(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := catalogIndex(items[i]), catalogIndex(items[j])
		if ci != cj {
			return ci < cj
		}
		return items[i] < items[j]
	})
}
