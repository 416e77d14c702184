package planner

import "strings"

// fishMeatMarkers are task-description fragments that mean fish meat is
// consumed on the target day.
var fishMeatMarkers = []string{ItemCrispyBall, ItemShrimpMeatBall, ItemShrimpBall, ItemMeatBall}

// FormatPlan applies the display rules to a plan before it is shown or read
// back as confirmed:
//   - crispy-ball is never delivered directly and is dropped;
//   - fish-meat is shown as a whole number, and only when one of the target
//     day's pending tasks makes crispy balls or shrimp/meat balls;
//   - everything else is rounded to one decimal.
func FormatPlan(plan map[string]float64, pendingTaskDescriptions []string) map[string]float64 {
	needsFishMeat := false
	for _, desc := range pendingTaskDescriptions {
		for _, marker := range fishMeatMarkers {
			if strings.Contains(desc, marker) {
				needsFishMeat = true
			}
		}
	}

	out := make(map[string]float64, len(plan))
	for item, qty := range plan {
		switch item {
		case ItemCrispyBall:
			continue
		case ItemFishMeat:
			if needsFishMeat {
				out[item] = truncateToInt(qty)
			}
		default:
			// meat-sauce included
			out[item] = roundTo(qty, 1)
		}
	}
	return out
}
