package planner

const (
	TaskDeboneFish = "debone-fish"

	// One deboning run yields this much stock, whatever the task quantity says.
	DeboneFishMeatYield = 3.0
	DeboneFishSkinYield = 4.0
)

// QuantizeTask maps an item and its intensity to a task label and a
// discrete quantity. Composite items get a zero placeholder quantity which
// is decided on site.
func QuantizeTask(item string, intensity float64) (string, float64) {
	switch item {
	case ItemFishBelly:
		switch {
		case intensity >= 0.85:
			return ItemFishBelly, 6.0
		case intensity >= 0.65:
			return ItemFishBelly, 5.0
		case intensity >= 0.45:
			return ItemFishBelly, 4.0
		default:
			return ItemFishBelly, 3.0
		}
	case ItemFishSkin:
		return ItemFishSkin, 4.0
	case ItemFishMeat:
		return TaskDeboneFish, 1.0
	case ItemSteamedPowder:
		return ItemSteamedPowder, 8.0
	case ItemCrispyBall:
		switch {
		case intensity >= 0.8:
			return "crispy-ball-9", 5.5
		case intensity >= 0.5:
			return "crispy-ball-8", 5.0
		default:
			return "crispy-ball-7", 4.5
		}
	case ItemQSausage, ItemPorkSausage, ItemSausage:
		return ItemSausage, 0.0
	case ItemShrimpBall, ItemMeatBall, ItemShrimpMeatBall:
		return ItemShrimpMeatBall, 0.0
	case ItemMeatSauce:
		return ItemMeatSauce, 8.0
	default:
		return item, 0.0
	}
}

// TaskDescription is the free-text description stored on a generated task.
func TaskDescription(label string) string {
	return "prep " + label
}
