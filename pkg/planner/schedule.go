package planner

import (
	"strings"
	"time"
)

// LookaheadDays is how far ahead a generated task may be placed.
const LookaheadDays = 7

type InventorySnapshot struct {
	Item        string
	Qty         float64
	DangerLevel float64
}

// PendingTask is an undone task already on the schedule.
type PendingTask struct {
	Item    string
	Weekday string
}

type ScheduleInput struct {
	Today        time.Time
	Weather      WeatherLabel
	Inventory    []InventorySnapshot
	Leftovers    map[string]float64
	PendingTasks []PendingTask
}

type PlannedTask struct {
	Item        string
	Label       string
	Description string
	Qty         float64
	Intensity   float64
	Day         time.Time
	Weekday     string
}

// ScheduleResult also reports low items that found no free day; they stay
// unlocked and are retried on the next run.
type ScheduleResult struct {
	Tasks        []PlannedTask
	Unplaced     []string
	Locked       []string
	CalendarType CalendarType
}

// LowItems returns the items that need a prep task: everything under its
// danger level, fish-meat whenever fish-skin is low, with sausage and
// shrimp/meat-ball sub-items folded into their composites.
func LowItems(inventory []InventorySnapshot) []string {
	var low []string
	fishSkinLow := false
	for _, inv := range inventory {
		if inv.Qty < inv.DangerLevel {
			low = append(low, inv.Item)
			if inv.Item == ItemFishSkin {
				fishSkinLow = true
			}
		}
	}
	SortByCatalog(low)

	if fishSkinLow && !contains(low, ItemFishMeat) {
		low = append(low, ItemFishMeat)
	}

	for _, composite := range []string{ItemSausage, ItemShrimpMeatBall} {
		parts := compositeParts[composite]
		if !contains(low, parts[0]) && !contains(low, parts[1]) {
			continue
		}
		kept := low[:0]
		for _, item := range low {
			if item != parts[0] && item != parts[1] {
				kept = append(kept, item)
			}
		}
		low = append(kept, composite)
	}
	return dedupe(low)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// BuildSchedule decides which new prep tasks to create and on which day.
// Items with a pending task are locked and skipped, so running it again
// against the same state yields nothing new.
func BuildSchedule(in ScheduleInput) ScheduleResult {
	today := DateOnly(in.Today)
	tomorrow := today.AddDate(0, 0, 1)
	dt := ClassifyDate(tomorrow)
	base := ComputeBaseline(dt, in.Weather, 1.0)

	locked := make(map[string]bool, len(in.PendingTasks))
	occupied := make(map[string]bool, len(in.PendingTasks))
	for _, t := range in.PendingTasks {
		locked[t.Item] = true
		occupied[t.Weekday] = true
	}

	result := ScheduleResult{CalendarType: dt}
	for _, item := range LowItems(in.Inventory) {
		if locked[item] {
			result.Locked = append(result.Locked, item)
			continue
		}

		baseQty, leftoverQty := referenceQty(item, base, in.Leftovers)
		intensity := ComputeIntensity(IntensityInput{
			NextDayQty:   baseQty,
			LeftoverQty:  leftoverQty,
			Weather:      in.Weather,
			CalendarType: dt,
			Item:         item,
		})
		label, qty := QuantizeTask(item, intensity)

		day, ok := nextFreeDay(today, occupied)
		if !ok {
			result.Unplaced = append(result.Unplaced, item)
			continue
		}
		weekday := WeekdayName(day)
		occupied[weekday] = true
		locked[item] = true
		result.Tasks = append(result.Tasks, PlannedTask{
			Item:        item,
			Label:       label,
			Description: TaskDescription(label),
			Qty:         qty,
			Intensity:   intensity,
			Day:         day,
			Weekday:     weekday,
		})
	}
	return result
}

func referenceQty(item string, base, leftovers map[string]float64) (float64, float64) {
	if parts, ok := compositeParts[item]; ok {
		return base[parts[0]] + base[parts[1]], leftovers[parts[0]] + leftovers[parts[1]]
	}
	return base[item], leftovers[item]
}

func nextFreeDay(today time.Time, occupied map[string]bool) (time.Time, bool) {
	for i := 1; i <= LookaheadDays; i++ {
		d := today.AddDate(0, 0, i)
		if ClassifyDate(d) != CalendarWeekday {
			continue
		}
		if occupied[WeekdayName(d)] {
			continue
		}
		return d, true
	}
	return time.Time{}, false
}

// CompletionEffect returns the inventory increments caused by finishing a
// task. Deboning converts into fish meat and fish skin at a fixed yield;
// composite tasks leave inventory alone since their quantity is counted
// on site.
func CompletionEffect(item, description string, qty float64) map[string]float64 {
	if item == ItemFishMeat && strings.Contains(description, TaskDeboneFish) {
		return map[string]float64{
			ItemFishMeat: DeboneFishMeatYield,
			ItemFishSkin: DeboneFishSkinYield,
		}
	}
	if IsComposite(item) {
		return map[string]float64{}
	}
	return map[string]float64{item: qty}
}

func contains(items []string, item string) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
