package schedule

import "encoding/json"

// =============================================================================
// PRESET PLAN JSON - Common rotations, ready for factory.ParsePlan
// =============================================================================
//
// Usage:
//   jsonStr := schedule.FourOnFourOffJSON("rotation-4x4", "4 on / 4 off")
//   plan, err := factory.ParsePlan(jsonStr)

// FourOnFourOffJSON returns JSON for the classic shift rotation: four
// working days followed by four days off.
func FourOnFourOffJSON(id, name string) string {
	return presetJSON(id, name, "Four working days followed by four days off", 4, 4, 720)
}

// FiveTwoJSON returns JSON for a standard office week: five working days,
// two days off.
func FiveTwoJSON(id, name string) string {
	return presetJSON(id, name, "Five working days followed by a two-day weekend", 5, 2, DefaultMinutesPerDay)
}

// OneOnThreeOffJSON returns JSON for a one-day-on, three-days-off rotation,
// common for 24-hour duty shifts.
func OneOnThreeOffJSON(id, name string) string {
	return presetJSON(id, name, "One duty day followed by three days off", 1, 3, 1440)
}

func presetJSON(id, name, description string, workDays, offDays, minutesPerDay int) string {
	pj := map[string]interface{}{
		"id":          id,
		"name":        name,
		"description": description,
		"cycle": map[string]interface{}{
			"work_days": workDays,
			"off_days":  offDays,
		},
		"minutes_per_day": minutesPerDay,
	}
	b, _ := json.MarshalIndent(pj, "", "  ")
	return string(b)
}
