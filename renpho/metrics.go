package renpho

import (
	"context"
	"log"
	"sort"
)

// Metric categories accepted by Metric.
const (
	CategoryWeight    = "weight"
	CategoryGirth     = "girth"
	CategoryGirthGoal = "girth_goals"
)

// Accessor registries map metric names to field accessors per category, so
// lookups are explicit functions instead of runtime field reflection.

var measurementAccessors = map[string]func(Measurement) float64{
	"weight":    func(m Measurement) float64 { return m.Weight },
	"bmi":       func(m Measurement) float64 { return m.BMI },
	"muscle":    func(m Measurement) float64 { return m.Muscle },
	"bone":      func(m Measurement) float64 { return m.Bone },
	"waistline": func(m Measurement) float64 { return m.Waistline },
	"hip":       func(m Measurement) float64 { return m.Hip },
	"stature":   func(m Measurement) float64 { return m.Stature },
	"bodyfat":   func(m Measurement) float64 { return m.Bodyfat },
	"water":     func(m Measurement) float64 { return m.Water },
	"subfat":    func(m Measurement) float64 { return m.Subfat },
	"visfat":    func(m Measurement) float64 { return m.Visfat },
	"bmr":       func(m Measurement) float64 { return m.BMR },
	"protein":   func(m Measurement) float64 { return m.Protein },
	"bodyage":   func(m Measurement) float64 { return m.Bodyage },
}

var girthAccessors = map[string]func(Girth) float64{
	"neck":        func(g Girth) float64 { return g.NeckValue },
	"shoulder":    func(g Girth) float64 { return g.ShoulderValue },
	"arm":         func(g Girth) float64 { return g.ArmValue },
	"chest":       func(g Girth) float64 { return g.ChestValue },
	"waist":       func(g Girth) float64 { return g.WaistValue },
	"hip":         func(g Girth) float64 { return g.HipValue },
	"thigh":       func(g Girth) float64 { return g.ThighValue },
	"calf":        func(g Girth) float64 { return g.CalfValue },
	"left_arm":    func(g Girth) float64 { return g.LeftArmValue },
	"left_thigh":  func(g Girth) float64 { return g.LeftThighValue },
	"left_calf":   func(g Girth) float64 { return g.LeftCalfValue },
	"right_arm":   func(g Girth) float64 { return g.RightArmValue },
	"right_thigh": func(g Girth) float64 { return g.RightThighValue },
	"right_calf":  func(g Girth) float64 { return g.RightCalfValue },
	"whr":         func(g Girth) float64 { return g.WhrValue },
	"abdomen":     func(g Girth) float64 { return g.AbdomenValue },
}

// MetricNames returns the metric names known for a category, for hosts that
// enumerate sensors up front. Girth goals share the girth name set.
func MetricNames(category string) []string {
	var names []string
	switch category {
	case CategoryWeight:
		for name := range measurementAccessors {
			names = append(names, name)
		}
	case CategoryGirth, CategoryGirthGoal:
		for name := range girthAccessors {
			names = append(names, name)
		}
	default:
		return nil
	}
	sort.Strings(names)
	return names
}

// Metric returns the most recent non-zero value for the named metric in the
// given category, or false when no qualifying reading exists. A non-zero
// userID retargets this and subsequent fetches at that scale user.
//
// Weight metrics are served purely from the cache populated by polling.
// Girth and girth-goal metrics fetch lazily when their cache is empty, then
// pick the newest entry whose value is present and non-zero; zero is always
// "no reading", never a real value.
func (c *Client) Metric(ctx context.Context, category, name string, userID int64) (float64, bool) {
	if userID != 0 {
		c.SetUserID(userID)
	}

	switch category {
	case CategoryWeight:
		accessor, ok := measurementAccessors[name]
		if !ok {
			log.Printf("renpho: unknown weight metric %q", name)
			return 0, false
		}
		m, ok := c.weight.get()
		if !ok {
			return 0, false
		}
		value := accessor(m)
		return value, value != 0

	case CategoryGirth:
		accessor, ok := girthAccessors[name]
		if !ok {
			log.Printf("renpho: unknown girth metric %q", name)
			return 0, false
		}
		girths, ok := c.girths.get()
		if !ok {
			girths = c.FetchGirths(ctx)
		}
		return latestGirthValue(girths, accessor)

	case CategoryGirthGoal:
		goals, ok := c.girthGoals.get()
		if !ok {
			goals = c.FetchGirthGoals(ctx)
		}
		return latestGoalValue(goals, name)

	default:
		log.Printf("renpho: unknown metric category %q", category)
		return 0, false
	}
}

// latestGirthValue picks the newest entry with a non-zero value for the
// accessed field.
func latestGirthValue(girths []Girth, accessor func(Girth) float64) (float64, bool) {
	valid := make([]Girth, 0, len(girths))
	for _, g := range girths {
		if accessor(g) != 0 {
			valid = append(valid, g)
		}
	}
	if len(valid) == 0 {
		return 0, false
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].TimeStamp > valid[j].TimeStamp
	})
	return accessor(valid[0]), true
}

// latestGoalValue picks the newest non-zero goal of the given girth type.
func latestGoalValue(goals []GirthGoal, girthType string) (float64, bool) {
	valid := make([]GirthGoal, 0, len(goals))
	for _, g := range goals {
		if g.GirthType == girthType && g.GoalValue != 0 {
			valid = append(valid, g)
		}
	}
	if len(valid) == 0 {
		return 0, false
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].SetupGoalAt > valid[j].SetupGoalAt
	})
	return valid[0].GoalValue, true
}
