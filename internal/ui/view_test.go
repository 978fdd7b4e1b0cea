package ui

import (
	"testing"

	"github.com/renpho-home/renpho-go/renpho"
)

func TestLatestGirths_SkipsZeroAndPrefersNewest(t *testing.T) {
	history := []renpho.Girth{
		{TimeStamp: 100, WaistValue: 80, NeckValue: 38},
		{TimeStamp: 200, WaistValue: 0, NeckValue: 37.5},
	}

	rows := latestGirths(history)

	byLabel := make(map[string]float64, len(rows))
	for _, r := range rows {
		byLabel[r.label] = r.value
	}
	if byLabel["Waist"] != 80 {
		t.Fatalf("Waist = %v, want 80 from the older non-zero entry", byLabel["Waist"])
	}
	if byLabel["Neck"] != 37.5 {
		t.Fatalf("Neck = %v, want 37.5 from the newest entry", byLabel["Neck"])
	}
	if _, ok := byLabel["Hip"]; ok {
		t.Fatal("Hip present despite never being measured")
	}
}

func TestLatestGirths_EmptyHistory(t *testing.T) {
	if rows := latestGirths(nil); rows != nil {
		t.Fatalf("latestGirths(nil) = %v, want nil", rows)
	}
}

func TestLatestGoals_KeepsNewestPerType(t *testing.T) {
	goals := []renpho.GirthGoal{
		{GirthType: "waist", GoalValue: 78, SetupGoalAt: 100},
		{GirthType: "waist", GoalValue: 75, SetupGoalAt: 200},
		{GirthType: "hip", GoalValue: 95, SetupGoalAt: 150},
	}

	out := latestGoals(goals)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	// Sorted by type: hip, waist.
	if out[0].GirthType != "hip" || out[0].GoalValue != 95 {
		t.Fatalf("out[0] = %+v", out[0])
	}
	if out[1].GirthType != "waist" || out[1].GoalValue != 75 {
		t.Fatalf("out[1] = %+v, want newest waist goal", out[1])
	}
}

func TestModelView_NotReadyShowsLoading(t *testing.T) {
	m := New(Options{ThemeName: "Dracula"})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before WindowSizeMsg = %q", got)
	}
}

func TestNew_DefaultsUnitsAndTheme(t *testing.T) {
	m := New(Options{Units: "stone", ThemeName: "bogus"})
	if m.units != "kg" {
		t.Fatalf("units = %q, want kg", m.units)
	}
	if m.theme.Name != "Dracula" {
		t.Fatalf("theme = %q, want Dracula", m.theme.Name)
	}
}
