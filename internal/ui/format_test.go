package ui

import (
	"testing"
	"time"
)

func TestFormatWeight(t *testing.T) {
	if got := formatWeight(72.5, "kg"); got != "72.5 kg" {
		t.Fatalf("formatWeight kg = %q", got)
	}
	if got := formatWeight(45.359237, "lb"); got != "100.0 lb" {
		t.Fatalf("formatWeight lb = %q", got)
	}
}

func TestFormatMetric_HidesZero(t *testing.T) {
	if got := formatMetric(0, "%"); got != "-" {
		t.Fatalf("formatMetric(0) = %q, want -", got)
	}
	if got := formatMetric(21.3, "%"); got != "21.3%" {
		t.Fatalf("formatMetric = %q", got)
	}
	if got := formatMetric(23.9, ""); got != "23.9" {
		t.Fatalf("formatMetric = %q", got)
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Time{}, "never"},
		{now.Add(-30 * time.Second), "30s ago"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
		{now.Add(time.Minute), "0s ago"},
	}
	for _, tc := range cases {
		if got := formatAge(tc.at, now); got != tc.want {
			t.Errorf("formatAge(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("waist"); got != "Waist" {
		t.Fatalf("titleCase = %q", got)
	}
	if got := titleCase(""); got != "" {
		t.Fatalf("titleCase empty = %q", got)
	}
}
