package ui

import (
	"fmt"
	"strings"
	"time"
)

const kgPerPound = 0.45359237

// formatWeight renders a kilogram value in the requested unit.
func formatWeight(kg float64, units string) string {
	if units == "lb" {
		return fmt.Sprintf("%.1f lb", kg/kgPerPound)
	}
	return fmt.Sprintf("%.1f kg", kg)
}

// formatMetric renders a body-composition value, hiding zero readings.
func formatMetric(value float64, suffix string) string {
	if value == 0 {
		return "-"
	}
	if suffix == "" {
		return fmt.Sprintf("%.1f", value)
	}
	return fmt.Sprintf("%.1f%s", value, suffix)
}

// formatAge renders a relative age like "3m ago".
func formatAge(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// formatStamp renders an absolute timestamp for the weight panel.
func formatStamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// titleCase upper-cases the first letter of a girth type like "waist".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
