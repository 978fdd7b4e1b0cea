package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renpho-home/renpho-go/renpho"
)

func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderWeightPanel(),
		m.renderCompositionPanel(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderGirthPanel(),
		m.renderGoalPanel(),
		m.renderDevicePanel(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	title := m.styles.AccentText.Render("renpho-watch")
	status := m.styles.MutedText.Render("updated " + formatAge(m.snapshot.LastUpdated, time.Now()))
	if m.refreshing {
		status = m.spin.View() + " " + m.styles.MutedText.Render("refreshing")
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(m.width).Render(title + strings.Repeat(" ", gap) + status)
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	parts = append(parts, "theme "+m.theme.Name)
	return m.styles.Footer.Width(m.width).Render(strings.Join(parts, "  |  "))
}

func (m Model) renderWeightPanel() string {
	var lines []string
	if m.snapshot.HasWeight {
		w := m.snapshot.Weight
		lines = append(lines,
			m.styles.BigValue.Render(formatWeight(w.Weight, m.units)),
			m.styles.MutedText.Render("weighed "+formatStamp(m.snapshot.LastWeighed)),
		)
		if w.ScaleName != "" {
			lines = append(lines, m.styles.MutedText.Render("scale "+w.ScaleName))
		}
	} else {
		lines = append(lines, m.styles.MutedText.Render("no measurement yet"))
	}
	return m.panel("Weight", lines)
}

func (m Model) renderCompositionPanel() string {
	if !m.snapshot.HasWeight {
		return m.panel("Body Composition", []string{m.styles.MutedText.Render("waiting for data")})
	}
	w := m.snapshot.Weight
	rows := []struct {
		label string
		value string
	}{
		{"BMI", formatMetric(w.BMI, "")},
		{"Body fat", formatMetric(w.Bodyfat, "%")},
		{"Water", formatMetric(w.Water, "%")},
		{"Muscle", formatMetric(w.Muscle, "%")},
		{"Bone", formatMetric(w.Bone, " kg")},
		{"Protein", formatMetric(w.Protein, "%")},
		{"Visceral fat", formatMetric(w.Visfat, "")},
		{"Subcutaneous", formatMetric(w.Subfat, "%")},
		{"BMR", formatMetric(w.BMR, " kcal")},
		{"Body age", formatMetric(w.Bodyage, "")},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, m.metricLine(r.label, r.value))
	}
	return m.panel("Body Composition", lines)
}

func (m Model) renderGirthPanel() string {
	rows := latestGirths(m.snapshot.Girths)
	if len(rows) == 0 {
		return m.panel("Girths", []string{m.styles.MutedText.Render("none recorded")})
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, m.metricLine(r.label, fmt.Sprintf("%.1f cm", r.value)))
	}
	return m.panel("Girths", lines)
}

func (m Model) renderGoalPanel() string {
	goals := latestGoals(m.snapshot.GirthGoals)
	if len(goals) == 0 {
		return m.panel("Goals", []string{m.styles.MutedText.Render("none set")})
	}
	lines := make([]string, 0, len(goals))
	for _, g := range goals {
		lines = append(lines, m.metricLine(titleCase(g.GirthType), fmt.Sprintf("%.1f cm", g.GoalValue)))
	}
	return m.panel("Goals", lines)
}

func (m Model) renderDevicePanel() string {
	devices := m.snapshot.Devices
	if len(devices) == 0 {
		return m.panel("Scales", []string{m.styles.MutedText.Render("none bound")})
	}
	lines := make([]string, 0, len(devices))
	for _, d := range devices {
		name := d.ScaleName
		if name == "" {
			name = d.InternalModel
		}
		lines = append(lines, m.metricLine(name, d.Mac))
	}
	return m.panel("Scales", lines)
}

func (m Model) renderHelp() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{"q, e, ctrl+c", "quit"},
		{"r", "refresh all data now"},
		{"u", "toggle kg/lb"},
		{"T", "cycle theme"},
		{"h, ?", "toggle this help"},
	}
	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("Key Bindings"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", bind.keys, bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("press any key to close"))
	return m.styles.Panel.Render(b.String())
}

func (m Model) panel(title string, lines []string) string {
	content := m.styles.PanelTitle.Render(title) + "\n" + strings.Join(lines, "\n")
	return m.styles.Panel.Render(content)
}

func (m Model) metricLine(label, value string) string {
	return fmt.Sprintf("%s %s",
		m.styles.MutedText.Render(fmt.Sprintf("%-14s", label)),
		m.styles.Text.Render(value))
}

type girthRow struct {
	label string
	value float64
}

// latestGirths reduces the history to the newest non-zero reading per
// circumference, in a fixed display order.
func latestGirths(history []renpho.Girth) []girthRow {
	if len(history) == 0 {
		return nil
	}
	entries := make([]renpho.Girth, len(history))
	copy(entries, history)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TimeStamp > entries[j].TimeStamp
	})

	fields := []struct {
		label string
		get   func(renpho.Girth) float64
	}{
		{"Neck", func(g renpho.Girth) float64 { return g.NeckValue }},
		{"Shoulder", func(g renpho.Girth) float64 { return g.ShoulderValue }},
		{"Chest", func(g renpho.Girth) float64 { return g.ChestValue }},
		{"Waist", func(g renpho.Girth) float64 { return g.WaistValue }},
		{"Abdomen", func(g renpho.Girth) float64 { return g.AbdomenValue }},
		{"Hip", func(g renpho.Girth) float64 { return g.HipValue }},
		{"Arm", func(g renpho.Girth) float64 { return g.ArmValue }},
		{"Thigh", func(g renpho.Girth) float64 { return g.ThighValue }},
		{"Calf", func(g renpho.Girth) float64 { return g.CalfValue }},
		{"WHR", func(g renpho.Girth) float64 { return g.WhrValue }},
	}

	var rows []girthRow
	for _, f := range fields {
		for _, e := range entries {
			if v := f.get(e); v != 0 {
				rows = append(rows, girthRow{label: f.label, value: v})
				break
			}
		}
	}
	return rows
}

// latestGoals keeps the newest goal per girth type.
func latestGoals(goals []renpho.GirthGoal) []renpho.GirthGoal {
	if len(goals) == 0 {
		return nil
	}
	entries := make([]renpho.GirthGoal, len(goals))
	copy(entries, goals)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SetupGoalAt > entries[j].SetupGoalAt
	})

	seen := make(map[string]bool)
	var out []renpho.GirthGoal
	for _, g := range entries {
		if seen[g.GirthType] {
			continue
		}
		seen[g.GirthType] = true
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GirthType < out[j].GirthType
	})
	return out
}
