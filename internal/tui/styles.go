package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Zone screens carry most of the color, so the chrome stays in
// teal/slate and the five training zones get their own ramp from easy blue
// to maximal red.
var (
	accentColor = lipgloss.Color("#2DD4BF") // teal
	okColor     = lipgloss.Color("#4ADE80")
	warnColor   = lipgloss.Color("#FACC15")
	alertColor  = lipgloss.Color("#F87171")
	dimColor    = lipgloss.Color("#94A3B8") // slate
	brightColor = lipgloss.Color("#F1F5F9")

	zoneRamp = [5]lipgloss.Color{
		"#38BDF8", // Z1 recovery
		"#2DD4BF", // Z2 aerobic
		"#4ADE80", // Z3 tempo
		"#FB923C", // Z4 threshold
		"#F87171", // Z5 vo2max
	}
)

// Chrome
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0F172A")).
			Background(accentColor).
			Padding(0, 1).
			MarginBottom(1)

	navStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			MarginBottom(1)

	navActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	navInactiveStyle = lipgloss.NewStyle().Foreground(dimColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(dimColor).
			Padding(1, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)
)

// Tables
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				BorderBottom(true).
				BorderForeground(dimColor).
				Padding(0, 1)

	tableRowStyle = lipgloss.NewStyle().Padding(0, 1)

	tableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Background(accentColor).
				Foreground(lipgloss.Color("#0F172A")).
				Padding(0, 1)
)

// Inline text
var (
	statusStyle  = lipgloss.NewStyle().Foreground(dimColor).MarginTop(1)
	dimStyle     = lipgloss.NewStyle().Foreground(dimColor)
	successStyle = lipgloss.NewStyle().Foreground(okColor)
	warningStyle = lipgloss.NewStyle().Foreground(warnColor)
	errorStyle   = lipgloss.NewStyle().Foreground(alertColor)

	helpKeyStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(okColor)

	metricLabelStyle = lipgloss.NewStyle().Foreground(dimColor).Width(20)
	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(brightColor)
)

// ZoneStyle returns the ramp color for zone n (1-based). Out-of-range zones
// fall back to the dim chrome color.
func ZoneStyle(n int) lipgloss.Style {
	if n < 1 || n > len(zoneRamp) {
		return dimStyle
	}
	return lipgloss.NewStyle().Foreground(zoneRamp[n-1])
}

// RenderMetric lines a label up against its value in a fixed-width column
func RenderMetric(label, value string) string {
	return metricLabelStyle.Render(label) + metricValueStyle.Render(value)
}

// RenderProgressBar draws percent (0..1) as a fixed-width bar
func RenderProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	switch {
	case filled < 0:
		filled = 0
	case filled > width:
		filled = width
	}
	full := successStyle.Render(strings.Repeat("▰", filled))
	empty := dimStyle.Render(strings.Repeat("▱", width-filled))
	return full + empty
}

// RenderKeyHelp formats one key binding for the help screen
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + dimStyle.Render(desc)
}
