package tui

import (
	"fmt"

	"zonecoach/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, units Units) DashboardModel {
	return DashboardModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data available. Press 's' to sync with RunBeacon."
	}

	var sections []string

	// Top row: profile health and this week side by side
	profileCard := m.renderProfileCard()
	weekCard := m.renderWeekCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, profileCard, "  ", weekCard)
	sections = append(sections, topRow)

	// Zone distribution vs the polarized target
	sections = append(sections, m.renderDistributionCard())

	// Training load chart
	if hasLoad(m.data.WeeklyTRIMP) {
		sections = append(sections, m.renderLoadChart())
	}

	// Help
	help := statusStyle.Render("Press 'r' to refresh, 's' to sync, '2' for zones, '3' for profile")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderProfileCard() string {
	title := cardTitleStyle.Render("Profile Health")

	freshness := "fresh"
	freshStyle := successStyle
	if m.data.Freshness.IsStale {
		freshness = fmt.Sprintf("stale (%d days old)", m.data.Freshness.DaysSinceUpdate)
		freshStyle = warningStyle
	} else if m.data.Freshness.DaysSinceUpdate > 0 {
		freshness = fmt.Sprintf("%d days old", m.data.Freshness.DaysSinceUpdate)
		freshStyle = dimStyle
	}

	lines := []string{
		RenderMetric("Completeness", fmt.Sprintf("%d/100", m.data.Score)),
		"  " + RenderProgressBar(float64(m.data.Score)/100, 24),
		"",
		RenderMetric("Data freshness", freshStyle.Render(freshness)),
	}
	if len(m.data.Freshness.CriticalUpdatesNeeded) > 0 {
		lines = append(lines, "", warningStyle.Render("Critical updates needed - see Profile"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")

	lines := []string{
		RenderMetric("Runs", fmt.Sprintf("%d", m.data.WeekRunCount)),
		RenderMetric("Distance", m.units.FormatDistance(m.data.WeekDistance*metersPerKm)),
		RenderMetric("Time", formatDuration(m.data.WeekTime)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderDistributionCard() string {
	title := cardTitleStyle.Render("Intensity Distribution (last 90 days)")

	buckets := []struct {
		label  string
		actual float64
		target float64
	}{
		{"Low (Z1-2)", m.data.Distribution.CurrentDistribution[0].Percentage + m.data.Distribution.CurrentDistribution[1].Percentage, 80},
		{"Moderate (Z3)", m.data.Distribution.CurrentDistribution[2].Percentage, 10},
		{"High (Z4-5)", m.data.Distribution.CurrentDistribution[3].Percentage + m.data.Distribution.CurrentDistribution[4].Percentage, 10},
	}

	var lines []string
	for _, b := range buckets {
		bar := RenderProgressBar(b.actual/100, 24)
		lines = append(lines, fmt.Sprintf("%-14s %s %5.1f%%  (target %.0f%%)", b.label, bar, b.actual, b.target))
	}

	if len(m.data.Distribution.Recommendations) > 0 {
		lines = append(lines, "")
		for _, rec := range m.data.Distribution.Recommendations {
			lines = append(lines, warningStyle.Render("• ")+rec)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderLoadChart() string {
	title := cardTitleStyle.Render("Weekly Training Load (TRIMP)")

	graph := asciigraph.Plot(m.data.WeeklyTRIMP,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	caption := statusStyle.Render(fmt.Sprintf("%s  ...  %s",
		firstLabel(m.data.WeeklyLabels), lastLabel(m.data.WeeklyLabels)))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, caption))
}

func hasLoad(weekly []float64) bool {
	for _, v := range weekly {
		if v > 0 {
			return true
		}
	}
	return false
}

func firstLabel(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return labels[0]
}

func lastLabel(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return labels[len(labels)-1]
}

func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
