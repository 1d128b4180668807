package tui

import (
	"fmt"
	"strings"

	"zonecoach/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ZonesModel is the training zones screen model
type ZonesModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.ZonesData
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewZonesModel creates a new zones model
func NewZonesModel(qs *service.QueryService, units Units, width, height int) ZonesModel {
	m := ZonesModel{
		queryService: qs,
		units:        units,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the zones screen
func (m ZonesModel) Init() tea.Cmd {
	return m.loadZones
}

type zonesLoadedMsg struct {
	data *service.ZonesData
	err  error
}

func (m ZonesModel) loadZones() tea.Msg {
	data, err := m.queryService.GetZonesData()
	return zonesLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m ZonesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case zonesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.data != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadZones
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the zones screen
func (m ZonesModel) View() string {
	if m.loading {
		return "\n  Loading training zones..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ZonesModel) renderContent() string {
	if m.data == nil {
		return "No zone data available."
	}

	var sections []string

	sections = append(sections, m.renderLimits())
	sections = append(sections, m.renderHRZones())
	sections = append(sections, m.renderPaceZones())

	if len(m.data.Disclaimers) > 0 {
		var lines []string
		for _, d := range m.data.Disclaimers {
			lines = append(lines, warningStyle.Render("• ")+d)
		}
		card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render("Estimates"),
			strings.Join(lines, "\n")))
		sections = append(sections, card)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ZonesModel) renderLimits() string {
	title := cardTitleStyle.Render("Heart Rate Limits")

	source := "from your profile"
	if m.data.Estimated {
		source = warningStyle.Render("estimated - update your profile for accuracy")
	}

	lines := []string{
		RenderMetric("Max HR", fmt.Sprintf("%.0f bpm", m.data.Limits.MaxHR)),
		RenderMetric("Resting HR", fmt.Sprintf("%.0f bpm", m.data.Limits.RestingHR)),
		"",
		statusStyle.Render(source),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ZonesModel) renderHRZones() string {
	title := cardTitleStyle.Render("Heart Rate Zones (Karvonen)")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-6s  %-12s  %s", "Zone", "Range", "Description"))
	rows := []string{header}

	for i, z := range m.data.Zones.HeartRate {
		label := ZoneStyle(i + 1).Render(fmt.Sprintf("Z%-5d", i+1))
		row := tableRowStyle.Render(fmt.Sprintf("%s  %3.0f-%3.0f bpm  %s",
			label, z.Min, z.Max, z.Description))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m ZonesModel) renderPaceZones() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Pace Zones (%s)", m.units.PaceLabel()))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-13s  %s", "Zone", "Range", "Description"))
	rows := []string{header}

	for i, z := range m.data.Zones.Pace {
		// Min is the faster bound; show the slower end first so the range
		// reads easy-to-hard left to right
		row := tableRowStyle.Render(fmt.Sprintf("%s  %5s - %5s  %s",
			ZoneStyle(i+1).Render(fmt.Sprintf("%-10s", z.Name)),
			m.units.FormatPaceSeconds(z.Max),
			m.units.FormatPaceSeconds(z.Min),
			z.Description))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
