package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"zonecoach/internal/analysis"
	"zonecoach/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// editField describes one editable profile field
type editField struct {
	label   string
	name    string // patch field name
	numeric bool
}

var editFields = []editField{
	{"Max heart rate (bpm)", analysis.FieldMaxHeartRate, true},
	{"Resting heart rate (bpm)", analysis.FieldRestingHeartRate, true},
	{"Body weight (kg)", analysis.FieldBodyWeightKg, true},
	{"Height (cm)", analysis.FieldHeightCm, true},
	{"Age", analysis.FieldAge, true},
	{"Gender", analysis.FieldGender, false},
	{"Fitness level (beginner/intermediate/advanced/elite)", analysis.FieldFitnessLevel, false},
	{"Running experience (years)", analysis.FieldRunningExperienceYears, true},
	{"Weekly mileage (km)", analysis.FieldWeeklyMileageKm, true},
}

// ProfileModel is the profile screen model
type ProfileModel struct {
	queryService   *service.QueryService
	profileService *service.ProfileService
	data           *service.ProfileData
	viewport       viewport.Model
	loading        bool
	err            error
	width          int
	height         int
	ready          bool

	// Edit state
	editing    bool
	cursor     int
	input      string
	inputOpen  bool
	saveResult *analysis.ProfileResult
	saveErr    error
}

// NewProfileModel creates a new profile model
func NewProfileModel(qs *service.QueryService, ps *service.ProfileService, width, height int) ProfileModel {
	m := ProfileModel{
		queryService:   qs,
		profileService: ps,
		loading:        true,
		width:          width,
		height:         height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the profile screen
func (m ProfileModel) Init() tea.Cmd {
	return m.loadProfile
}

type profileLoadedMsg struct {
	data *service.ProfileData
	err  error
}

type profileSavedMsg struct {
	result analysis.ProfileResult
	err    error
}

func (m ProfileModel) loadProfile() tea.Msg {
	data, err := m.queryService.GetProfileData()
	return profileLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case profileSavedMsg:
		m.saveErr = msg.err
		if msg.err == nil {
			m.saveResult = &msg.result
			if msg.result.Success {
				m.editing = false
				m.loading = true
				return m, m.loadProfile
			}
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
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadProfile
		case "e":
			m.editing = true
			m.cursor = 0
			m.inputOpen = false
			m.saveResult = nil
			m.saveErr = nil
			return m, nil
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateEditing handles keys while the edit form is open
func (m ProfileModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputOpen {
		switch msg.String() {
		case "enter":
			return m.commitField()
		case "esc":
			m.inputOpen = false
			m.input = ""
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.input += string(msg.Runes)
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.editing = false
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(editFields)-1 {
			m.cursor++
		}
	case "enter":
		m.inputOpen = true
		m.input = ""
		m.saveResult = nil
		m.saveErr = nil
	}
	return m, nil
}

// commitField parses the input and saves the single-field patch
func (m ProfileModel) commitField() (tea.Model, tea.Cmd) {
	field := editFields[m.cursor]
	value := strings.TrimSpace(m.input)
	m.inputOpen = false
	m.input = ""

	if value == "" {
		return m, nil
	}

	patch, err := buildPatch(field.name, value)
	if err != nil {
		m.saveErr = err
		return m, nil
	}

	return m, func() tea.Msg {
		result, err := m.profileService.Update(context.Background(), patch)
		return profileSavedMsg{result: result, err: err}
	}
}

// buildPatch converts a single field edit into an engine patch
func buildPatch(field, value string) (analysis.ProfilePatch, error) {
	var patch analysis.ProfilePatch

	parse := func() (float64, error) {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", value)
		}
		return f, nil
	}

	switch field {
	case analysis.FieldMaxHeartRate:
		f, err := parse()
		if err != nil {
			return patch, err
		}
		patch.MaxHeartRate = &f
	case analysis.FieldRestingHeartRate:
		f, err := parse()
		if err != nil {
			return patch, err
		}
		patch.RestingHeartRate = &f
	case analysis.FieldBodyWeightKg:
		f, err := parse()
		if err != nil {
			return patch, err
		}
		patch.BodyWeightKg = &f
	case analysis.FieldHeightCm:
		f, err := parse()
		if err != nil {
			return patch, err
		}
		patch.HeightCm = &f
	case analysis.FieldAge:
		f, err := parse()
		if err != nil {
			return patch, err
		}
		age := int(f)
		patch.Age = &age
	case analysis.FieldGender:
		patch.Gender = &value
	case analysis.FieldFitnessLevel:
		level := strings.ToLower(value)
		patch.FitnessLevel = &level
	case analysis.FieldRunningExperienceYears:
		f, err := parse()
		if err != nil {
			return patch, err
		}
		patch.RunningExperienceYears = &f
	case analysis.FieldWeeklyMileageKm:
		f, err := parse()
		if err != nil {
			return patch, err
		}
		patch.WeeklyMileageKm = &f
	default:
		return patch, fmt.Errorf("unknown field %q", field)
	}

	return patch, nil
}

// View renders the profile screen
func (m ProfileModel) View() string {
	if m.loading {
		return "\n  Loading profile..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.editing {
		return m.renderEditForm()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  e: edit  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ProfileModel) renderContent() string {
	if m.data == nil {
		return "No profile data."
	}

	var sections []string
	sections = append(sections, m.renderFields())
	sections = append(sections, m.renderPrompts())

	if m.data.Profile != nil {
		sections = append(sections, m.renderFreshness())
		if len(m.data.Profile.ValidationErrors) > 0 {
			var lines []string
			for _, e := range m.data.Profile.ValidationErrors {
				lines = append(lines, errorStyle.Render("• ")+e)
			}
			card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				cardTitleStyle.Render("Validation Errors"),
				strings.Join(lines, "\n")))
			sections = append(sections, card)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ProfileModel) renderFields() string {
	title := cardTitleStyle.Render("Athlete Profile")

	p := m.data.Profile
	if p == nil {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title,
			"No profile yet. Press 'e' to create one."))
	}

	estTag := func(estimated bool) string {
		if estimated {
			return warningStyle.Render(" (estimated)")
		}
		return ""
	}

	lines := []string{
		RenderMetric("Max HR", fmtFloat(p.MaxHeartRate, "%.0f bpm")+estTag(p.MaxHREstimated)),
		RenderMetric("Resting HR", fmtFloat(p.RestingHeartRate, "%.0f bpm")+estTag(p.RestingHREstimated)),
		RenderMetric("Body weight", fmtFloat(p.BodyWeightKg, "%.1f kg")),
		RenderMetric("Height", fmtFloat(p.HeightCm, "%.0f cm")),
		RenderMetric("Age", fmtInt(p.Age)),
		RenderMetric("Gender", fmtString(p.Gender)),
		RenderMetric("Fitness level", fmtString(p.FitnessLevel)),
		RenderMetric("Experience", fmtFloat(p.RunningExperienceYears, "%.1f years")),
		RenderMetric("Weekly mileage", fmtFloat(p.WeeklyMileageKm, "%.0f km")),
		"",
		statusStyle.Render("Updated " + humanize.Time(p.LastUpdated)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ProfileModel) renderPrompts() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Completeness: %d/100", m.data.Prompts.OverallScore))

	if len(m.data.Prompts.Prompts) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title,
			successStyle.Render("Profile complete - nothing to update")))
	}

	var lines []string
	for _, p := range m.data.Prompts.Prompts {
		marker := statusStyle.Render("•")
		switch p.Priority {
		case analysis.PriorityHigh:
			marker = errorStyle.Render("!")
		case analysis.PriorityMedium:
			marker = warningStyle.Render("•")
		}
		lines = append(lines, fmt.Sprintf("%s %s", marker, p.Message))
		lines = append(lines, "  "+statusStyle.Render(p.HelpText))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ProfileModel) renderFreshness() string {
	title := cardTitleStyle.Render("Data Freshness")

	f := m.data.Freshness

	status := successStyle.Render("Fresh")
	if f.IsStale {
		status = warningStyle.Render(fmt.Sprintf("Stale - %d days since last update", f.DaysSinceUpdate))
	}

	lines := []string{status}
	for _, c := range f.CriticalUpdatesNeeded {
		lines = append(lines, errorStyle.Render("! ")+c)
	}
	for _, a := range f.RecommendedActions {
		lines = append(lines, statusStyle.Render("• "+a))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m ProfileModel) renderEditForm() string {
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Edit Profile"))
	lines = append(lines, "")

	for i, f := range editFields {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + f.label
		if i == m.cursor {
			lines = append(lines, tableSelectedStyle.Render(line))
		} else {
			lines = append(lines, tableRowStyle.Render(line))
		}
	}

	lines = append(lines, "")

	if m.inputOpen {
		lines = append(lines, fmt.Sprintf("  %s: %s_", editFields[m.cursor].label, m.input))
		lines = append(lines, statusStyle.Render("  enter: save  esc: cancel"))
	} else {
		lines = append(lines, statusStyle.Render("  enter: edit field  j/k: move  esc: done"))
	}

	if m.saveErr != nil {
		lines = append(lines, "")
		lines = append(lines, errorStyle.Render(fmt.Sprintf("  Error: %v", m.saveErr)))
	}
	if m.saveResult != nil && !m.saveResult.Success {
		lines = append(lines, "")
		lines = append(lines, errorStyle.Render("  Update rejected:"))
		for _, e := range m.saveResult.Profile.ValidationErrors {
			lines = append(lines, errorStyle.Render("  • "+e))
		}
	}
	if m.saveResult != nil && m.saveResult.Success && m.saveResult.Recalculation.ShouldRecalculate {
		rec := m.saveResult.Recalculation
		lines = append(lines, "")
		lines = append(lines, warningStyle.Render(fmt.Sprintf(
			"  Historical data affected (%s): %s - about %s",
			rec.AffectedPeriod, strings.Join(rec.AffectedMetrics, ", "), rec.EstimatedDuration)))
	}

	return strings.Join(lines, "\n")
}

func fmtFloat(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func fmtInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtString(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
