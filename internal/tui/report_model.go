// Package tui implements the interactive assessment report browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AviL26/project-insights-sub001/internal/engine"
)

// Default viewport dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24

	metricTableHeight = 5
	insightPageSize   = 8
)

// Styles for the report browser.
//
//nolint:gochecknoglobals // Static lipgloss styles.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	metaStyle     = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// ReportItem is one assessed bundle shown in the browser.
type ReportItem struct {
	Source string
	Result engine.ImpactResult
}

// insightRow is one line of the flattened insight list.
type insightRow struct {
	category string
	text     string
}

// ReportModel is the Bubble Tea model for browsing assessment results.
// Left/right switch between assessed bundles, up/down move through the
// insight list.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View.
type ReportModel struct {
	items    []ReportItem
	current  int
	selected int
	insights []insightRow

	metrics table.Model

	width  int
	height int
}

// NewReportModel builds the browser model for the given items.
func NewReportModel(items []ReportItem) ReportModel {
	m := ReportModel{
		items:  items,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.metrics = newMetricsTable()
	m.load()
	return m
}

// newMetricsTable constructs the static four-row metrics table.
func newMetricsTable() table.Model {
	columns := []table.Column{
		{Title: "Metric", Width: 24},
		{Title: "Value", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(metricTableHeight),
		table.WithFocused(false),
	)

	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	return t
}

// load refreshes the metrics table and insight rows for the current item.
func (m *ReportModel) load() {
	if len(m.items) == 0 {
		m.metrics.SetRows(nil)
		m.insights = nil
		m.selected = 0
		return
	}

	result := m.items[m.current].Result

	m.metrics.SetRows([]table.Row{
		{"Carbon sequestration", fmt.Sprintf("%.2f t/yr", result.Metrics.CarbonSequestration)},
		{"Shannon diversity", fmt.Sprintf("%.2f", result.Metrics.ShannonDiversity)},
		{"Water quality index", fmt.Sprintf("%d/100", result.Metrics.WaterQualityIndex)},
		{"Climate risk", fmt.Sprintf("%d/100", result.Metrics.ClimateRisk)},
	})

	m.insights = m.insights[:0]
	for _, s := range result.Opportunities {
		m.insights = append(m.insights, insightRow{category: "opportunity", text: s})
	}
	for _, s := range result.Risks {
		m.insights = append(m.insights, insightRow{category: "risk", text: s})
	}
	for _, s := range result.Recommendations {
		m.insights = append(m.insights, insightRow{category: "recommendation", text: s})
	}
	m.selected = 0
}

// Init implements tea.Model.
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// handleKey processes navigation input.
func (m ReportModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.current > 0 {
			m.current--
			m.load()
		}
	case "right", "l":
		if m.current < len(m.items)-1 {
			m.current++
			m.load()
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.insights)-1 {
			m.selected++
		}
	}
	return m, nil
}

// View renders the current assessment.
func (m ReportModel) View() string {
	if len(m.items) == 0 {
		return helpStyle.Render("no assessments loaded, press q to quit")
	}

	item := m.items[m.current]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"Impact %d/100  %s (%d of %d)",
		item.Result.Score, item.Source, m.current+1, len(m.items))))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("assessment " + item.Result.ID))
	b.WriteString("\n\n")

	b.WriteString(m.metrics.View())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("INSIGHTS"))
	b.WriteString("\n")
	b.WriteString(m.renderInsights())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ switch bundle · ↑/↓ move · q quit"))

	return b.String()
}

// renderInsights renders the insight window around the selection.
func (m ReportModel) renderInsights() string {
	if len(m.insights) == 0 {
		return helpStyle.Render("  none")
	}

	from, to := windowBounds(m.selected, len(m.insights), insightPageSize)

	var b strings.Builder
	for i := from; i < to; i++ {
		row := m.insights[i]
		line := fmt.Sprintf("[%s] %s", row.category, row.text)
		if i == m.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// windowBounds computes the visible [from, to) slice of a list of length n
// so that selected stays inside a window of the given size.
func windowBounds(selected, n, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	from := selected - size/2
	if from < 0 {
		from = 0
	}
	to := from + size
	if to > n {
		to = n
		from = to - size
	}
	return from, to
}

// Current returns the index of the assessment in view.
func (m ReportModel) Current() int {
	return m.current
}

// Selected returns the index of the highlighted insight row.
func (m ReportModel) Selected() int {
	return m.selected
}
