package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviL26/project-insights-sub001/internal/engine"
)

func testItems() []ReportItem {
	return []ReportItem{
		{
			Source: "north.yaml",
			Result: engine.ImpactResult{
				ID:    "01JNORTH00000000000000000N",
				Score: 82,
				Metrics: engine.ImpactMetrics{
					CarbonSequestration: 120.5,
					ShannonDiversity:    1.72,
					WaterQualityIndex:   90,
					ClimateRisk:         15,
				},
				Opportunities:   []string{"Excellent water quality conditions for marine life establishment"},
				Recommendations: []string{"Incorporate habitat complexity features to support the observed species assemblage"},
			},
		},
		{
			Source: "south.yaml",
			Result: engine.ImpactResult{
				ID:    "01JSOUTH00000000000000000S",
				Score: 44,
				Risks: []string{"High climate change exposure at this site"},
			},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewReportModel(t *testing.T) {
	m := NewReportModel(testItems())

	assert.Zero(t, m.Current())
	assert.Zero(t, m.Selected())
	assert.Nil(t, m.Init())
}

func TestReportModelNavigation(t *testing.T) {
	m := NewReportModel(testItems())

	t.Run("right moves to next bundle", func(t *testing.T) {
		updated, _ := m.Update(key("right"))
		next, ok := updated.(ReportModel)
		require.True(t, ok)
		assert.Equal(t, 1, next.Current())

		// Clamped at the last bundle.
		updated, _ = next.Update(key("right"))
		next = updated.(ReportModel)
		assert.Equal(t, 1, next.Current())
	})

	t.Run("left clamps at first bundle", func(t *testing.T) {
		updated, _ := m.Update(key("left"))
		next := updated.(ReportModel)
		assert.Zero(t, next.Current())
	})

	t.Run("down moves insight selection", func(t *testing.T) {
		updated, _ := m.Update(key("down"))
		next := updated.(ReportModel)
		assert.Equal(t, 1, next.Selected())

		// Two insights total, so a further down stays put.
		updated, _ = next.Update(key("down"))
		next = updated.(ReportModel)
		assert.Equal(t, 1, next.Selected())
	})

	t.Run("switching bundles resets selection", func(t *testing.T) {
		updated, _ := m.Update(key("down"))
		next := updated.(ReportModel)
		require.Equal(t, 1, next.Selected())

		updated, _ = next.Update(key("right"))
		next = updated.(ReportModel)
		assert.Zero(t, next.Selected())
	})

	t.Run("q quits", func(t *testing.T) {
		_, cmd := m.Update(key("q"))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}

func TestReportModelResize(t *testing.T) {
	m := NewReportModel(testItems())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next := updated.(ReportModel)
	assert.Equal(t, 120, next.width)
	assert.Equal(t, 40, next.height)
}

func TestReportModelView(t *testing.T) {
	t.Run("renders metrics and insights", func(t *testing.T) {
		m := NewReportModel(testItems())
		view := m.View()

		assert.Contains(t, view, "north.yaml")
		assert.Contains(t, view, "Shannon diversity")
		assert.Contains(t, view, "opportunity")
	})

	t.Run("empty item list renders hint", func(t *testing.T) {
		m := NewReportModel(nil)
		assert.Contains(t, m.View(), "no assessments")
	})
}

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		n        int
		size     int
		wantFrom int
		wantTo   int
	}{
		{name: "short list shows everything", selected: 0, n: 3, size: 8, wantFrom: 0, wantTo: 3},
		{name: "selection near start", selected: 1, n: 20, size: 8, wantFrom: 0, wantTo: 8},
		{name: "selection in middle", selected: 10, n: 20, size: 8, wantFrom: 6, wantTo: 14},
		{name: "selection near end", selected: 19, n: 20, size: 8, wantFrom: 12, wantTo: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := windowBounds(tt.selected, tt.n, tt.size)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}
