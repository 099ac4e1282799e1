package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AviL26/project-insights-sub001/internal/engine"
)

// Report layout constants.
const (
	reportBoxWidth = 60

	scoreGoodThreshold = 70
	scoreFairThreshold = 40
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Styles for report rendering.
//
//nolint:gochecknoglobals // Static lipgloss styles.
var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(reportBoxWidth)

	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)

	scoreGoodStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	scoreFairStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	scorePoorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// FormatNumber formats an integer with thousand separators.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and thousand
// separators on the integer part.
func FormatFloat(f float64, precision int) string {
	multiplier := math.Pow(10, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	// Values in (-1, 0) lose their sign through int64 truncation.
	if rounded < 0 {
		return "-" + FormatFloat(-rounded, precision)
	}

	intPart, frac := math.Modf(rounded)
	whole := printer.Sprintf("%d", int64(intPart))
	if precision == 0 {
		return whole
	}

	fracStr := fmt.Sprintf("%.*f", precision, math.Abs(frac))
	return whole + strings.TrimPrefix(fracStr, "0")
}

// scoreStyle picks the style for a 0-100 score.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= scoreGoodThreshold:
		return scoreGoodStyle
	case score >= scoreFairThreshold:
		return scoreFairStyle
	default:
		return scorePoorStyle
	}
}

// RenderReport writes the styled impact report for one assessment.
func RenderReport(w io.Writer, source string, result engine.ImpactResult) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ECOLOGICAL IMPACT ASSESSMENT"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("source: %s    id: %s", source, result.ID)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s/100\n\n",
		labelStyle.Render("Impact score:"),
		scoreStyle(result.Score).Render(FormatNumber(int64(result.Score)))))

	b.WriteString(sectionStyle.Render("METRICS"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Carbon sequestration  %s t/yr\n", FormatFloat(result.Metrics.CarbonSequestration, 2)))
	b.WriteString(fmt.Sprintf("  Shannon diversity     %s\n", FormatFloat(result.Metrics.ShannonDiversity, 2)))
	b.WriteString(fmt.Sprintf("  Water quality index   %s/100\n", FormatNumber(int64(result.Metrics.WaterQualityIndex))))
	b.WriteString(fmt.Sprintf("  Climate risk          %s/100\n", FormatNumber(int64(result.Metrics.ClimateRisk))))

	writeInsightSection(&b, "OPPORTUNITIES", result.Opportunities)
	writeInsightSection(&b, "RISKS", result.Risks)
	writeInsightSection(&b, "RECOMMENDATIONS", result.Recommendations)

	fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(b.String(), "\n")))
}

// writeInsightSection appends one insight list, skipping empty sections.
func writeInsightSection(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(heading))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  • ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

// RenderCompliance writes the styled regulatory checklist evaluation.
func RenderCompliance(w io.Writer, assessment engine.ComplianceAssessment) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("REGULATORY COMPLIANCE CHECKLIST"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("jurisdiction: " + assessment.Jurisdiction))
	b.WriteString("\n\n")

	for _, req := range assessment.Requirements {
		status := assessment.Status[req]
		b.WriteString(fmt.Sprintf("  %-40s %s\n", req, renderStatus(status)))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("overall: "))
	b.WriteString(renderStatus(assessment.OverallCompliance))

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}

// renderStatus colors a compliance status value.
func renderStatus(status engine.ComplianceStatus) string {
	s := string(status)
	switch status {
	case engine.StatusCompliant:
		return scoreGoodStyle.Render(s)
	case engine.StatusFullEIARequired:
		return scorePoorStyle.Render(s)
	case engine.StatusReviewNeeded, engine.StatusAssessmentRequired,
		engine.StatusScreeningRequired, engine.StatusPendingReview:
		return scoreFairStyle.Render(s)
	default:
		return s
	}
}
