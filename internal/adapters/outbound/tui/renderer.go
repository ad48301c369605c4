// Package tui renders check results for the terminal. The MCP surface uses
// the plain markdown formatter instead; this styling is CLI-only.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/valemcp/valemcp/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle        = lipgloss.NewStyle().Foreground(dim)
	passStyle       = lipgloss.NewStyle().Foreground(success).Bold(true)
	errorTagStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle    = lipgloss.NewStyle().Foreground(warning).Bold(true)
	suggestTagStyle = lipgloss.NewStyle().Foreground(info)
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

// RenderCheckResult renders a CheckResult as a styled terminal string,
// grouped by severity like the markdown report.
func RenderCheckResult(result *domain.CheckResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Vale") + "  " + dimStyle.Render(result.File))
	b.WriteString("\n\n")

	if len(result.Issues) == 0 {
		b.WriteString("  " + passStyle.Render("✓") + " " + domain.NoIssuesMessage + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render(summaryLine(result.Summary)) + "\n")

	for _, sev := range []string{domain.SeverityError, domain.SeverityWarning, domain.SeveritySuggestion} {
		for _, is := range result.Issues {
			if is.Severity != sev {
				continue
			}
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				severityTag(is.Severity),
				dimStyle.Render(fmt.Sprintf("line %d", is.Line)),
				is.Message,
			))
			if is.Match != "" {
				b.WriteString("      " + dimStyle.Render(fmt.Sprintf("match: %q", is.Match)) + "\n")
			}
			b.WriteString("      " + dimStyle.Render(is.Check) + "\n")
		}
	}
	return b.String()
}

func summaryLine(sum domain.Summary) string {
	parts := []string{}
	if sum.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", sum.Errors))
	}
	if sum.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", sum.Warnings))
	}
	if sum.Suggestions > 0 {
		parts = append(parts, fmt.Sprintf("%d suggestions", sum.Suggestions))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d issues", sum.Total)
	}
	return fmt.Sprintf("%d issues (%s)", sum.Total, strings.Join(parts, ", "))
}

func severityTag(sev string) string {
	switch sev {
	case domain.SeverityError:
		return errorTagStyle.Render("✗ error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("! warning")
	case domain.SeveritySuggestion:
		return suggestTagStyle.Render("· suggestion")
	default:
		return dimStyle.Render(sev)
	}
}
