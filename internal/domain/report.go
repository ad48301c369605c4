package domain

import (
	"fmt"
	"strings"
)

// NoIssuesMessage is returned whenever a check finds nothing to report.
const NoIssuesMessage = "No issues found. The document passes all Vale checks."

// severityOrder fixes the grouping order of the rendered report.
var severityOrder = []string{SeverityError, SeverityWarning, SeveritySuggestion}

// RenderReport renders issues as a markdown report: header, optional context
// line, a summary line, then entries grouped by severity (error, warning,
// suggestion) with the original relative order kept inside each group.
// Inputs are never mutated.
func RenderReport(issues []Issue, sum Summary, context string) string {
	if len(issues) == 0 {
		return NoIssuesMessage
	}

	var b strings.Builder
	b.WriteString("# Vale Report\n\n")
	if context != "" {
		fmt.Fprintf(&b, "Checked: %s\n\n", context)
	}
	fmt.Fprintf(&b, "Found %s (%s).\n", pluralize(sum.Total, "issue"), summaryClause(sum))

	for _, sev := range severityOrder {
		for _, is := range issues {
			if is.Severity != sev {
				continue
			}
			fmt.Fprintf(&b, "\n- **Line %d** (%s): %s\n", is.Line, is.Severity, is.Message)
			if is.Match != "" {
				fmt.Fprintf(&b, "  - Match: %q\n", is.Match)
			}
			if is.Link != "" {
				fmt.Fprintf(&b, "  - Link: %s\n", is.Link)
			}
			fmt.Fprintf(&b, "  - Rule: %s\n", is.Check)
		}
	}
	return b.String()
}

// summaryClause joins the non-zero severity counts, e.g. "2 errors, 1 warning".
func summaryClause(sum Summary) string {
	var parts []string
	if sum.Errors > 0 {
		parts = append(parts, pluralize(sum.Errors, "error"))
	}
	if sum.Warnings > 0 {
		parts = append(parts, pluralize(sum.Warnings, "warning"))
	}
	if sum.Suggestions > 0 {
		parts = append(parts, pluralize(sum.Suggestions, "suggestion"))
	}
	if len(parts) == 0 {
		return "none categorized"
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
