package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// valeAlert mirrors one entry of vale's --output=JSON document. The Action
// (auto-fix) metadata vale attaches is intentionally not carried over.
type valeAlert struct {
	Line     int    `json:"Line"`
	Span     [2]int `json:"Span"`
	Check    string `json:"Check"`
	Message  string `json:"Message"`
	Severity string `json:"Severity"`
	Link     string `json:"Link"`
	Match    string `json:"Match"`
}

// ParseIssues normalizes raw vale JSON output into a flat issue list.
//
// The raw text may arrive wrapped in a single markdown code fence (some
// shells and wrappers add one); exactly one wrapper is stripped before
// parsing. Empty or whitespace-only text yields an empty issue set, not an
// error. The document maps file paths to alert arrays; normally there is
// exactly one key, but zero or several are tolerated, walked in sorted key
// order so the result is deterministic.
func ParseIssues(raw string) ([]Issue, error) {
	text := stripCodeFence(strings.TrimSpace(raw))
	if text == "" {
		return nil, nil
	}

	var byFile map[string][]valeAlert
	if err := json.Unmarshal([]byte(text), &byFile); err != nil {
		return nil, &MalformedOutputError{Msg: err.Error()}
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	var issues []Issue
	for _, f := range files {
		for _, a := range byFile[f] {
			issues = append(issues, Issue{
				Line:     a.Line,
				Span:     a.Span,
				Check:    a.Check,
				Message:  a.Message,
				Severity: a.Severity,
				Link:     a.Link,
				Match:    a.Match,
			})
		}
	}
	return issues, nil
}

// stripCodeFence removes one leading ```/```json line and one trailing ```
// line, if both are present.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return text
	}
	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
