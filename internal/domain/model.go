package domain

// Severity levels reported by Vale.
const (
	SeverityError      = "error"
	SeverityWarning    = "warning"
	SeveritySuggestion = "suggestion"
)

// Issue is one flagged location in a checked document.
type Issue struct {
	Line     int    `json:"line"`
	Span     [2]int `json:"span"`
	Check    string `json:"check"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Link     string `json:"link,omitempty"`
	Match    string `json:"match,omitempty"`
}

// Summary holds aggregate counts over a set of issues.
type Summary struct {
	Total       int `json:"total"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Suggestions int `json:"suggestions"`
}

// CheckResult is the outcome of checking one file. File is always absolute;
// Issues keep the order Vale emitted them.
type CheckResult struct {
	File    string  `json:"file"`
	Issues  []Issue `json:"issues"`
	Summary Summary `json:"summary"`
	Report  string  `json:"-"`
}

// InstallationStatus reports whether the vale binary is reachable.
type InstallationStatus struct {
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SyncResult is the outcome of a style-package sync.
type SyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Summarize computes severity counts in a single pass. Unrecognized
// severities count toward Total only.
func Summarize(issues []Issue) Summary {
	sum := Summary{Total: len(issues)}
	for _, is := range issues {
		switch is.Severity {
		case SeverityError:
			sum.Errors++
		case SeverityWarning:
			sum.Warnings++
		case SeveritySuggestion:
			sum.Suggestions++
		}
	}
	return sum
}
