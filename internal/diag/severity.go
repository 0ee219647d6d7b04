package diag

import "strings"

// Severity orders diagnostics from informational to fatal for the expression.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Label is the lower-case name used by the short format ("error", "warning").
func (s Severity) Label() string {
	return strings.ToLower(s.String())
}
