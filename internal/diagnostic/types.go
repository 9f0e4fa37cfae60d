package diagnostic

import "strings"

// Diagnostics accumulates the non-fatal findings of a flatten run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this type of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject identifies what the finding relates to, such as a bucket
	// name or a marshaled key.
	Subject string
	// Related lists additional context, such as every location that
	// collided on the same key.
	Related []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddWarning records a warning finding.
func (d *Diagnostics) AddWarning(code, subject, message string, related ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: Warning,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Related:  related,
	})
}

// AddInfo records an informational finding.
func (d *Diagnostics) AddInfo(code, subject, message string, related ...string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: Info,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Related:  related,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsClean returns true if nothing was recorded.
func (d *Diagnostics) IsClean() bool {
	return len(d.Warnings) == 0 && len(d.Infos) == 0
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	var b strings.Builder

	b.WriteString(d.Severity.String())

	if d.Code != "" {
		b.WriteString(" [" + d.Code + "]")
	}

	if d.Subject != "" {
		b.WriteString(" " + d.Subject)
	}

	b.WriteString(": " + d.Message)

	if len(d.Related) > 0 {
		b.WriteString(" (" + strings.Join(d.Related, ", ") + ")")
	}

	return b.String()
}
