package badge

import ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"

// Severity classifies a badge and selects its color from the appearance table.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityFine    Severity = "fine"
)

// Severities lists every recognised severity in display order.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityWarning, SeverityDanger, SeverityFine}
}

// Valid reports whether s is one of the four recognised severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityDanger, SeverityFine:
		return true
	default:
		return false
	}
}

func (s Severity) String() string {
	return string(s)
}

// ParseSeverity converts a user supplied value into a Severity.
// Only the empty value yields SeverityInfo. Matching is exact: any other value
// outside the four severities is a ConfigurationError.
func ParseSeverity(value string) (Severity, error) {
	if value == "" {
		return SeverityInfo, nil
	}

	sev := Severity(value)
	if !sev.Valid() {
		return "", ribbonerrors.NewConfigurationError(value)
	}
	return sev, nil
}

// orDefault applies the info default to a zero severity.
func (s Severity) orDefault() Severity {
	if s == "" {
		return SeverityInfo
	}
	return s
}
