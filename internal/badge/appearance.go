package badge

import (
	"fmt"
	"strings"

	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// Appearance maps each severity to a display color descriptor (hex or ANSI code).
// Hosts theme the widget by supplying their own table.
type Appearance map[Severity]string

// DefaultAppearance returns the stock severity colors.
func DefaultAppearance() Appearance {
	return Appearance{
		SeverityInfo:    "#33b5e5",
		SeverityWarning: "#ffbb33",
		SeverityDanger:  "#ff4444",
		SeverityFine:    "#00c851",
	}
}

// Validate checks that the table covers exactly the four severities with non-blank colors.
func (a Appearance) Validate() error {
	for key := range a {
		if !key.Valid() {
			return ribbonerrors.NewConfigurationError(string(key))
		}
	}
	for _, sev := range Severities() {
		color, ok := a[sev]
		if !ok {
			return ribbonerrors.NewValidationError("appearance."+sev.String(), "color is required", nil)
		}
		if strings.TrimSpace(color) == "" {
			return ribbonerrors.NewValidationError("appearance."+sev.String(), "color must not be blank", nil)
		}
	}
	return nil
}

// Color returns the color for sev. There is no fallback entry: an unknown
// severity, or one the table does not cover, is a ConfigurationError.
func (a Appearance) Color(sev Severity) (string, error) {
	if !sev.Valid() {
		return "", ribbonerrors.NewConfigurationError(string(sev))
	}
	color, ok := a[sev]
	if !ok || strings.TrimSpace(color) == "" {
		return "", fmt.Errorf("appearance table has no color for %s: %w", sev, ribbonerrors.NewConfigurationError(string(sev)))
	}
	return color, nil
}

// Merge returns a copy of a with the entries of overrides applied on top.
func (a Appearance) Merge(overrides Appearance) Appearance {
	merged := make(Appearance, len(a))
	for sev, color := range a {
		merged[sev] = color
	}
	for sev, color := range overrides {
		merged[sev] = color
	}
	return merged
}
