package badge

import (
	"strings"

	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// Attributes are host presentation attributes forwarded verbatim to the rendered root.
// The widget never inspects them.
type Attributes map[string]string

// Props are the inputs to a single render of a badge.
type Props struct {
	Label    string
	Severity Severity
	Detail   Detail
	Attrs    Attributes
}

// Validate checks the props against the appearance table without rendering.
func (p Props) Validate(appearance Appearance) error {
	if strings.TrimSpace(p.Label) == "" {
		return ribbonerrors.NewValidationError("label", "label is required", nil)
	}
	if _, err := appearance.Color(p.Severity.orDefault()); err != nil {
		return err
	}
	if detail, ok := detailOf(p.Detail); ok && strings.TrimSpace(detail.Short) == "" {
		return ribbonerrors.NewMalformedDetailError(p.Label)
	}
	return nil
}

// HasDetail reports whether the props carry detail information.
func (p Props) HasDetail() bool {
	_, ok := detailOf(p.Detail)
	return ok
}
