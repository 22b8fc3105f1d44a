package badge

import (
	"strings"

	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// CloseAffordance is the text of the panel's close control.
const CloseAffordance = "X"

// Panel is the rendered detail overlay.
// An invisible panel is still constructed; it just has no visual presence.
type Panel struct {
	Heading  string
	Close    string
	Short    string
	Full     string
	Color    string
	Severity Severity
	Visible  bool
	OnClose  func()
}

// HasFull reports whether the full text block is present.
func (p Panel) HasFull() bool {
	return p.Full != ""
}

// RenderPanel renders the detail overlay for a badge with detail information.
func RenderPanel(label string, severity Severity, detail WithDetail, visible bool, appearance Appearance, onClose func()) (Panel, error) {
	if strings.TrimSpace(detail.Short) == "" {
		return Panel{}, ribbonerrors.NewMalformedDetailError(label)
	}

	color, err := appearance.Color(severity)
	if err != nil {
		return Panel{}, err
	}

	panel := Panel{
		Heading:  label,
		Close:    CloseAffordance,
		Short:    detail.Short,
		Color:    color,
		Severity: severity,
		Visible:  visible,
		OnClose:  onClose,
	}
	if detail.HasFull() {
		panel.Full = detail.Full
	}
	return panel, nil
}
