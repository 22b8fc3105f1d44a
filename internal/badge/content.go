package badge

// MoreInfoHint is shown under the label when the badge can be expanded.
const MoreInfoHint = "(Click for more Info)"

// Content is the rendered body of the ribbon.
type Content struct {
	Label string
	Hint  string
}

// HasHint reports whether the hint line is present.
func (c Content) HasHint() bool {
	return c.Hint != ""
}

// RenderContent renders the ribbon body. The hint is present iff hasDetail.
func RenderContent(label string, hasDetail bool) Content {
	content := Content{Label: label}
	if hasDetail {
		content.Hint = MoreInfoHint
	}
	return content
}
