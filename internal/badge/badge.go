package badge

// State is the visibility state of a badge's detail panel.
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	switch s {
	case Expanded:
		return "expanded"
	default:
		return "collapsed"
	}
}

// Root is the always-rendered ribbon.
type Root struct {
	Content     Content
	Severity    Severity
	Color       string
	Interactive bool
	Attrs       Attributes
	OnActivate  func()
}

// Tree is the result of rendering a badge. Panel is nil when the props carry no detail.
type Tree struct {
	Root  Root
	Panel *Panel
}

// Badge is the stateful container. It owns the panel visibility flag and
// nothing else; props are supplied fresh on every render.
type Badge struct {
	appearance  Appearance
	state       State
	interactive bool
}

// New creates a collapsed badge that looks colors up in appearance.
// A nil appearance selects DefaultAppearance.
func New(appearance Appearance) *Badge {
	if appearance == nil {
		appearance = DefaultAppearance()
	}
	return &Badge{appearance: appearance, state: Collapsed}
}

// SetAppearance replaces the color table used from the next render on.
// A nil table selects DefaultAppearance.
func (b *Badge) SetAppearance(appearance Appearance) {
	if appearance == nil {
		appearance = DefaultAppearance()
	}
	b.appearance = appearance
}

// State returns the current visibility state.
func (b *Badge) State() State {
	return b.state
}

// Expanded reports whether the detail panel is visible.
func (b *Badge) Expanded() bool {
	return b.state == Expanded
}

// Interactive reports whether the last rendered root accepts activation.
func (b *Badge) Interactive() bool {
	return b.interactive
}

// ActivateRoot toggles the panel. It is a no-op when the last rendered root was inert.
func (b *Badge) ActivateRoot() {
	if !b.interactive {
		return
	}
	if b.state == Expanded {
		b.state = Collapsed
		return
	}
	b.state = Expanded
}

// ActivateClose hides the panel unconditionally.
func (b *Badge) ActivateClose() {
	b.state = Collapsed
}

// Render validates props and produces the render tree for the current state.
// On error no tree is produced, the panel state is left untouched and the root
// stops accepting activation until a render succeeds.
func (b *Badge) Render(p Props) (Tree, error) {
	if err := p.Validate(b.appearance); err != nil {
		b.interactive = false
		return Tree{}, err
	}

	severity := p.Severity.orDefault()
	color, err := b.appearance.Color(severity)
	if err != nil {
		b.interactive = false
		return Tree{}, err
	}

	detail, hasDetail := detailOf(p.Detail)

	var panel *Panel
	if hasDetail {
		rendered, err := RenderPanel(p.Label, severity, detail, b.state == Expanded, b.appearance, b.ActivateClose)
		if err != nil {
			b.interactive = false
			return Tree{}, err
		}
		panel = &rendered
	}

	b.interactive = hasDetail
	if !hasDetail {
		b.state = Collapsed
	}

	root := Root{
		Content:     RenderContent(p.Label, hasDetail),
		Severity:    severity,
		Color:       color,
		Interactive: hasDetail,
		Attrs:       p.Attrs,
	}
	if hasDetail {
		root.OnActivate = b.ActivateRoot
	}

	return Tree{Root: root, Panel: panel}, nil
}
