// Package tui hosts badges in a bubbletea program and routes key presses and
// mouse clicks to their activation entry points.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/ribbon/internal/badge"
	"github.com/alexisbeaulieu97/ribbon/internal/config"
	"github.com/alexisbeaulieu97/ribbon/internal/logger"
	"github.com/alexisbeaulieu97/ribbon/internal/view"
)

// Options carries the collaborators of the host model. All fields are optional.
type Options struct {
	Renderer *view.Renderer
	Logger   *logger.Logger
	Watcher  *config.Watcher
}

// instance is one hosted badge: its state object plus the props it is rendered with.
type instance struct {
	id    string
	badge *badge.Badge
	props badge.Props
}

// Model is the bubbletea model hosting a scene of badges.
type Model struct {
	instances  []instance
	corner     view.Corner
	appearance badge.Appearance

	renderer *view.Renderer
	log      *logger.Logger
	watcher  *config.Watcher

	keys KeyMap
	help help.Model

	focus     int
	reloadErr string

	width  int
	height int
}

// NewModel creates a host model for scene.
func NewModel(scene *config.Scene, opts Options) Model {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = view.NewRenderer(view.Options{})
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := Model{
		corner:     view.TopLeft,
		appearance: badge.DefaultAppearance(),
		renderer:   renderer,
		log:        log,
		watcher:    opts.Watcher,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	if scene != nil {
		m.applyScene(scene)
	}
	return m
}

// Init starts watching the config file when a watcher was supplied.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return watchCmd(m.watcher)
}

// applyScene swaps in a new scene. Badges are matched to existing instances
// by label so their panel state survives a reload.
func (m *Model) applyScene(scene *config.Scene) {
	if scene.Corner != "" {
		m.corner = scene.Corner
	}
	if scene.Appearance != nil {
		m.appearance = scene.Appearance
	}

	existing := make(map[string][]instance, len(m.instances))
	for _, inst := range m.instances {
		existing[inst.props.Label] = append(existing[inst.props.Label], inst)
	}

	next := make([]instance, 0, len(scene.Badges))
	for _, props := range scene.Badges {
		if queue := existing[props.Label]; len(queue) > 0 {
			inst := queue[0]
			existing[props.Label] = queue[1:]
			inst.badge.SetAppearance(m.appearance)
			inst.props = props
			next = append(next, inst)
			continue
		}
		next = append(next, instance{
			id:    uuid.NewString(),
			badge: badge.New(m.appearance),
			props: props,
		})
	}

	m.instances = next
	if m.focus >= len(m.instances) {
		m.focus = 0
	}
}

// BadgeCount returns the number of hosted badges.
func (m Model) BadgeCount() int {
	return len(m.instances)
}

// Focus returns the index of the focused badge.
func (m Model) Focus() int {
	return m.focus
}

// State returns the panel state of the badge at index.
func (m Model) State(index int) badge.State {
	if index < 0 || index >= len(m.instances) {
		return badge.Collapsed
	}
	return m.instances[index].badge.State()
}

// ReloadError returns the message of the last failed reload, if any.
func (m Model) ReloadError() string {
	return m.reloadErr
}

func (m *Model) moveFocus(delta int) {
	if len(m.instances) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.instances)) % len(m.instances)
}

func (m Model) logFor(inst instance) *logger.Logger {
	return m.log.With("badge_id", inst.id, "label", inst.props.Label, "severity", inst.props.Severity.String())
}
