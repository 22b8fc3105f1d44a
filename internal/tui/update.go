package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/ribbon/internal/config"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ConfigReloadedMsg:
		m.applyScene(msg.Scene)
		m.reloadErr = ""
		m.log.Info("config reloaded", "badges", len(m.instances))
		return m, m.rewatch()

	case ReloadFailedMsg:
		m.reloadErr = msg.Err.Error()
		m.log.Warn("config reload failed", "error", msg.Err.Error())
		return m, m.rewatch()

	case WatchStoppedMsg:
		if msg.Err != nil && !errors.Is(msg.Err, config.ErrWatcherClosed) {
			m.log.Error(msg.Err, "config watcher stopped")
		}
		m.watcher = nil
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		m.activateRoot(m.focus)
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.activateClose(m.focus)
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	frame, top := m.layout()
	x, y := msg.X, msg.Y-top

	if owner, ok := frame.CloseAt(x, y); ok {
		m.focus = owner
		m.activateClose(owner)
		return m, nil
	}
	if owner, ok := frame.RootAt(x, y); ok {
		m.focus = owner
		m.activateRoot(owner)
	}
	return m, nil
}

// activateRoot renders the badge first so activation acts on what is on screen.
func (m Model) activateRoot(index int) {
	if index < 0 || index >= len(m.instances) {
		return
	}
	inst := m.instances[index]
	if _, err := inst.badge.Render(inst.props); err != nil {
		m.logFor(inst).Debug("activation ignored on broken badge", "error", err.Error())
		return
	}
	inst.badge.ActivateRoot()
	m.logFor(inst).Debug("root activated", "state", inst.badge.State().String())
}

func (m Model) activateClose(index int) {
	if index < 0 || index >= len(m.instances) {
		return
	}
	inst := m.instances[index]
	inst.badge.ActivateClose()
	m.logFor(inst).Debug("close activated", "state", inst.badge.State().String())
}

func (m Model) rewatch() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return watchCmd(m.watcher)
}

func watchCmd(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		if err := w.Next(context.Background()); err != nil {
			return WatchStoppedMsg{Err: err}
		}
		scene, err := config.Load(w.Path())
		if err != nil {
			return ReloadFailedMsg{Err: err}
		}
		return ConfigReloadedMsg{Scene: scene}
	}
}
