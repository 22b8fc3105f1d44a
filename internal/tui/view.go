package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ribbon/internal/view"
)

// View renders the current model state.
func (m Model) View() string {
	if len(m.instances) == 0 {
		return emptyStateStyle.Render("No badges configured.")
	}

	frame, _ := m.layout()

	var content strings.Builder
	if banner := m.renderBanner(); banner != "" {
		content.WriteString(banner)
		content.WriteString("\n")
	}
	content.WriteString(frame.Content)
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))
	return content.String()
}

// layout renders every badge and composes them into a frame. It also returns
// the screen row the frame starts at.
func (m Model) layout() (view.Frame, int) {
	banner := m.renderBanner()
	top := 0
	if banner != "" {
		top = lipgloss.Height(banner)
	}
	bodyHeight := max(0, m.height-top-lipgloss.Height(m.help.View(m.keys)))

	roots := make([]view.Block, 0, len(m.instances))
	panels := make([]view.Block, 0, len(m.instances))
	for i, inst := range m.instances {
		tree, err := inst.badge.Render(inst.props)
		if err != nil {
			roots = append(roots, view.Block{Owner: i, Content: m.renderer.Error(inst.props.Label, err)})
			continue
		}
		roots = append(roots, view.Block{Owner: i, Content: m.renderer.Root(tree.Root, i == m.focus)})
		if tree.Panel != nil {
			panels = append(panels, view.Block{Owner: i, Content: m.renderer.Panel(tree.Panel)})
		}
	}

	return view.Compose(m.width, bodyHeight, m.corner, roots, panels), top
}

func (m Model) renderBanner() string {
	if m.reloadErr == "" {
		return ""
	}
	return reloadBannerStyle.Render("reload failed: " + m.reloadErr)
}
