// Package view draws badge render trees as styled terminal text.
package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ribbon/internal/badge"
)

// Options tweak how a tree is drawn.
type Options struct {
	// ShowAttrs prints the passthrough attributes under the ribbon.
	ShowAttrs bool
}

// Renderer turns render trees into strings.
type Renderer struct {
	styles  Styles
	options Options
}

// NewRenderer creates a renderer that detects color support on stdout.
func NewRenderer(opts Options) *Renderer {
	return NewRendererForWriter(os.Stdout, opts)
}

// NewRendererForWriter creates a renderer whose color profile is detected from w.
// Writers that are not terminals produce plain text.
func NewRendererForWriter(w io.Writer, opts Options) *Renderer {
	return &Renderer{
		styles:  NewStyles(lipgloss.NewRenderer(w)),
		options: opts,
	}
}

// Root draws the ribbon. Interactive roots show a focus border when focused;
// inert roots never do.
func (r *Renderer) Root(root badge.Root, focused bool) string {
	fill := lipgloss.Color(root.Color)

	lines := []string{
		r.styles.Label.Background(fill).Render(strings.ToUpper(root.Content.Label)),
	}
	if root.Content.HasHint() {
		lines = append(lines, r.styles.Hint.Background(fill).Render(root.Content.Hint))
	}
	if r.options.ShowAttrs && len(root.Attrs) > 0 {
		lines = append(lines, r.styles.Attrs.Background(fill).Render(formatAttrs(root.Attrs)))
	}

	ribbon := r.styles.Ribbon.Background(fill).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	frame := r.styles.Focus
	if !focused || !root.Interactive {
		frame = frame.BorderStyle(lipgloss.HiddenBorder())
	}
	return frame.Render(ribbon)
}

// Panel draws the detail overlay. A nil or invisible panel has no visual presence.
func (r *Renderer) Panel(panel *badge.Panel) string {
	if panel == nil || !panel.Visible {
		return ""
	}
	fill := lipgloss.Color(panel.Color)

	closeControl := r.styles.Close.Background(fill).Render(panel.Close)
	headingWidth := panelWidth - 4 - lipgloss.Width(closeControl)
	heading := lipgloss.JoinHorizontal(
		lipgloss.Top,
		r.styles.Heading.Background(fill).Width(headingWidth).Render(strings.ToUpper(panel.Heading)),
		closeControl,
	)

	parts := []string{heading, r.styles.Short.Render(panel.Short)}
	if panel.HasFull() {
		parts = append(parts, r.styles.Full.Render(panel.Full))
	}

	return r.styles.Panel.Background(fill).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Tree draws a single badge: the ribbon followed by its panel when visible.
func (r *Renderer) Tree(tree badge.Tree) string {
	root := r.Root(tree.Root, false)
	panel := r.Panel(tree.Panel)
	if panel == "" {
		return root
	}
	return lipgloss.JoinVertical(lipgloss.Left, root, panel)
}

// Error draws the explicit indicator shown in place of a badge that failed to render.
func (r *Renderer) Error(label string, err error) string {
	title := "BADGE ERROR"
	if strings.TrimSpace(label) != "" {
		title = fmt.Sprintf("BADGE ERROR: %s", strings.ToUpper(label))
	}
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.ErrorHeading.Render(title),
		err.Error(),
	)
	return r.styles.ErrorBanner.Render(body)
}

func formatAttrs(attrs badge.Attributes) string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, attrs[key]))
	}
	return strings.Join(pairs, " ")
}
