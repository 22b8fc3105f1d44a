package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Corner is the screen corner the ribbons are pinned to.
type Corner string

const (
	TopLeft     Corner = "top-left"
	TopRight    Corner = "top-right"
	BottomLeft  Corner = "bottom-left"
	BottomRight Corner = "bottom-right"
)

// Corners lists the supported corners.
func Corners() []Corner {
	return []Corner{TopLeft, TopRight, BottomLeft, BottomRight}
}

// ParseCorner converts a config value into a Corner. Empty selects TopLeft.
func ParseCorner(value string) (Corner, error) {
	if value == "" {
		return TopLeft, nil
	}
	for _, c := range Corners() {
		if string(c) == value {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown corner %q", value)
}

func (c Corner) right() bool  { return c == TopRight || c == BottomRight }
func (c Corner) bottom() bool { return c == BottomLeft || c == BottomRight }

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Block is one already-drawn element placed by Compose. Owner identifies the
// badge it belongs to.
type Block struct {
	Owner   int
	Content string
}

// Frame is a composed screen plus the hit areas needed to route clicks.
type Frame struct {
	Content string
	Roots   []Hit
	Closes  []Hit
}

// Hit maps a screen rectangle back to the badge that drew it.
type Hit struct {
	Owner int
	Area  Rect
}

// RootAt returns the badge whose ribbon covers (x, y).
func (f Frame) RootAt(x, y int) (int, bool) {
	return hitAt(f.Roots, x, y)
}

// CloseAt returns the badge whose panel heading row covers (x, y).
func (f Frame) CloseAt(x, y int) (int, bool) {
	return hitAt(f.Closes, x, y)
}

func hitAt(hits []Hit, x, y int) (int, bool) {
	for _, h := range hits {
		if h.Area.Contains(x, y) {
			return h.Owner, true
		}
	}
	return -1, false
}

// Compose pins the roots in a row at corner and centers the visible panels in
// the remaining space of a width x height area.
func Compose(width, height int, corner Corner, roots, panels []Block) Frame {
	var frame Frame

	rowWidth, rowHeight := 0, 0
	for i, root := range roots {
		if i > 0 {
			rowWidth += rootGap
		}
		rowWidth += lipgloss.Width(root.Content)
		rowHeight = max(rowHeight, lipgloss.Height(root.Content))
	}

	rowX := 0
	if corner.right() {
		rowX = max(0, width-rowWidth)
	}

	panelAreaHeight := max(0, height-rowHeight)
	rowY := 0
	panelAreaY := rowHeight
	if corner.bottom() {
		rowY = panelAreaHeight
		panelAreaY = 0
	}

	x := rowX
	drawnRoots := make([]string, 0, len(roots)*2)
	for i, root := range roots {
		if i > 0 {
			drawnRoots = append(drawnRoots, strings.Repeat(" ", rootGap))
			x += rootGap
		}
		w, h := lipgloss.Width(root.Content), lipgloss.Height(root.Content)
		frame.Roots = append(frame.Roots, Hit{Owner: root.Owner, Area: Rect{X: x, Y: rowY, Width: w, Height: h}})
		drawnRoots = append(drawnRoots, root.Content)
		x += w
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, drawnRoots...)
	row = indent(row, rowX)

	panelHeight := 0
	drawnPanels := make([]string, 0, len(panels))
	for _, panel := range panels {
		if panel.Content == "" {
			continue
		}
		drawnPanels = append(drawnPanels, panel.Content)
		panelHeight += lipgloss.Height(panel.Content)
	}

	panelTop := max(0, (panelAreaHeight-panelHeight)/2)

	// Bottom corners drop the top lines of an area that does not fit.
	shift := 0
	if corner.bottom() {
		shift = max(0, panelTop+panelHeight-panelAreaHeight)
	}

	y := panelAreaY + panelTop - shift
	for _, panel := range panels {
		if panel.Content == "" {
			continue
		}
		w, h := lipgloss.Width(panel.Content), lipgloss.Height(panel.Content)
		px := max(0, (width-w)/2)
		// The heading is the first line after the panel's top padding.
		heading := y + 1
		if heading >= panelAreaY && heading < panelAreaY+panelAreaHeight {
			frame.Closes = append(frame.Closes, Hit{Owner: panel.Owner, Area: Rect{X: px, Y: heading, Width: w, Height: 1}})
		}
		y += h
	}

	var area string
	if len(drawnPanels) > 0 {
		blocks := make([]string, 0, len(drawnPanels))
		for _, p := range drawnPanels {
			blocks = append(blocks, indent(p, max(0, (width-lipgloss.Width(p))/2)))
		}
		area = strings.Repeat("\n", panelTop) + lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	if corner.bottom() && panelAreaHeight > 0 {
		frame.Content = padLines(area, panelAreaHeight) + "\n" + row
	} else if !corner.bottom() && area != "" {
		frame.Content = row + "\n" + area
	} else {
		frame.Content = row
	}
	return frame
}

func indent(block string, n int) string {
	if n <= 0 || block == "" {
		return block
	}
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// padLines makes block exactly n lines tall, truncating from the top if needed.
func padLines(block string, n int) string {
	var lines []string
	if block != "" {
		lines = strings.Split(block, "\n")
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
