package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/tickwheel/internal/wheel"
)

// FrameMsg drives one animation frame of a wheel. Gen is the wheel
// generation the frame was requested for; frames for an older generation
// are dropped.
type FrameMsg struct {
	ID   int
	Gen  uint64
	Time time.Time
}

// WheelModel hosts a wheel.Wheel in the terminal. One terminal line is one
// row; pointer positions are converted to the wheel's row units.
type WheelModel struct {
	id       int
	title    string
	wheel    *wheel.Wheel
	viewport *wheel.MemoryViewport
	width    int
	focused  bool

	// x, y locate the first visible row on screen.
	x, y int

	dragging   bool
	pending    bool
	pendingGen uint64
	now        func() time.Time
}

// NewWheelModel wraps w. viewport must be the viewport w was created with.
func NewWheelModel(id int, title string, w *wheel.Wheel, viewport *wheel.MemoryViewport) *WheelModel {
	width := lipgloss.Width(title)
	for _, item := range w.Items() {
		width = max(width, lipgloss.Width(item))
	}
	return &WheelModel{
		id:       id,
		title:    title,
		wheel:    w,
		viewport: viewport,
		width:    width + columnPadding,
		now:      time.Now,
	}
}

// Wheel returns the hosted wheel.
func (m *WheelModel) Wheel() *wheel.Wheel {
	return m.wheel
}

// Width returns the column width in cells.
func (m *WheelModel) Width() int {
	return m.width
}

// SetFocused marks the column as keyboard target.
func (m *WheelModel) SetFocused(focused bool) {
	m.focused = focused
}

// Place records where the first visible row is drawn.
func (m *WheelModel) Place(x, y int) {
	m.x, m.y = x, y
}

// Contains reports whether the cell (x, y) is inside the rows.
func (m *WheelModel) Contains(x, y int) bool {
	return x >= m.x && x < m.x+m.width && y >= m.y && y < m.y+m.wheel.VisibleRows()
}

// Dragging reports whether the model holds pointer capture.
func (m *WheelModel) Dragging() bool {
	return m.dragging
}

// pos converts a screen row to a pointer position at the row's center.
func (m *WheelModel) pos(y int) float64 {
	return (float64(y-m.y) + 0.5) * m.wheel.RowHeight()
}

// Press starts a drag when (x, y) is inside the column.
func (m *WheelModel) Press(x, y int) bool {
	if !m.Contains(x, y) {
		return false
	}
	m.dragging = true
	m.wheel.PointerDown(m.pos(y), m.now())
	return true
}

// Motion moves a captured drag. The pointer may leave the column.
func (m *WheelModel) Motion(y int) {
	if m.dragging {
		m.wheel.PointerMove(m.pos(y), m.now())
	}
}

// Release ends a captured drag.
func (m *WheelModel) Release(y int) {
	if !m.dragging {
		return
	}
	m.dragging = false
	m.wheel.PointerUp(m.pos(y), m.now())
}

// Scroll forwards a mouse wheel notch as a native scroll of one row.
func (m *WheelModel) Scroll(rows int) {
	m.viewport.EmitScroll(float64(rows)*m.wheel.RowHeight(), m.now())
}

// Step moves the wheel by rows with the snap animation.
func (m *WheelModel) Step(rows int) {
	m.wheel.Step(rows, m.now())
}

// Frame handles a FrameMsg addressed to this wheel.
func (m *WheelModel) Frame(msg FrameMsg) tea.Cmd {
	if !m.pending || msg.Gen != m.pendingGen {
		return nil
	}
	m.pending = false
	m.wheel.Frame(msg.Time)
	return m.Schedule()
}

// Schedule requests a frame when the wheel is animating and no frame is in
// flight for its current generation.
func (m *WheelModel) Schedule() tea.Cmd {
	if !m.wheel.NeedsFrame() {
		m.pending = false
		return nil
	}
	gen := m.wheel.Generation()
	if m.pending && m.pendingGen == gen {
		return nil
	}
	m.pending = true
	m.pendingGen = gen

	id := m.id
	return tea.Tick(wheel.Frame, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, Time: t}
	})
}

// Header renders the column title.
func (m *WheelModel) Header() string {
	return headerStyle(m.focused).Width(m.width).Align(lipgloss.Center).Render(m.title)
}

// View renders the visible rows, emphasizing the centered one.
func (m *WheelModel) View() string {
	rows := m.wheel.Rows()
	if len(rows) == 0 {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", m.width)+"\n", m.wheel.VisibleRows()), "\n")
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		style := rowStyle(r.Distance)
		if r.Centered {
			style = centerStyle(m.focused)
		}
		lines[i] = style.Width(m.width).Align(lipgloss.Center).Render(r.Label)
	}
	return strings.Join(lines, "\n")
}
