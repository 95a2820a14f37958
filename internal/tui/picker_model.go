package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/tickwheel/internal/picker"
	"github.com/rshade/tickwheel/internal/timeconv"
	"github.com/rshade/tickwheel/internal/wheel"
)

// Presentation selects how the picker is drawn.
type Presentation int

const (
	// PresentationModal draws a bordered box centered in the window;
	// clicking outside it closes the picker.
	PresentationModal Presentation = iota
	// PresentationEmbedded draws the picker inline at the top left.
	PresentationEmbedded
)

// Default dimensions before the first WindowSizeMsg.
const (
	pickerDefaultWidth  = 80
	pickerDefaultHeight = 24
)

// Result is what the picker ended with.
type Result struct {
	Time      string
	Date      timeconv.Date
	HasTime   bool
	HasDate   bool
	Recurring bool
	Confirmed bool
}

// PickerConfig configures NewPickerModel.
type PickerConfig struct {
	Kind         Kind
	Time         string
	Date         timeconv.Date
	Options      picker.Options
	Callbacks    picker.Callbacks
	Presentation Presentation
	// Now overrides the clock used for pointer events.
	Now func() time.Time
}

// Kind selects which editors the picker has.
type Kind int

// Picker kinds.
const (
	KindTime Kind = iota
	KindDate
	KindDateTime
)

// PickerModel is the Bubble Tea model for a time and/or date picker.
type PickerModel struct {
	picker       *picker.Picker
	wheels       map[picker.View]map[picker.Column]*WheelModel
	all          []*WheelModel
	focus        int
	presentation Presentation
	keys         keyMap
	help         help.Model
	confirmed    bool
	quitting     bool

	width, height int
	// box is the modal's outer rectangle.
	boxX, boxY, boxW, boxH int
}

// NewPickerModel builds the picker and its wheel models. The callbacks in
// cfg receive every live change; OnConfirm and OnClose are wrapped so the
// program quits when the picker closes.
func NewPickerModel(ctx context.Context, cfg PickerConfig) *PickerModel {
	m := &PickerModel{
		wheels:       make(map[picker.View]map[picker.Column]*WheelModel),
		presentation: cfg.Presentation,
		keys:         defaultKeyMap(),
		help:         help.New(),
		width:        pickerDefaultWidth,
		height:       pickerDefaultHeight,
	}

	viewports := make(map[picker.Column]wheel.Viewport)
	memory := make(map[picker.Column]*wheel.MemoryViewport)
	for _, col := range []picker.Column{
		picker.ColumnHour, picker.ColumnMinute, picker.ColumnPeriod,
		picker.ColumnMonth, picker.ColumnDay, picker.ColumnYear,
	} {
		memory[col] = wheel.NewMemoryViewport()
		viewports[col] = memory[col]
	}
	opts := cfg.Options
	opts.Viewports = viewports

	cb := cfg.Callbacks
	onConfirm := cb.OnConfirm
	cb.OnConfirm = func() {
		m.confirmed = true
		if onConfirm != nil {
			onConfirm()
		}
	}
	onClose := cb.OnClose
	cb.OnClose = func() {
		m.quitting = true
		if onClose != nil {
			onClose()
		}
	}

	switch cfg.Kind {
	case KindDate:
		m.picker = picker.NewDatePicker(ctx, cfg.Date, opts, cb)
	case KindDateTime:
		m.picker = picker.NewDateTimePicker(ctx, cfg.Time, cfg.Date, opts, cb)
	default:
		m.picker = picker.NewTimePicker(ctx, cfg.Time, opts, cb)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	for _, view := range []picker.View{picker.ViewTime, picker.ViewDate} {
		if (view == picker.ViewTime && !m.picker.HasTime()) || (view == picker.ViewDate && !m.picker.HasDate()) {
			continue
		}
		current := m.picker.View()
		m.picker.SetView(view)
		m.wheels[view] = make(map[picker.Column]*WheelModel)
		for _, col := range m.picker.Columns() {
			wm := NewWheelModel(len(m.all), col.String(), m.picker.Wheel(col), memory[col])
			wm.now = now
			m.wheels[view][col] = wm
			m.all = append(m.all, wm)
		}
		m.picker.SetView(current)
	}

	m.refocus()
	m.layout()
	return m
}

// Picker returns the underlying picker.
func (m *PickerModel) Picker() *picker.Picker {
	return m.picker
}

// Result returns the final state. Values reflect live edits even when the
// picker was closed without confirming.
func (m *PickerModel) Result() Result {
	return Result{
		Time:      m.picker.Time(),
		Date:      m.picker.Date(),
		HasTime:   m.picker.HasTime(),
		HasDate:   m.picker.HasDate(),
		Recurring: m.picker.Recurring(),
		Confirmed: m.confirmed,
	}
}

// Init implements tea.Model.
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()

	case FrameMsg:
		if msg.ID >= 0 && msg.ID < len(m.all) {
			cmd = m.all[msg.ID].Frame(msg)
		}

	case tea.KeyMsg:
		m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.schedule())
}

// schedule requests frames for every wheel that started animating.
func (m *PickerModel) schedule() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.all))
	for _, wm := range m.all {
		if c := wm.Schedule(); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

func (m *PickerModel) handleKeyMsg(msg tea.KeyMsg) {
	focused := m.focused()
	switch {
	case key.Matches(msg, m.keys.Close):
		m.picker.Close()
	case key.Matches(msg, m.keys.Confirm):
		m.picker.Confirm()
	case key.Matches(msg, m.keys.Up):
		focused.Step(-1)
	case key.Matches(msg, m.keys.Down):
		focused.Step(1)
	case key.Matches(msg, m.keys.PageUp):
		focused.Step(-5)
	case key.Matches(msg, m.keys.PageDown):
		focused.Step(5)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.View):
		m.picker.ToggleView()
		m.focus = 0
		m.refocus()
		m.layout()
	case key.Matches(msg, m.keys.Recurring):
		m.picker.SetRecurring(!m.picker.Recurring())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
}

//nolint:exhaustive // Only left button and wheel events drive the picker.
func (m *PickerModel) handleMouseMsg(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			rows := 1
			if msg.Button == tea.MouseButtonWheelUp {
				rows = -1
			}
			for _, wm := range m.visible() {
				if wm.Contains(msg.X, msg.Y) {
					wm.Scroll(rows)
				}
			}
		case tea.MouseButtonLeft:
			for i, wm := range m.visible() {
				if wm.Press(msg.X, msg.Y) {
					m.focus = i
					m.refocus()
					return
				}
			}
			if m.presentation == PresentationModal && !m.insideBox(msg.X, msg.Y) {
				m.picker.Close()
			}
		}

	case tea.MouseActionMotion:
		for _, wm := range m.visible() {
			wm.Motion(msg.Y)
		}

	case tea.MouseActionRelease:
		for _, wm := range m.visible() {
			wm.Release(msg.Y)
		}
	}
}

// visible returns the wheel models of the current view, left to right.
func (m *PickerModel) visible() []*WheelModel {
	view := m.wheels[m.picker.View()]
	cols := m.picker.Columns()
	out := make([]*WheelModel, 0, len(cols))
	for _, col := range cols {
		out = append(out, view[col])
	}
	return out
}

func (m *PickerModel) focused() *WheelModel {
	return m.visible()[m.focus]
}

func (m *PickerModel) moveFocus(delta int) {
	n := len(m.visible())
	m.focus = ((m.focus+delta)%n + n) % n
	m.refocus()
}

func (m *PickerModel) refocus() {
	for _, wm := range m.all {
		wm.SetFocused(false)
	}
	m.focused().SetFocused(true)
}

func (m *PickerModel) insideBox(x, y int) bool {
	return x >= m.boxX && x < m.boxX+m.boxW && y >= m.boxY && y < m.boxY+m.boxH
}

// layout positions the modal box and every visible wheel for hit testing.
func (m *PickerModel) layout() {
	body := m.body()
	inset := 0
	m.boxX, m.boxY = 0, 0
	m.boxW, m.boxH = lipgloss.Width(body), lipgloss.Height(body)

	if m.presentation == PresentationModal {
		box := modalStyle().Render(body)
		m.boxW, m.boxH = lipgloss.Width(box), lipgloss.Height(box)
		m.boxX = max(0, (m.width-m.boxW)/2)
		m.boxY = max(0, (m.height-m.boxH)/2)
		inset = modalBorder
	}

	x := m.boxX + inset
	if m.presentation == PresentationModal {
		x += modalPadding
	}
	y := m.boxY + inset + headerLines
	for _, wm := range m.visible() {
		wm.Place(x, y)
		x += wm.Width() + columnGap
	}
}

// body renders the picker content without the modal frame.
func (m *PickerModel) body() string {
	wheels := m.visible()
	headers := make([]string, 0, 2*len(wheels))
	columns := make([]string, 0, 2*len(wheels))
	gap := strings.Repeat(" ", columnGap)
	for i, wm := range wheels {
		if i > 0 {
			headers = append(headers, gap)
			columns = append(columns, gap)
		}
		headers = append(headers, wm.Header())
		columns = append(columns, wm.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.title(),
		lipgloss.JoinHorizontal(lipgloss.Top, headers...),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		"",
		m.help.View(m.keys),
	)
}

func (m *PickerModel) title() string {
	label := "Set time"
	if m.picker.View() == picker.ViewDate {
		label = "Set date"
	}
	repeat := "[ ] repeat"
	if m.picker.Recurring() {
		repeat = "[x] repeat"
	}
	return titleStyle().Render(label) + "  " + lipgloss.NewStyle().Foreground(ColorLabel).Render(repeat)
}

// View implements tea.Model.
func (m *PickerModel) View() string {
	if m.quitting {
		return ""
	}
	body := m.body()
	if m.presentation == PresentationEmbedded {
		return body
	}
	return modalStyle().
		MarginLeft(m.boxX).
		MarginTop(m.boxY).
		Render(body)
}
