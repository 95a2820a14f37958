package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the picker views.
//
//nolint:gochecknoglobals // lipgloss colors are immutable values
var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorHighlight = lipgloss.Color("212")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("63")
)

// Layout constants in terminal cells.
const (
	columnGap     = 1
	columnPadding = 2
	modalBorder   = 1
	modalPadding  = 1
	// headerLines is the title line plus the column header line above the rows.
	headerLines = 2
)

func centerStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	if focused {
		s = s.Foreground(ColorHighlight).Underline(true)
	}
	return s
}

func rowStyle(distance float64) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(ColorLabel)
	if distance > 1.5 || distance < -1.5 {
		s = s.Foreground(ColorMuted).Faint(true)
	}
	return s
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
}

func headerStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(ColorMuted)
	if focused {
		s = s.Foreground(ColorHeader)
	}
	return s
}

func modalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, modalPadding)
}
