package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds lipgloss colors for table rendering.
type Palette struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkPalette matches DarkTheme.
	DarkPalette = Palette{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#4488FF"),
		Accent:  lipgloss.Color("#00AFFF"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// LightPalette matches LightTheme.
	LightPalette = Palette{
		Text:    lipgloss.Color("#1A1A1A"),
		Border:  lipgloss.Color("#005FAF"),
		Accent:  lipgloss.Color("#005FFF"),
		Success: lipgloss.Color("#008700"),
		Warning: lipgloss.Color("#AF5F00"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#585858"),
	}

	// NoColorPalette renders with the terminal's default colors.
	NoColorPalette = Palette{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// CurrentPalette returns the palette matching the active theme.
func CurrentPalette() Palette {
	switch GetCurrentTheme().Name {
	case NoColorTheme.Name:
		return NoColorPalette
	case LightTheme.Name:
		return LightPalette
	}
	return DarkPalette
}

// Styles are the lipgloss styles used for tabular CLI output.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Dim     lipgloss.Style
	Changed lipgloss.Style
	OK      lipgloss.Style
	Warn    lipgloss.Style
	Fail    lipgloss.Style
	Border  lipgloss.Style
}

// CurrentStyles builds Styles from CurrentPalette.
func CurrentStyles() Styles {
	p := CurrentPalette()
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1),
		Dim:     lipgloss.NewStyle().Foreground(p.Dim).Padding(0, 1),
		Changed: lipgloss.NewStyle().Foreground(p.Warning).Padding(0, 1),
		OK:      lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		Warn:    lipgloss.NewStyle().Bold(true).Foreground(p.Warning),
		Fail:    lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Border:  lipgloss.NewStyle().Foreground(p.Border),
	}
}
