package render

import "github.com/gdamore/tcell/v2"

// Theme holds the styles used by every layer
type Theme struct {
	Screen    tcell.Style
	Board     tcell.Style
	Border    tcell.Style
	Line      tcell.Style
	Direction tcell.Style
	Marker    tcell.Style
	Active    tcell.Style
	Button    tcell.Style
	Status    tcell.Style
	Warning   tcell.Style
}

// Palette names the configurable colors of a theme
type Palette struct {
	Border    tcell.Color
	Line      tcell.Color
	Direction tcell.Color
	Marker    tcell.Color
	Active    tcell.Color
	Button    tcell.Color
	Status    tcell.Color
}

// DefaultPalette returns the built-in colors
func DefaultPalette() Palette {
	return Palette{
		Border:    RgbBorder,
		Line:      RgbLine,
		Direction: RgbDirection,
		Marker:    RgbMarker,
		Active:    RgbActive,
		Button:    RgbButton,
		Status:    RgbStatusBar,
	}
}

// DefaultTheme returns the theme built from DefaultPalette
func DefaultTheme() Theme {
	return NewTheme(DefaultPalette())
}

// NewTheme derives styles from a palette
func NewTheme(p Palette) Theme {
	screen := tcell.StyleDefault.Background(RgbBackground)
	board := tcell.StyleDefault.Background(RgbBoard)

	return Theme{
		Screen:    screen,
		Board:     board,
		Border:    screen.Foreground(p.Border),
		Line:      board.Foreground(p.Line),
		Direction: board.Foreground(p.Direction).Bold(true),
		Marker:    board.Foreground(p.Marker).Bold(true),
		Active:    board.Foreground(p.Active).Bold(true),
		Button:    screen.Foreground(p.Button),
		Status:    screen.Foreground(p.Status),
		Warning:   screen.Foreground(RgbWarning).Bold(true),
	}
}
