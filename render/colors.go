package render

import (
	"github.com/gdamore/tcell/v2"
)

// Default palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBoard      = tcell.NewRGBColor(32, 34, 48)    // Slightly lifted board area
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted gray frame
	RgbLine       = tcell.NewRGBColor(51, 118, 255)  // Segment blue
	RgbDirection  = tcell.NewRGBColor(34, 34, 255)   // Deeper blue for the indicator
	RgbMarker     = tcell.NewRGBColor(51, 118, 255)  // Same as segment
	RgbActive     = tcell.NewRGBColor(255, 215, 95)  // Warm yellow while grabbing
	RgbButton     = tcell.NewRGBColor(200, 200, 200) // Light gray label
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbWarning    = tcell.NewRGBColor(255, 80, 80)   // Too-small notice
)
