package input

// ButtonState tracks the primary button between mouse reports
type ButtonState uint8

const (
	ButtonUp   ButtonState = iota // No button held
	ButtonDown                    // Primary button held since the last press
)
