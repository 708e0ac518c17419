package constants

// KeyAction is the phase of a button press. The device tracks key state,
// so a logical press is always a Down immediately followed by an Up.
type KeyAction string

const (
	KeyDown KeyAction = "keyDown"
	KeyUp   KeyAction = "keyUp"
)

// ScanDirection selects which way a media scan seeks.
type ScanDirection string

const (
	ScanForward  ScanDirection = "forward"
	ScanBackward ScanDirection = "backward"
)

// Navigation actions use the down/up composition; the rest are one-shot.
const (
	ActionDpadUp    = "dpad_up"
	ActionDpadDown  = "dpad_down"
	ActionDpadLeft  = "dpad_left"
	ActionDpadRight = "dpad_right"
	ActionSelect    = "select"
	ActionBack      = "back"
	ActionHome      = "home"
	ActionMenu      = "menu"
	ActionPlay      = "play"
	ActionScan      = "scan"
)
