package ui

// AppMode describes where key presses go.
type AppMode int

const (
	// ModeBrowse: focus is on a button; plain keys reach the keybind system.
	ModeBrowse AppMode = iota
	// ModeInput: focus is in a text field; only ctrl keys reach the keybind system.
	ModeInput
	// ModePicker: the photo picker is open and owns the keyboard.
	ModePicker
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeInput:
		return "Input"
	case ModePicker:
		return "Picker"
	default:
		return "Unknown"
	}
}
