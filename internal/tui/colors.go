package tui

// Shared color palette for TUI rendering (ANSI 256 codes).
const (
	ColorAccentMain    = "205"
	ColorAccentBright  = "213"
	ColorPrimaryText   = "255"
	ColorSecondaryText = "245"
	ColorHelpText      = "241"
	ColorSuccess       = "42"
)
