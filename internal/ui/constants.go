package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDone     = "✅"
)

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 320

	SelectMinWidth float32 = 120
)

// Text fragments
const (
	DashPlaceholder = "—"
)
