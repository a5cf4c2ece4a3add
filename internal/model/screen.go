package model

// Screen identifies which of the two app screens is visible
type Screen int

const (
	// ScreenBrowsing shows the page viewer
	ScreenBrowsing Screen = iota

	// ScreenManagingList shows the allow-list editor
	ScreenManagingList
)

// String returns the screen name used in logs
func (s Screen) String() string {
	switch s {
	case ScreenBrowsing:
		return "Browsing"
	case ScreenManagingList:
		return "ManagingList"
	default:
		return "Unknown"
	}
}
