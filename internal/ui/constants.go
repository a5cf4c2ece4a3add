package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBack     = "←"
	IconForward  = "→"
	IconReload   = "⟳"
	IconList     = "☰"
	IconAdd      = "+"
	IconClose    = "×"
	IconUp       = "▲"
	IconDown     = "▼"
	IconBlocked  = "⛔"
	IconAllowed  = "✓"

	// Mobile-specific icons
	IconShare  = "📱"
	IconDelete = "🗑️"
)

// Layout sizing (URL rows / lists)
const (
	RowMinWidth  float32 = 280
	RowMinHeight float32 = 56

	// Mobile-specific sizing
	MobileRowMinHeight float32 = 72

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	// Mobile button sizing
	MobileButtonWidth     float32 = 60
	MobileButtonSpacing   float32 = 8
	MobileRowButtonHeight float32 = 52
)

// Window sizing
const (
	DefaultWindowWidth  float32 = 420
	DefaultWindowHeight float32 = 720
	SettingsDialogWidth float32 = 460
)

// Notification banner behavior
const (
	BannerAutoHide = 4 * time.Second
)

// Scrolling
const (
	ScrollLinesPerStep = 3
)
