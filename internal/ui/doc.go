package ui

// Package ui contains the Fyne-based user interface: the browsing screen with
// navigation controls, the allow-list management screen, notice dialogs, and
// settings. All UI strings are localized via Localization.
