package config

import (
	"fyne.io/fyne/v2"
)

// PreferencesBackend keeps allow-list records in Fyne preferences. Fyne
// persists preferences asynchronously and reports no write errors.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend creates a backend over prefs
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

// Get returns the record stored under key; an empty record counts as missing
func (b *PreferencesBackend) Get(key string) (string, bool, error) {
	value := b.prefs.String(key)
	return value, value != "", nil
}

// Set stores value under key
func (b *PreferencesBackend) Set(key, value string) error {
	b.prefs.SetString(key, value)
	return nil
}
