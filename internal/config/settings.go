package config

import (
	"fyne.io/fyne/v2"
)

// RendererKind selects how pages are displayed
type RendererKind string

const (
	RendererChrome RendererKind = "chrome"
	RendererSystem RendererKind = "system"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyUserAgent      = "user_agent"
	KeyRenderer       = "renderer"
	KeyHeadless       = "renderer_headless"
	KeyRestoreLastURL = "restore_last_url"
	KeyLastURL        = "last_url"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultRenderer       = RendererChrome
	DefaultHeadless       = false
	DefaultRestoreLastURL = false

	// MobileUserAgent is presented on Android so sites serve the full desktop layout
	MobileUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetUserAgent returns the user agent override; empty means the renderer default
func (s *Settings) GetUserAgent() string {
	return s.app.Preferences().String(KeyUserAgent)
}

// SetUserAgent sets the user agent override
func (s *Settings) SetUserAgent(ua string) {
	s.app.Preferences().SetString(KeyUserAgent, ua)
}

// EffectiveUserAgent returns the override, or the desktop user agent on
// Android when no override is set
func (s *Settings) EffectiveUserAgent(android bool) string {
	if ua := s.GetUserAgent(); ua != "" {
		return ua
	}
	if android {
		return MobileUserAgent
	}
	return ""
}

// GetRenderer returns the configured renderer
func (s *Settings) GetRenderer() RendererKind {
	kind := RendererKind(s.app.Preferences().String(KeyRenderer))
	switch kind {
	case RendererChrome, RendererSystem:
		return kind
	default:
		s.SetRenderer(DefaultRenderer)
		return DefaultRenderer
	}
}

// SetRenderer sets the renderer
func (s *Settings) SetRenderer(kind RendererKind) {
	s.app.Preferences().SetString(KeyRenderer, string(kind))
}

// GetRendererOptions returns available renderer options
func (s *Settings) GetRendererOptions() []RendererKind {
	return []RendererKind{RendererChrome, RendererSystem}
}

// GetHeadless returns whether Chrome runs without a window
func (s *Settings) GetHeadless() bool {
	return s.app.Preferences().BoolWithFallback(KeyHeadless, DefaultHeadless)
}

// SetHeadless sets whether Chrome runs without a window
func (s *Settings) SetHeadless(headless bool) {
	s.app.Preferences().SetBool(KeyHeadless, headless)
}

// GetRestoreLastURL returns whether the last shown URL is reopened on start
func (s *Settings) GetRestoreLastURL() bool {
	return s.app.Preferences().BoolWithFallback(KeyRestoreLastURL, DefaultRestoreLastURL)
}

// SetRestoreLastURL sets whether the last shown URL is reopened on start
func (s *Settings) SetRestoreLastURL(restore bool) {
	s.app.Preferences().SetBool(KeyRestoreLastURL, restore)
}

// GetLastURL returns the URL shown when the app last ran
func (s *Settings) GetLastURL() string {
	return s.app.Preferences().String(KeyLastURL)
}

// SetLastURL records the URL currently shown
func (s *Settings) SetLastURL(url string) {
	s.app.Preferences().SetString(KeyLastURL, url)
}
