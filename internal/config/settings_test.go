package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s", code)
		}
	}
}

func TestUserAgent(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if ua := settings.EffectiveUserAgent(false); ua != "" {
		t.Errorf("Expected no desktop override, got %q", ua)
	}
	if ua := settings.EffectiveUserAgent(true); ua != MobileUserAgent {
		t.Errorf("Expected mobile default %q, got %q", MobileUserAgent, ua)
	}

	settings.SetUserAgent("CustomAgent/1.0")
	if ua := settings.EffectiveUserAgent(true); ua != "CustomAgent/1.0" {
		t.Errorf("Override should win on Android, got %q", ua)
	}
	if ua := settings.GetUserAgent(); ua != "CustomAgent/1.0" {
		t.Errorf("Expected stored override, got %q", ua)
	}
}

func TestRenderer(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if kind := settings.GetRenderer(); kind != DefaultRenderer {
		t.Errorf("Expected default renderer %s, got %s", DefaultRenderer, kind)
	}

	settings.SetRenderer(RendererSystem)
	if kind := settings.GetRenderer(); kind != RendererSystem {
		t.Errorf("Expected renderer %s, got %s", RendererSystem, kind)
	}

	// Unknown values fall back to the default
	settings.SetRenderer("webkit")
	if kind := settings.GetRenderer(); kind != DefaultRenderer {
		t.Errorf("Unknown renderer should reset to %s, got %s", DefaultRenderer, kind)
	}

	if len(settings.GetRendererOptions()) != 2 {
		t.Errorf("Expected 2 renderer options, got %d", len(settings.GetRendererOptions()))
	}
}

func TestBooleanSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHeadless() != DefaultHeadless {
		t.Errorf("Expected default headless %v", DefaultHeadless)
	}
	if settings.GetRestoreLastURL() != DefaultRestoreLastURL {
		t.Errorf("Expected default restore %v", DefaultRestoreLastURL)
	}

	settings.SetHeadless(true)
	settings.SetRestoreLastURL(true)

	if !settings.GetHeadless() {
		t.Error("Headless should be enabled")
	}
	if !settings.GetRestoreLastURL() {
		t.Error("Restore last URL should be enabled")
	}
}

func TestLastURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastURL() != "" {
		t.Errorf("Expected no last URL, got %s", settings.GetLastURL())
	}

	settings.SetLastURL("https://www.wikipedia.org")
	if settings.GetLastURL() != "https://www.wikipedia.org" {
		t.Errorf("Expected stored last URL, got %s", settings.GetLastURL())
	}
}

func TestPreferencesBackend(t *testing.T) {
	app := test.NewApp()
	backend := NewPreferencesBackend(app.Preferences())

	if _, found, err := backend.Get("allowed_urls"); found || err != nil {
		t.Errorf("Expected missing record, got found=%v err=%v", found, err)
	}

	if err := backend.Set("allowed_urls", `["https://a.example"]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, found, err := backend.Get("allowed_urls")
	if err != nil || !found {
		t.Fatalf("Expected record, got found=%v err=%v", found, err)
	}
	if value != `["https://a.example"]` {
		t.Errorf("Unexpected record %s", value)
	}
}
