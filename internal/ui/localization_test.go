package ui

import (
	"strings"
	"testing"

	"github.com/ytget/safe-browser/internal/browser"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyAppTitle); got != "Safe Browser" {
		t.Errorf("Expected app title 'Safe Browser', got %s", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"}, // unknown language keeps current
	}

	for _, tt := range tests {
		l := NewLocalization()
		l.SetLanguage(tt.input)
		if l.GetCurrentLanguage() != tt.want {
			t.Errorf("SetLanguage(%q): expected %s, got %s", tt.input, tt.want, l.GetCurrentLanguage())
		}
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("Missing texts for %s", lang)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_NoticeTexts(t *testing.T) {
	l := NewLocalization()

	for key, text := range browser.EnglishTexts {
		if got := l.GetText(key); got != text {
			t.Errorf("Key %s: expected %q, got %q", key, text, got)
		}
	}

	// Format keys keep their verb in every language
	for lang := range l.GetAvailableLanguages() {
		l.SetLanguage(lang)
		if !strings.Contains(l.GetText(browser.KeyImportedFormat), "%d") {
			t.Errorf("%s imported format lost %%d", lang)
		}
		if !strings.Contains(l.GetText(browser.KeyNotAllowedFormat), "%s") {
			t.Errorf("%s not-allowed format lost %%s", lang)
		}
		if !strings.Contains(l.GetText(KeyRemoveConfirmFormat), "%s") {
			t.Errorf("%s remove confirm format lost %%s", lang)
		}
	}
}

func TestLocalization_UnknownKey(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}
