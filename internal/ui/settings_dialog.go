package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/safe-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	rendererSelect *widget.Select
	userAgentEntry *widget.Entry
	headlessCheck  *widget.Check
	restoreCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	rendererOptions := []string{}
	for _, kind := range sd.settings.GetRendererOptions() {
		rendererOptions = append(rendererOptions, string(kind))
	}
	sd.rendererSelect = widget.NewSelect(rendererOptions, nil)

	sd.userAgentEntry = widget.NewEntry()
	sd.userAgentEntry.SetPlaceHolder(config.MobileUserAgent)

	sd.headlessCheck = widget.NewCheck(l.GetText(KeyHeadless), nil)
	sd.restoreCheck = widget.NewCheck(l.GetText(KeyRestoreLastURL), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyRenderer)+":"),
		sd.rendererSelect,
		sd.headlessCheck,

		widget.NewLabel(l.GetText(KeyUserAgent)+":"),
		sd.userAgentEntry,

		widget.NewSeparator(),
		sd.restoreCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, 0))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.rendererSelect.SetSelected(string(sd.settings.GetRenderer()))
	sd.userAgentEntry.SetText(sd.settings.GetUserAgent())
	sd.headlessCheck.SetChecked(sd.settings.GetHeadless())
	sd.restoreCheck.SetChecked(sd.settings.GetRestoreLastURL())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	rendererChanged := sd.apply()

	message := sd.localization.GetText(KeySettingsSaved)
	if rendererChanged {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the form values and reports whether the renderer changed
func (sd *SettingsDialog) apply() bool {
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	rendererChanged := false
	if sd.rendererSelect.Selected != "" {
		kind := config.RendererKind(sd.rendererSelect.Selected)
		rendererChanged = kind != sd.settings.GetRenderer()
		sd.settings.SetRenderer(kind)
	}
	if sd.headlessCheck.Checked != sd.settings.GetHeadless() {
		rendererChanged = true
	}
	if sd.userAgentEntry.Text != sd.settings.GetUserAgent() {
		rendererChanged = true
	}

	sd.settings.SetHeadless(sd.headlessCheck.Checked)
	sd.settings.SetUserAgent(sd.userAgentEntry.Text)
	sd.settings.SetRestoreLastURL(sd.restoreCheck.Checked)
	return rendererChanged
}
