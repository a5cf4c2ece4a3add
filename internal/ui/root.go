package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/safe-browser/internal/allowlist"
	"github.com/ytget/safe-browser/internal/browser"
	"github.com/ytget/safe-browser/internal/config"
	"github.com/ytget/safe-browser/internal/model"
	"github.com/ytget/safe-browser/internal/platform"
)

// Options carries the collaborators RootUI needs
type Options struct {
	Controller *browser.Controller
	Notifier   *DialogNotifier
	Settings   *config.Settings
	ExportDir  string
}

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	app          fyne.App
	window       fyne.Window
	controller   *browser.Controller
	notifier     *DialogNotifier
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	exportDir    string

	// spawn runs blocking controller calls off the UI goroutine
	spawn func(func())
	share func(path string) error

	// Browsing screen
	browsingView  fyne.CanvasObject
	pageTitle     *widget.Label
	currentLabel  *widget.Label
	stateText     *canvas.Text
	backBtn       *widget.Button
	forwardBtn    *widget.Button
	reloadBtn     *widget.Button
	manageBtn     *widget.Button
	scrollUpBtn   *widget.Button
	scrollDownBtn *widget.Button

	// List screen
	listView     fyne.CanvasObject
	listTitle    *widget.Label
	closeListBtn *widget.Button
	urlEntry     *widget.Entry
	addBtn       *widget.Button
	importBtn    *widget.Button
	exportBtn    *widget.Button
	urlList      *widget.List
	emptyLabel   *widget.Label

	// Notification panel
	bannerLabel     *widget.Label
	bannerContainer *fyne.Container
	bannerMu        sync.Mutex
	bannerTimer     *time.Timer

	content     *fyne.Container
	shownScreen model.Screen
	savedURL    string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(ctx context.Context, app fyne.App, window fyne.Window, opts Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(opts.Settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		app:          app,
		window:       window,
		controller:   opts.Controller,
		notifier:     opts.Notifier,
		settings:     opts.Settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		exportDir:    opts.ExportDir,
		spawn:        func(f func()) { go f() },
		share:        platform.ShareFile,
		shownScreen:  -1,
		savedURL:     opts.Settings.GetLastURL(),
	}

	ui.controller.SetTranslator(localization)
	ui.controller.SetUpdateCallback(ui.onStateUpdate)
	if ui.notifier != nil {
		ui.notifier.SetShownCallback(ui.showBanner)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.setupKeys()
	ui.refresh()

	log.Printf("UI setup completed successfully")
	return ui
}

// Localization returns the active translations
func (ui *RootUI) Localization() *Localization {
	return ui.localization
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.bannerLabel = widget.NewLabel("")
	ui.bannerLabel.Wrapping = fyne.TextWrapWord
	ui.bannerContainer = container.NewPadded(ui.bannerLabel)
	ui.bannerContainer.Hide()

	ui.browsingView = ui.createBrowsingView()
	ui.listView = ui.createListView()

	ui.content = container.NewStack()
	ui.window.SetContent(container.NewBorder(nil, ui.bannerContainer, nil, nil, ui.content))
}

// createBrowsingView builds the screen shown while a page is open
func (ui *RootUI) createBrowsingView() fyne.CanvasObject {
	ui.backBtn = ui.mobile.CreateMobileButton(IconBack, ui.onBack)
	ui.forwardBtn = ui.mobile.CreateMobileButton(IconForward, ui.onForward)
	ui.reloadBtn = ui.mobile.CreateMobileButton(IconReload, ui.onReload)
	ui.manageBtn = widget.NewButton(IconList+" "+ui.localization.GetText(KeyManageList), ui.controller.ShowList)
	ui.manageBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(ui.backBtn, ui.forwardBtn, ui.reloadBtn),
		container.NewHBox(ui.manageBtn, settingsBtn),
	)

	ui.pageTitle = widget.NewLabel(ui.localization.GetText(KeyCurrentPage))
	ui.pageTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.currentLabel = widget.NewLabel("")
	ui.currentLabel.Wrapping = fyne.TextWrapBreak
	ui.currentLabel.Selectable = true

	ui.stateText = canvas.NewText("", ColorSuccess)

	ui.scrollUpBtn = ui.mobile.CreateMobileButton(IconUp+" "+ui.localization.GetText(KeyScrollUp), func() { ui.onScroll(-ScrollLinesPerStep) })
	ui.scrollDownBtn = ui.mobile.CreateMobileButton(IconDown+" "+ui.localization.GetText(KeyScrollDown), func() { ui.onScroll(ScrollLinesPerStep) })

	card := container.NewVBox(
		ui.pageTitle,
		ui.currentLabel,
		container.NewPadded(ui.stateText),
		widget.NewSeparator(),
		container.NewGridWithColumns(2, ui.scrollUpBtn, ui.scrollDownBtn),
	)

	body := NewSwipeArea(container.NewPadded(card), ui.onBrowsingGesture)
	return container.NewBorder(header, nil, nil, nil, body)
}

// createListView builds the allow-list management screen
func (ui *RootUI) createListView() fyne.CanvasObject {
	ui.closeListBtn = widget.NewButton(IconBack, ui.controller.ShowBrowser)
	ui.closeListBtn.Importance = widget.LowImportance

	ui.listTitle = widget.NewLabel(ui.localization.GetText(KeyAllowedURLs))
	ui.listTitle.TextStyle = fyne.TextStyle{Bold: true}

	header := container.NewBorder(nil, nil, ui.closeListBtn, nil, ui.listTitle)

	ui.urlEntry = ui.mobile.CreateURLEntry(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) { ui.onAdd() }

	ui.addBtn = widget.NewButton(IconAdd+" "+ui.localization.GetText(KeyAdd), ui.onAdd)
	ui.addBtn.Importance = widget.SuccessImportance

	addRow := container.NewBorder(nil, nil, nil, ui.addBtn, ui.urlEntry)

	ui.importBtn = widget.NewButton(ui.localization.GetText(KeyImport), ui.onImport)
	ui.exportBtn = widget.NewButton(IconShare+" "+ui.localization.GetText(KeyExport), ui.onExport)
	transferRow := container.NewGridWithColumns(2, ui.importBtn, ui.exportBtn)

	ui.urlList = widget.NewList(
		func() int { return len(ui.controller.URLs()) },
		func() fyne.CanvasObject {
			return NewURLRow(ui.localization, ui.mobile.RowHeight(), ui.onRemove)
		},
		ui.updateURLRow,
	)
	ui.urlList.OnSelected = func(id widget.ListItemID) {
		ui.urlList.Unselect(id)
		ui.onSelectIndex(id)
	}

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyEmptyList))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter

	top := container.NewVBox(header, addRow, transferRow, widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, container.NewStack(ui.urlList, ui.emptyLabel))
}

// updateURLRow binds a list row to its entry
func (ui *RootUI) updateURLRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*URLRow)
	if !ok {
		return
	}
	urls := ui.controller.URLs()
	if id < 0 || id >= len(urls) {
		return
	}
	url := urls[id]
	row.Update(url, ui.controller.IsCurrent(url), id == ui.controller.Focused())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	importItem := fyne.NewMenuItem(ui.localization.GetText(KeyImport), ui.onImport)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExport)
	listItem := fyne.NewMenuItem(ui.localization.GetText(KeyAllowedURLs), ui.controller.ShowList)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), listItem, importItem, exportItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// setupKeys wires the hardware back key, D-pad and desktop shortcuts
func (ui *RootUI) setupKeys() {
	c := ui.window.Canvas()
	c.SetOnTypedKey(ui.handleKey)

	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) { ui.onBack() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyRight, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) { ui.onForward() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { ui.onReload() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyL, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { ui.controller.ShowList() })
}

// handleKey maps keys that reach the canvas to viewer actions
func (ui *RootUI) handleKey(ev *fyne.KeyEvent) {
	onList := ui.controller.Screen() == model.ScreenManagingList

	switch ev.Name {
	case mobile.KeyBack, fyne.KeyEscape:
		ui.onBack()
	case fyne.KeyUp:
		if onList {
			ui.controller.MoveFocus(-1)
		} else {
			ui.onScroll(-1)
		}
	case fyne.KeyDown:
		if onList {
			ui.controller.MoveFocus(1)
		} else {
			ui.onScroll(1)
		}
	case fyne.KeyReturn, fyne.KeyEnter:
		if onList {
			ui.spawn(func() { ui.logErr("select", ui.controller.SelectFocused(ui.ctx)) })
		}
	case fyne.KeyF5:
		ui.onReload()
	}
}

// onBrowsingGesture maps swipes over the browsing screen to navigation
func (ui *RootUI) onBrowsingGesture(g GestureType) {
	log.Printf("Gesture on browsing screen: %s", g)
	switch g {
	case GestureSwipeRight:
		ui.onBack()
	case GestureSwipeLeft:
		ui.onForward()
	case GestureSwipeDown:
		ui.onReload()
	case GestureLongPress:
		ui.controller.ShowList()
	}
}

func (ui *RootUI) onBack() {
	ui.spawn(func() { ui.logErr("back", ui.controller.Back(ui.ctx)) })
}

func (ui *RootUI) onForward() {
	ui.spawn(func() { ui.logErr("forward", ui.controller.Forward(ui.ctx)) })
}

func (ui *RootUI) onReload() {
	ui.spawn(func() { ui.logErr("reload", ui.controller.Reload(ui.ctx)) })
}

func (ui *RootUI) onScroll(lines int) {
	ui.spawn(func() { ui.logErr("scroll", ui.controller.Scroll(ui.ctx, lines)) })
}

// onSelectIndex opens the list entry at id
func (ui *RootUI) onSelectIndex(id int) {
	urls := ui.controller.URLs()
	if id < 0 || id >= len(urls) {
		return
	}
	url := urls[id].String()
	ui.spawn(func() { ui.logErr("select", ui.controller.Select(ui.ctx, url)) })
}

// onAdd adds the typed URL; the entry is cleared only on success
func (ui *RootUI) onAdd() {
	if err := ui.controller.AddURL(ui.urlEntry.Text); err != nil {
		log.Printf("Add URL failed: %v", err)
		return
	}
	ui.urlEntry.SetText("")
}

// onRemove asks for confirmation before dropping url
func (ui *RootUI) onRemove(url model.AllowedURL) {
	message := fmt.Sprintf(ui.localization.GetText(KeyRemoveConfirmFormat), url)
	confirm := dialog.NewConfirm(ui.localization.GetText(KeyRemoveTitle), message, func(ok bool) {
		if !ok {
			return
		}
		ui.spawn(func() { ui.logErr("remove", ui.controller.RemoveURL(url.String())) })
	}, ui.window)
	confirm.SetConfirmText(ui.localization.GetText(KeyRemove))
	confirm.SetDismissText(ui.localization.GetText(KeyCancel))
	confirm.Show()
}

// onImport lets the user pick a text file and merges its URLs
func (ui *RootUI) onImport() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.controller.ReportImportFailure(err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		if err := ui.importFrom(reader); err != nil {
			log.Printf("Import from %s failed: %v", reader.URI(), err)
		}
	}, ui.window)
	fd.SetFilter(ui.importFilter())
	fd.Show()
}

// importFrom reads r fully and merges it into the list
func (ui *RootUI) importFrom(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		loadErr := &allowlist.LoadError{Source: "import", Err: err}
		ui.controller.ReportImportFailure(loadErr)
		return loadErr
	}
	_, err = ui.controller.ImportText(string(data))
	return err
}

func (ui *RootUI) importFilter() storage.FileFilter {
	if ui.mobile.IsMobileDevice() {
		return storage.NewMimeTypeFileFilter([]string{allowlist.ExportMIMEType})
	}
	return storage.NewExtensionFileFilter([]string{allowlist.ExportFileExt})
}

// onExport writes the list to a file and hands it to the platform
func (ui *RootUI) onExport() {
	ui.spawn(func() {
		if _, err := ui.exportList(); err != nil {
			log.Printf("Export failed: %v", err)
		}
	})
}

func (ui *RootUI) exportList() (string, error) {
	path, err := platform.WriteExportFile(ui.exportDir, ui.controller.ExportText(), time.Now())
	if err != nil {
		ui.controller.ReportExportFailure(err)
		return "", err
	}
	log.Printf("Exported allow-list to %s", path)

	if err := ui.share(path); err != nil {
		ui.controller.ReportExportFailure(err)
		return path, err
	}
	return path, nil
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.manageBtn.SetText(IconList + " " + l.GetText(KeyManageList))
	ui.pageTitle.SetText(l.GetText(KeyCurrentPage))
	ui.scrollUpBtn.SetText(IconUp + " " + l.GetText(KeyScrollUp))
	ui.scrollDownBtn.SetText(IconDown + " " + l.GetText(KeyScrollDown))

	ui.listTitle.SetText(l.GetText(KeyAllowedURLs))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.addBtn.SetText(IconAdd + " " + l.GetText(KeyAdd))
	ui.importBtn.SetText(l.GetText(KeyImport))
	ui.exportBtn.SetText(IconShare + " " + l.GetText(KeyExport))
	ui.emptyLabel.SetText(l.GetText(KeyEmptyList))

	ui.refresh()
}

// onStateUpdate is the controller's update callback; it may run on any goroutine
func (ui *RootUI) onStateUpdate() {
	fyne.Do(ui.refresh)
}

// refresh redraws both screens from controller state
func (ui *RootUI) refresh() {
	current := ui.controller.CurrentURL()
	ui.currentLabel.SetText(current)

	if ui.controller.IsAllowed(current) {
		ui.stateText.Text = IconAllowed + " " + ui.localization.GetText(KeyAllowedURLs)
		ui.stateText.Color = ColorSuccess
	} else {
		ui.stateText.Text = IconBlocked + " " + ui.localization.GetText(KeyOutsideList)
		ui.stateText.Color = ColorError
	}
	ui.stateText.Refresh()

	ui.saveLastURL(current)

	if len(ui.controller.URLs()) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.urlList.Refresh()

	screen := ui.controller.Screen()
	if screen == ui.shownScreen {
		return
	}
	ui.shownScreen = screen

	view := ui.browsingView
	if screen == model.ScreenManagingList {
		view = ui.listView
	}
	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// saveLastURL records allowed pages for the next start, writing only on change
func (ui *RootUI) saveLastURL(current string) {
	if !ui.settings.GetRestoreLastURL() || current == ui.savedURL {
		return
	}
	if !ui.controller.IsAllowed(current) {
		return
	}
	ui.settings.SetLastURL(current)
	ui.savedURL = current
}

// showBanner mirrors the last notice under the active screen
func (ui *RootUI) showBanner(notice model.Notice) {
	ui.bannerLabel.SetText(notice.Title + ": " + notice.Message)
	if notice.IsError() {
		ui.bannerLabel.Importance = widget.DangerImportance
	} else {
		ui.bannerLabel.Importance = widget.SuccessImportance
	}
	ui.bannerContainer.Show()
	ui.bannerLabel.Refresh()

	ui.bannerMu.Lock()
	defer ui.bannerMu.Unlock()
	if ui.bannerTimer != nil {
		ui.bannerTimer.Stop()
	}
	ui.bannerTimer = time.AfterFunc(BannerAutoHide, func() {
		fyne.Do(ui.bannerContainer.Hide)
	})
}

func (ui *RootUI) logErr(action string, err error) {
	if err != nil {
		log.Printf("Action %s failed: %v", action, err)
	}
}
