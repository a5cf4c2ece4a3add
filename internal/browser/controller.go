package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ytget/safe-browser/internal/allowlist"
	"github.com/ytget/safe-browser/internal/model"
)

// ScrollStep is the offset in CSS pixels injected per scroll line
const ScrollStep = 120

// ErrUnsupported is returned by renderers that cannot perform an action
var ErrUnsupported = errors.New("action not supported by renderer")

// Controller owns the current URL and the visible screen
type Controller struct {
	store      *allowlist.Store
	renderer   Renderer
	notifier   Notifier
	translator Translator

	mu         sync.Mutex
	screen     model.Screen
	currentURL string
	focus      int

	onUpdate func() // callback for UI refresh
}

// NewController wires the controller to the store and collaborators. It
// registers itself for removal notifications so the current URL can fall back.
func NewController(store *allowlist.Store, renderer Renderer, notifier Notifier) *Controller {
	c := &Controller{
		store:      store,
		renderer:   renderer,
		notifier:   notifier,
		translator: englishTranslator{},
		screen:     model.ScreenBrowsing,
		currentURL: model.DefaultURL,
	}
	store.SetRemovedCallback(c.onURLRemoved)
	return c
}

// SetTranslator replaces the English notice texts
func (c *Controller) SetTranslator(translator Translator) {
	if translator == nil {
		translator = englishTranslator{}
	}
	c.translator = translator
}

// SetUpdateCallback sets the function called after every state change
func (c *Controller) SetUpdateCallback(callback func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// RestoreURL makes a previously shown URL current before Start. Empty or
// off-list URLs are ignored; it reports whether the URL was taken.
func (c *Controller) RestoreURL(url string) bool {
	if url == "" || !c.store.IsAllowed(url) {
		return false
	}
	c.mu.Lock()
	c.currentURL = url
	c.mu.Unlock()
	return true
}

// Start loads the current URL into the renderer
func (c *Controller) Start(ctx context.Context) error {
	url := c.CurrentURL()
	log.Printf("Starting viewer at %s", url)
	return c.load(ctx, url)
}

// CurrentURL returns the URL presently shown by the viewer
func (c *Controller) CurrentURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentURL
}

// Screen returns the visible screen
func (c *Controller) Screen() model.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// URLs returns the allow-list in display order
func (c *Controller) URLs() []model.AllowedURL {
	return c.store.List()
}

// IsAllowed reports whether url passes the allow-list check
func (c *Controller) IsAllowed(url string) bool {
	return c.store.IsAllowed(url)
}

// IsCurrent reports whether url is the one loaded in the viewer
func (c *Controller) IsCurrent(url model.AllowedURL) bool {
	return c.CurrentURL() == url.String()
}

// ShowList switches to the allow-list management screen
func (c *Controller) ShowList() {
	c.setScreen(model.ScreenManagingList)
}

// ShowBrowser returns to the viewer without changing the URL
func (c *Controller) ShowBrowser() {
	c.setScreen(model.ScreenBrowsing)
}

func (c *Controller) setScreen(screen model.Screen) {
	c.mu.Lock()
	changed := c.screen != screen
	c.screen = screen
	c.mu.Unlock()

	if changed {
		log.Printf("Screen changed to %s", screen)
		c.notifyUpdate()
	}
}

// Select opens url if it passes the allow-list check. A denied URL raises a
// notice and leaves the screen and current URL untouched.
func (c *Controller) Select(ctx context.Context, url string) error {
	if !c.store.IsAllowed(url) {
		log.Printf("Selection denied: %s", url)
		c.notify(model.NoticeDenied, KeyTitleAccessDenied, fmt.Sprintf(c.text(KeyNotAllowedFormat), url))
		return &allowlist.AccessDeniedError{URL: url}
	}

	c.mu.Lock()
	c.currentURL = url
	c.screen = model.ScreenBrowsing
	c.mu.Unlock()

	c.notifyUpdate()
	return c.load(ctx, url)
}

// HandleNavigation processes one navigation report from the renderer. The
// current URL always follows the renderer; a disallowed URL only produces a
// denial notice. It returns whether the URL is allowed.
func (c *Controller) HandleNavigation(report model.NavigationReport) bool {
	c.mu.Lock()
	changed := c.currentURL != report.URL
	c.currentURL = report.URL
	c.mu.Unlock()

	if changed {
		c.notifyUpdate()
	}

	if c.store.IsAllowed(report.URL) {
		return true
	}

	log.Printf("Navigation outside allow-list (%s, %s): %s", report.Kind, report.ID, report.URL)
	c.notify(model.NoticeDenied, KeyTitleAccessDenied, c.text(KeyOnlyAllowedLinks))
	return false
}

// Watch consumes navigation reports until ctx is done or the channel closes
func (c *Controller) Watch(ctx context.Context, reports <-chan model.NavigationReport) {
	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-reports:
			if !ok {
				return
			}
			c.HandleNavigation(report)
		}
	}
}

// Back handles the hardware back action: it leaves the list screen, or steps
// renderer history while browsing
func (c *Controller) Back(ctx context.Context) error {
	if c.Screen() == model.ScreenManagingList {
		c.ShowBrowser()
		return nil
	}
	return c.rendererAction(c.renderer.Back(ctx))
}

// Forward steps renderer history forward
func (c *Controller) Forward(ctx context.Context) error {
	return c.rendererAction(c.renderer.Forward(ctx))
}

// Reload reloads the current page
func (c *Controller) Reload(ctx context.Context) error {
	return c.rendererAction(c.renderer.Reload(ctx))
}

// Scroll injects lines*ScrollStep pixels of vertical scroll; negative is up
func (c *Controller) Scroll(ctx context.Context, lines int) error {
	return c.rendererAction(c.renderer.ScrollBy(ctx, lines*ScrollStep))
}

func (c *Controller) rendererAction(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnsupported) {
		c.notify(model.NoticeInfo, KeyTitleError, c.text(KeyActionNotSupported))
		return err
	}
	log.Printf("Renderer action failed: %v", err)
	c.notify(model.NoticeError, KeyTitleError, c.text(KeyNavigationFailed))
	return err
}

func (c *Controller) load(ctx context.Context, url string) error {
	if err := c.renderer.Load(ctx, url); err != nil {
		log.Printf("Error loading %s: %v", url, err)
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyNavigationFailed))
		return fmt.Errorf("loading %s: %w", url, err)
	}
	return nil
}

// AddURL adds raw input to the allow-list and reports the outcome to the user
func (c *Controller) AddURL(raw string) error {
	_, err := c.store.Add(raw)
	c.notifyUpdate()

	switch {
	case err == nil:
		log.Printf("URL added to allow-list: %s", raw)
		c.notify(model.NoticeSuccess, KeyTitleSuccess, c.text(KeyURLAdded))
	case errors.Is(err, allowlist.ErrEmptyURL):
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyPleaseEnterURL))
	case errors.Is(err, allowlist.ErrDuplicateURL):
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyAlreadyInList))
	case errors.Is(err, allowlist.ErrInvalidURL):
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyInvalidURL))
	default:
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyFailedToSave))
	}
	return err
}

// RemoveURL drops url from the allow-list; the current URL falls back through
// the store's removal callback
func (c *Controller) RemoveURL(url string) error {
	_, err := c.store.Remove(url)
	c.clampFocus()
	c.notifyUpdate()

	if err != nil {
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyFailedToSave))
	}
	return err
}

// onURLRemoved re-selects a fallback when the removed entry was being shown
func (c *Controller) onURLRemoved(removed string, remaining []model.AllowedURL) {
	c.mu.Lock()
	if c.currentURL != removed {
		c.mu.Unlock()
		return
	}
	fallback := model.DefaultURL
	if len(remaining) > 0 {
		fallback = remaining[0].String()
	}
	c.currentURL = fallback
	c.mu.Unlock()

	log.Printf("Current URL %s removed, falling back to %s", removed, fallback)
	if err := c.load(context.Background(), fallback); err != nil {
		log.Printf("Fallback load failed: %v", err)
	}
}

// ImportText merges an imported file into the allow-list
func (c *Controller) ImportText(content string) (allowlist.ImportResult, error) {
	result, err := c.store.Import(content)
	c.notifyUpdate()

	switch {
	case err == nil:
		log.Printf("Imported %d URLs (%d new)", result.Accepted, result.Added)
		c.notify(model.NoticeSuccess, KeyTitleSuccess, fmt.Sprintf(c.text(KeyImportedFormat), result.Accepted))
	case errors.Is(err, allowlist.ErrNoValidURLs):
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyNoValidURLs))
	default:
		c.notify(model.NoticeError, KeyTitleError, c.text(KeyFailedToSave))
	}
	return result, err
}

// ReportImportFailure surfaces a file read failure during import
func (c *Controller) ReportImportFailure(err error) {
	log.Printf("Import failed: %v", err)
	c.notify(model.NoticeError, KeyTitleError, c.text(KeyFailedToImport))
}

// ReportExportFailure surfaces a file write or share failure during export
func (c *Controller) ReportExportFailure(err error) {
	log.Printf("Export failed: %v", err)
	c.notify(model.NoticeError, KeyTitleError, c.text(KeyFailedToExport))
}

// ExportText returns the allow-list in the export format
func (c *Controller) ExportText() string {
	return c.store.Export()
}

// ReloadList re-reads the store after an external change
func (c *Controller) ReloadList() {
	current := c.CurrentURL()
	wasEntry := allowlist.Contains(c.store.List(), model.AllowedURL(current))

	urls := c.store.Reload()
	c.clampFocus()

	if wasEntry && !allowlist.Contains(urls, model.AllowedURL(current)) {
		c.onURLRemoved(current, urls)
	}
	c.notifyUpdate()
}

// MoveFocus moves the list focus by delta entries, clamped to the list
func (c *Controller) MoveFocus(delta int) {
	n := c.store.Len()

	c.mu.Lock()
	c.focus = clamp(c.focus+delta, n)
	c.mu.Unlock()

	c.notifyUpdate()
}

// Focused returns the focused list index, or -1 when the list is empty
func (c *Controller) Focused() int {
	n := c.store.Len()
	if n == 0 {
		return -1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return clamp(c.focus, n)
}

// SelectFocused opens the focused entry
func (c *Controller) SelectFocused(ctx context.Context) error {
	urls := c.store.List()
	idx := c.Focused()
	if idx < 0 || idx >= len(urls) {
		return nil
	}
	return c.Select(ctx, urls[idx].String())
}

func (c *Controller) clampFocus() {
	n := c.store.Len()
	c.mu.Lock()
	c.focus = clamp(c.focus, n)
	c.mu.Unlock()
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (c *Controller) text(key string) string {
	return c.translator.GetText(key)
}

func (c *Controller) notify(kind model.NoticeKind, titleKey, message string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(model.NewNotice(kind, c.text(titleKey), message))
}

// notifyUpdate calls the update callback if set
func (c *Controller) notifyUpdate() {
	c.mu.Lock()
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback()
	}
}
