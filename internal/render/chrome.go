package render

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/ytget/safe-browser/internal/model"
)

// Chrome window defaults
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
	ReportBufferSize    = 64
)

// ChromeConfig configures the Chrome renderer
type ChromeConfig struct {
	Headless  bool   // run without a visible window (tests, kiosk capture)
	UserAgent string // optional user agent override
	Width     int
	Height    int
}

// Chrome renders pages in a Chrome tab controlled over CDP
type Chrome struct {
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc

	reports chan model.NavigationReport

	mu        sync.Mutex
	mainFrame cdp.FrameID
	nextKind  model.NavigationKind
	closed    bool
}

// NewChrome starts a browser and opens a single tab
func NewChrome(cfg ChromeConfig) (*Chrome, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultWindowWidth, DefaultWindowHeight
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(cfg.Width, cfg.Height),
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	c := newChrome(tabCtx, tabCancel, allocCancel)
	chromedp.ListenTarget(tabCtx, c.onEvent)

	// An empty Run launches the browser and attaches to the tab
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	log.Printf("Chrome renderer started (headless=%v)", cfg.Headless)
	return c, nil
}

func newChrome(tabCtx context.Context, tabCancel, allocCancel context.CancelFunc) *Chrome {
	return &Chrome{
		allocCancel: allocCancel,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
		reports:     make(chan model.NavigationReport, ReportBufferSize),
		nextKind:    model.NavigationLink,
	}
}

// Load navigates the tab to url
func (c *Chrome) Load(ctx context.Context, url string) error {
	c.expect(model.NavigationLoad)
	return c.run(ctx, chromedp.Navigate(url))
}

// Back steps the tab history back
func (c *Chrome) Back(ctx context.Context) error {
	c.expect(model.NavigationHistory)
	return c.run(ctx, chromedp.NavigateBack())
}

// Forward steps the tab history forward
func (c *Chrome) Forward(ctx context.Context) error {
	c.expect(model.NavigationHistory)
	return c.run(ctx, chromedp.NavigateForward())
}

// Reload reloads the page
func (c *Chrome) Reload(ctx context.Context) error {
	c.expect(model.NavigationLoad)
	return c.run(ctx, chromedp.Reload())
}

// ScrollBy scrolls the page vertically by dy pixels
func (c *Chrome) ScrollBy(ctx context.Context, dy int) error {
	return c.run(ctx, chromedp.Evaluate(scrollScript(dy), nil))
}

// Navigations returns the stream of navigation reports
func (c *Chrome) Navigations() <-chan model.NavigationReport {
	return c.reports
}

// Close shuts the tab and the browser process down
func (c *Chrome) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.reports)
	c.mu.Unlock()

	if c.tabCancel != nil {
		c.tabCancel()
	}
	if c.allocCancel != nil {
		c.allocCancel()
	}
	return nil
}

// run executes actions on the tab and aborts them when ctx is done
func (c *Chrome) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(c.tabCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (c *Chrome) expect(kind model.NavigationKind) {
	c.mu.Lock()
	c.nextKind = kind
	c.mu.Unlock()
}

// onEvent runs on the CDP event loop and must not block
func (c *Chrome) onEvent(ev interface{}) {
	switch e := ev.(type) {
	case *page.EventFrameNavigated:
		if e.Frame == nil || e.Frame.ParentID != "" {
			return
		}
		c.mu.Lock()
		c.mainFrame = e.Frame.ID
		kind := c.nextKind
		c.nextKind = model.NavigationLink
		c.mu.Unlock()
		c.emit(frameURL(e.Frame), kind)

	case *page.EventNavigatedWithinDocument:
		c.mu.Lock()
		isMain := e.FrameID == c.mainFrame
		c.mu.Unlock()
		if isMain {
			c.emit(e.URL, model.NavigationSameDocument)
		}
	}
}

func (c *Chrome) emit(url string, kind model.NavigationKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	select {
	case c.reports <- model.NewNavigationReport(url, kind):
	default:
		log.Printf("Navigation report dropped, consumer is behind: %s", url)
	}
}

// frameURL returns the address the frame tried to show; error pages report
// the unreachable URL instead of chrome-error://
func frameURL(f *cdp.Frame) string {
	if f.UnreachableURL != "" {
		return f.UnreachableURL
	}
	return f.URL + f.URLFragment
}

func scrollScript(dy int) string {
	return fmt.Sprintf("window.scrollBy(0, %d)", dy)
}
