package render

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"

	"github.com/ytget/safe-browser/internal/browser"
	"github.com/ytget/safe-browser/internal/model"
)

// URLOpener hands a URL to the platform; fyne.App satisfies it
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// System opens pages in the platform browser. It cannot observe in-page
// navigation, so only its own loads are reported.
type System struct {
	opener  URLOpener
	reports chan model.NavigationReport

	mu      sync.Mutex
	lastURL string
	closed  bool
}

// NewSystem creates a renderer backed by opener
func NewSystem(opener URLOpener) *System {
	return &System{
		opener:  opener,
		reports: make(chan model.NavigationReport, ReportBufferSize),
	}
}

// Load opens rawURL in the platform browser
func (s *System) Load(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if err := s.opener.OpenURL(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", rawURL, err)
	}

	log.Printf("Opened in system browser: %s", rawURL)
	s.mu.Lock()
	s.lastURL = rawURL
	s.mu.Unlock()
	s.emit(rawURL, model.NavigationLoad)
	return nil
}

// Back is not available in the platform browser
func (s *System) Back(context.Context) error {
	return browser.ErrUnsupported
}

// Forward is not available in the platform browser
func (s *System) Forward(context.Context) error {
	return browser.ErrUnsupported
}

// Reload opens the last loaded URL again
func (s *System) Reload(ctx context.Context) error {
	s.mu.Lock()
	last := s.lastURL
	s.mu.Unlock()

	if last == "" {
		return browser.ErrUnsupported
	}
	return s.Load(ctx, last)
}

// ScrollBy is not available in the platform browser
func (s *System) ScrollBy(context.Context, int) error {
	return browser.ErrUnsupported
}

// Navigations returns the stream of navigation reports
func (s *System) Navigations() <-chan model.NavigationReport {
	return s.reports
}

// Close stops reporting
func (s *System) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.reports)
	}
	return nil
}

func (s *System) emit(rawURL string, kind model.NavigationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.reports <- model.NewNavigationReport(rawURL, kind):
	default:
		log.Printf("Navigation report dropped, consumer is behind: %s", rawURL)
	}
}
