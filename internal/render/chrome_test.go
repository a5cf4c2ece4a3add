package render

import (
	"context"
	"testing"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/safe-browser/internal/model"
)

// newTestChrome builds a renderer without launching a browser
func newTestChrome(t *testing.T) *Chrome {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	c := newChrome(ctx, cancel, func() {})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func frameNavigated(id, parent, url string) *page.EventFrameNavigated {
	return &page.EventFrameNavigated{
		Frame: &cdp.Frame{ID: cdp.FrameID(id), ParentID: cdp.FrameID(parent), URL: url},
	}
}

func TestChrome_TopFrameNavigationReported(t *testing.T) {
	c := newTestChrome(t)

	c.onEvent(frameNavigated("main", "", "https://www.github.com/"))

	require.Len(t, c.Navigations(), 1)
	report := <-c.Navigations()
	assert.Equal(t, "https://www.github.com/", report.URL)
	assert.Equal(t, model.NavigationLink, report.Kind)
}

func TestChrome_SubframeNavigationIgnored(t *testing.T) {
	c := newTestChrome(t)

	c.onEvent(frameNavigated("ad", "main", "https://ads.example.com/"))
	c.onEvent(&page.EventFrameNavigated{})

	assert.Len(t, c.Navigations(), 0)
}

func TestChrome_ErrorPageReportsUnreachableURL(t *testing.T) {
	c := newTestChrome(t)

	c.onEvent(&page.EventFrameNavigated{
		Frame: &cdp.Frame{
			ID:             "main",
			URL:            "chrome-error://chromewebdata/",
			UnreachableURL: "https://www.wikipedia.org/wiki/Go",
		},
	})

	report := <-c.Navigations()
	assert.Equal(t, "https://www.wikipedia.org/wiki/Go", report.URL)
}

func TestChrome_ExpectedKindConsumedOnce(t *testing.T) {
	c := newTestChrome(t)

	c.expect(model.NavigationHistory)
	c.onEvent(frameNavigated("main", "", "https://www.google.com/"))
	c.onEvent(frameNavigated("main", "", "https://www.google.com/search"))

	first := <-c.Navigations()
	second := <-c.Navigations()
	assert.Equal(t, model.NavigationHistory, first.Kind)
	assert.Equal(t, model.NavigationLink, second.Kind)
}

func TestChrome_SameDocumentOnMainFrame(t *testing.T) {
	c := newTestChrome(t)

	c.onEvent(frameNavigated("main", "", "https://www.youtube.com/"))
	<-c.Navigations()

	c.onEvent(&page.EventNavigatedWithinDocument{FrameID: "other", URL: "https://ads.example.com/#x"})
	c.onEvent(&page.EventNavigatedWithinDocument{FrameID: "main", URL: "https://www.youtube.com/watch?v=1"})

	require.Len(t, c.Navigations(), 1)
	report := <-c.Navigations()
	assert.Equal(t, model.NavigationSameDocument, report.Kind)
	assert.Equal(t, "https://www.youtube.com/watch?v=1", report.URL)
}

func TestChrome_FullBufferDropsReports(t *testing.T) {
	c := newTestChrome(t)

	for i := 0; i < ReportBufferSize+5; i++ {
		c.onEvent(frameNavigated("main", "", "https://www.google.com/"))
	}
	assert.Len(t, c.Navigations(), ReportBufferSize)
}

func TestChrome_NoReportsAfterClose(t *testing.T) {
	c := newTestChrome(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	c.onEvent(frameNavigated("main", "", "https://www.google.com/"))
	_, ok := <-c.Navigations()
	assert.False(t, ok)
}

func TestScrollScript(t *testing.T) {
	assert.Equal(t, "window.scrollBy(0, 120)", scrollScript(120))
	assert.Equal(t, "window.scrollBy(0, -240)", scrollScript(-240))
}
