package model

import (
	"time"

	"github.com/google/uuid"
)

// NavigationKind describes what caused a navigation report
type NavigationKind string

const (
	NavigationLoad         NavigationKind = "load"
	NavigationLink         NavigationKind = "link"
	NavigationSameDocument NavigationKind = "same-document"
	NavigationHistory      NavigationKind = "history"
)

// NavigationReport is emitted by the renderer every time the shown URL changes,
// including redirects and in-page navigations
type NavigationReport struct {
	ID   string
	URL  string
	Kind NavigationKind
	At   time.Time
}

// NewNavigationReport stamps a report with a fresh ID and the current time
func NewNavigationReport(url string, kind NavigationKind) NavigationReport {
	return NavigationReport{
		ID:   "nav-" + uuid.New().String(),
		URL:  url,
		Kind: kind,
		At:   time.Now(),
	}
}
