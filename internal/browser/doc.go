package browser

// Package browser implements the viewer controller: it tracks the current URL
// and the visible screen, drives the rendering collaborator and checks every
// navigation report against the allow-list. Denials on renderer navigation are
// detect-only because the page has already loaded when the report arrives.
