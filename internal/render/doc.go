package render

// Package render provides the rendering collaborators used by the viewer:
// a Chrome window driven over the DevTools protocol (desktop) and the
// platform browser opened through Fyne (mobile fallback). Both report every
// navigation on a channel consumed by browser.Controller.Watch.
