package model

// Package model defines domain data structures used across the app: allowed URL
// prefixes, navigation reports coming from the renderer, user-visible notices and
// the screen enum. Values are plain and safe to copy into the UI.
