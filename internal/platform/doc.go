package platform

// Package platform contains OS/platform integration: the JSON file backend for
// the allow-list record, a change watcher for that file, export/import file
// helpers, and handing exported files to the OS share or reveal action.
