package allowlist

// Package allowlist owns the ordered list of allowed URL prefixes: the
// persisted store, the case-insensitive prefix membership check and the plain
// text import/export format. Every mutation is written through to a Backend
// immediately; write failures never roll back the in-memory list.
