package model

import (
	"errors"
	"strings"
	"unicode"
)

// Scheme prefixes accepted for allowed URLs
const (
	SchemeHTTP    = "http://"
	SchemeHTTPS   = "https://"
	DefaultScheme = SchemeHTTPS
)

// DefaultURL is loaded on start and used as the last-resort fallback
const DefaultURL = "https://www.google.com"

// DefaultAllowedURLs is the list used when nothing was persisted yet
var DefaultAllowedURLs = []AllowedURL{
	"https://www.google.com",
	"https://www.github.com",
	"https://www.youtube.com",
	"https://www.wikipedia.org",
}

// Errors returned by NewAllowedURL
var (
	ErrEmptyURL   = errors.New("url is empty")
	ErrInvalidURL = errors.New("url must not contain spaces or control characters")
)

// AllowedURL is a trimmed, scheme-qualified URL prefix.
// Build it with NewAllowedURL; the zero value is not a valid entry.
type AllowedURL string

// NewAllowedURL normalizes raw input: trims whitespace and prefixes https://
// when no http(s) scheme is present. The original case is kept. Inner
// whitespace or control characters are rejected since the export format is
// one URL per line.
func NewAllowedURL(raw string) (AllowedURL, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", ErrEmptyURL
	}
	if strings.ContainsFunc(url, isBreaking) {
		return "", ErrInvalidURL
	}
	if !HasHTTPScheme(url) {
		url = DefaultScheme + url
	}
	return AllowedURL(url), nil
}

func isBreaking(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// HasHTTPScheme reports whether s starts with the lower-case http:// or
// https:// prefix
func HasHTTPScheme(s string) bool {
	return strings.HasPrefix(s, SchemeHTTP) || strings.HasPrefix(s, SchemeHTTPS)
}

// String returns the URL as a plain string
func (u AllowedURL) String() string {
	return string(u)
}

// Matches reports whether candidate falls under this prefix, ignoring case
func (u AllowedURL) Matches(candidate string) bool {
	return strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(string(u)))
}

// Strings converts a list of allowed URLs to plain strings
func Strings(urls []AllowedURL) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = string(u)
	}
	return out
}

// CloneURLs returns a copy that callers may mutate freely
func CloneURLs(urls []AllowedURL) []AllowedURL {
	out := make([]AllowedURL, len(urls))
	copy(out, urls)
	return out
}
