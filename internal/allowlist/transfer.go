package allowlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/ytget/safe-browser/internal/model"
)

// Export file naming
const (
	ExportFilePrefix = "urls_"
	ExportFileExt    = ".txt"
	ExportMIMEType   = "text/plain"
)

// ExportText renders the list one URL per line, in list order
func ExportText(list []model.AllowedURL) string {
	return strings.Join(model.Strings(list), "\n")
}

// ExportFileName returns urls_<unix-millis>.txt for the given moment
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("%s%d%s", ExportFilePrefix, now.UnixMilli(), ExportFileExt)
}

// ParseImport returns the trimmed lines of content that start with http:// or
// https://, in file order. Any line ending is accepted. Lines that would not
// pass NewAllowedURL, such as ones with inner spaces, are skipped.
func ParseImport(content string) []model.AllowedURL {
	lines := strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	urls := make([]model.AllowedURL, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !model.HasHTTPScheme(line) {
			continue
		}
		url, err := model.NewAllowedURL(line)
		if err != nil {
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

// MergeImport unions existing with lines: existing entries first, then new
// lines in order, keeping the first occurrence of each URL
func MergeImport(existing, lines []model.AllowedURL) []model.AllowedURL {
	seen := make(map[model.AllowedURL]bool, len(existing)+len(lines))
	merged := make([]model.AllowedURL, 0, len(existing)+len(lines))

	for _, group := range [][]model.AllowedURL{existing, lines} {
		for _, url := range group {
			if seen[url] {
				continue
			}
			seen[url] = true
			merged = append(merged, url)
		}
	}
	return merged
}

// ImportText parses content and merges it into existing. accepted counts the
// valid lines found in the file, duplicates included.
func ImportText(content string, existing []model.AllowedURL) ([]model.AllowedURL, int, error) {
	lines := ParseImport(content)
	if len(lines) == 0 {
		return model.CloneURLs(existing), 0, &ValidationError{Err: ErrNoValidURLs}
	}
	return MergeImport(existing, lines), len(lines), nil
}
