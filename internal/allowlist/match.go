package allowlist

import "github.com/ytget/safe-browser/internal/model"

// IsAllowed reports whether candidate starts with at least one entry of list,
// compared case-insensitively. An empty list allows nothing.
func IsAllowed(candidate string, list []model.AllowedURL) bool {
	for _, allowed := range list {
		if allowed.Matches(candidate) {
			return true
		}
	}
	return false
}

// Contains reports an exact match, used for duplicate detection
func Contains(list []model.AllowedURL, url model.AllowedURL) bool {
	for _, existing := range list {
		if existing == url {
			return true
		}
	}
	return false
}
