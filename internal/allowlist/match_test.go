package allowlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/safe-browser/internal/model"
)

func TestIsAllowed(t *testing.T) {
	list := []model.AllowedURL{"https://www.github.com", "http://Intranet.local/wiki"}

	tests := []struct {
		candidate string
		expected  bool
	}{
		{"https://www.github.com", true},
		{"https://www.github.com/anything", true},
		{"HTTPS://WWW.GITHUB.COM/x", true},
		{"http://intranet.local/wiki/page", true},
		{"http://intranet.local/", false},
		{"https://evil.com", false},
		{"https://evil.com/?r=https://www.github.com", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsAllowed(test.candidate, list), "candidate %q", test.candidate)
	}
}

func TestIsAllowed_EmptyList(t *testing.T) {
	assert.False(t, IsAllowed("https://www.google.com", nil))
	assert.False(t, IsAllowed("", []model.AllowedURL{}))
}

// Property: IsAllowed agrees with a direct lower-cased prefix scan
func TestIsAllowed_MatchesPrefixDefinition(t *testing.T) {
	lists := [][]model.AllowedURL{
		nil,
		{"https://a.com"},
		{"https://A.com/Path", "http://b.org"},
		model.DefaultAllowedURLs,
	}
	candidates := []string{
		"https://a.com", "https://a.com/path/x", "HTTPS://A.COM/PATH", "http://b.org/",
		"https://www.youtube.com/watch?v=1", "https://b.org", "ftp://a.com", "",
	}

	for _, list := range lists {
		for _, candidate := range candidates {
			expected := false
			for _, e := range list {
				if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(e.String())) {
					expected = true
				}
			}
			assert.Equal(t, expected, IsAllowed(candidate, list), "list %v candidate %q", list, candidate)
		}
	}
}
