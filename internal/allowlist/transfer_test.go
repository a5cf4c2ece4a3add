package allowlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/safe-browser/internal/model"
)

func TestExportText(t *testing.T) {
	list := []model.AllowedURL{"https://a.com", "http://b.com/x"}
	assert.Equal(t, "https://a.com\nhttp://b.com/x", ExportText(list))
	assert.Equal(t, "", ExportText(nil))
}

func TestExportFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "urls_1700000000123.txt", ExportFileName(now))
}

func TestParseImport(t *testing.T) {
	content := "  https://a.com  \r\nftp://old.com\n\ninvalid\rhttp://b.com\nHTTPS://C.com\n"
	urls := ParseImport(content)
	assert.Equal(t, []model.AllowedURL{"https://a.com", "http://b.com"}, urls)
}

func TestParseImport_SkipsInnerWhitespace(t *testing.T) {
	urls := ParseImport("https://a b.com\nhttps://ok.com\nhttps://tab\there.com")
	assert.Equal(t, []model.AllowedURL{"https://ok.com"}, urls)
}

func TestImportText_RejectsInvalidLines(t *testing.T) {
	existing := []model.AllowedURL{"https://new.com"}

	merged, accepted, err := ImportText("ftp://old.com\nhttps://new.com\ninvalid", existing)
	require.NoError(t, err)
	assert.Equal(t, 1, accepted)
	assert.Equal(t, []model.AllowedURL{"https://new.com"}, merged)
}

func TestImportText_NoValidLines(t *testing.T) {
	existing := []model.AllowedURL{"https://a.com"}

	merged, accepted, err := ImportText("ftp://x\nnot a url\n", existing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoValidURLs)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 0, accepted)
	assert.Equal(t, existing, merged)
}

func TestMergeImport_FirstSeenWins(t *testing.T) {
	existing := []model.AllowedURL{"https://a.com", "https://b.com"}
	lines := []model.AllowedURL{"https://c.com", "https://a.com", "https://c.com", "https://d.com"}

	merged := MergeImport(existing, lines)
	assert.Equal(t, []model.AllowedURL{"https://a.com", "https://b.com", "https://c.com", "https://d.com"}, merged)
}

func TestImportExportRoundTrip(t *testing.T) {
	lists := [][]model.AllowedURL{
		model.DefaultAllowedURLs,
		{"https://Example.com/Case", "http://plain.org"},
		{"https://only.one"},
	}

	for _, list := range lists {
		merged, accepted, err := ImportText(ExportText(list), nil)
		require.NoError(t, err)
		assert.Equal(t, len(list), accepted)
		assert.Equal(t, list, merged)
	}
}
