package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/safe-browser/internal/allowlist"
	"github.com/ytget/safe-browser/internal/model"
)

func TestFileBackend_MissingFile(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "store.json"))

	value, found, err := b.Get("allowed_urls")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestFileBackend_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	b := NewFileBackend(path)

	require.NoError(t, b.Set("allowed_urls", `["https://a.example"]`))
	require.NoError(t, b.Set("other", "x"))

	value, found, err := b.Get("allowed_urls")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["https://a.example"]`, value)

	// A second backend on the same file sees both records
	value, found, err = NewFileBackend(path).Get("other")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", value)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be renamed away")
}

func TestFileBackend_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	b := NewFileBackend(path)

	_, _, err := b.Get("allowed_urls")
	assert.Error(t, err)

	assert.Error(t, b.Set("allowed_urls", "[]"), "corrupt file must not be overwritten blindly")
}

func TestFileBackend_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, found, err := NewFileBackend(path).Get("allowed_urls")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileBackend_WithStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store := allowlist.NewStore(NewFileBackend(path))
	store.Load()
	_, err := store.Add("example.com")
	require.NoError(t, err)

	reopened := allowlist.NewStore(NewFileBackend(path))
	urls := reopened.Load()
	require.Len(t, urls, len(model.DefaultAllowedURLs)+1)
	assert.Equal(t, model.AllowedURL("https://example.com"), urls[len(urls)-1])
}
