package browser

import (
	"context"

	"github.com/ytget/safe-browser/internal/model"
)

// Renderer is the web-rendering collaborator. It loads URLs and reports every
// navigation on the Navigations channel.
type Renderer interface {
	Load(ctx context.Context, url string) error
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	Reload(ctx context.Context) error

	// ScrollBy injects a vertical scroll offset in CSS pixels
	ScrollBy(ctx context.Context, dy int) error

	Navigations() <-chan model.NavigationReport
	Close() error
}

// Notifier shows blocking notices to the user
type Notifier interface {
	Notify(notice model.Notice)
}

// Translator resolves message keys to localized text
type Translator interface {
	GetText(key string) string
}
