package ui

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/safe-browser/internal/model"
)

// DialogNotifier shows notices as modal dialogs on a window. Denials are also
// sent to the system notification area.
type DialogNotifier struct {
	window fyne.Window
	app    fyne.App

	mu      sync.Mutex
	history []model.Notice
	onShown func(model.Notice)
}

// MaxNoticeHistory bounds the retained notice history
const MaxNoticeHistory = 50

// NewDialogNotifier creates a notifier for window
func NewDialogNotifier(app fyne.App, window fyne.Window) *DialogNotifier {
	return &DialogNotifier{app: app, window: window}
}

// SetShownCallback sets a function called after a notice is displayed
func (n *DialogNotifier) SetShownCallback(callback func(model.Notice)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onShown = callback
}

// Notify displays notice; safe to call from any goroutine
func (n *DialogNotifier) Notify(notice model.Notice) {
	log.Printf("Notice %s (%s): %s - %s", notice.ID, notice.Kind, notice.Title, notice.Message)

	n.mu.Lock()
	n.history = append(n.history, notice)
	if len(n.history) > MaxNoticeHistory {
		n.history = n.history[len(n.history)-MaxNoticeHistory:]
	}
	callback := n.onShown
	n.mu.Unlock()

	fyne.Do(func() {
		dialog.ShowInformation(notice.Title, notice.Message, n.window)

		if notice.Kind == model.NoticeDenied && n.app != nil {
			n.app.SendNotification(fyne.NewNotification(notice.Title, notice.Message))
		}
		if callback != nil {
			callback(notice)
		}
	})
}

// History returns the notices shown so far, oldest first
func (n *DialogNotifier) History() []model.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]model.Notice, len(n.history))
	copy(out, n.history)
	return out
}
