package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/safe-browser/internal/model"
)

// URLRow shows one allow-list entry with its state and a remove action
type URLRow struct {
	widget.BaseWidget

	localization *Localization
	url          model.AllowedURL
	current      bool
	focused      bool

	// UI components
	background *canvas.Rectangle
	urlLabel   *widget.Label
	statusText *canvas.Text
	removeBtn  *widget.Button
	rowHeight  float32

	onRemove func(url model.AllowedURL)
}

// NewURLRow creates a new row widget
func NewURLRow(localization *Localization, rowHeight float32, onRemove func(url model.AllowedURL)) *URLRow {
	r := &URLRow{
		localization: localization,
		rowHeight:    rowHeight,
		onRemove:     onRemove,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

func (r *URLRow) createUI() {
	r.background = canvas.NewRectangle(color.Transparent)
	r.background.CornerRadius = 8

	r.urlLabel = widget.NewLabel("")
	r.urlLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.urlLabel.Truncation = fyne.TextTruncateEllipsis

	r.statusText = canvas.NewText("", ColorPrimary)
	r.statusText.TextSize = 12

	r.removeBtn = widget.NewButton(IconDelete, func() {
		if r.onRemove != nil && r.url != "" {
			r.onRemove(r.url)
		}
	})
	r.removeBtn.Importance = widget.DangerImportance
}

// Update binds the row to url and refreshes its state
func (r *URLRow) Update(url model.AllowedURL, current, focused bool) {
	r.url = url
	r.current = current
	r.focused = focused

	r.urlLabel.SetText(url.String())
	r.statusText.Text = r.StatusText()
	if current {
		r.statusText.Color = ColorSuccess
	} else {
		r.statusText.Color = ColorPrimary
	}
	if focused {
		r.background.FillColor = color.NRGBA{R: 0, G: 122, B: 255, A: 40}
	} else {
		r.background.FillColor = color.Transparent
	}
	r.Refresh()
}

// StatusText returns the hint shown under the URL
func (r *URLRow) StatusText() string {
	if r.current {
		return r.localization.GetText(KeyCurrent)
	}
	return r.localization.GetText(KeyTapToOpen)
}

// URL returns the bound entry
func (r *URLRow) URL() model.AllowedURL {
	return r.url
}

// CreateRenderer lays the row out
func (r *URLRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(r.urlLabel, container.NewPadded(r.statusText))
	row := container.NewBorder(nil, nil, nil, container.NewCenter(r.removeBtn), text)
	return widget.NewSimpleRenderer(container.NewStack(r.background, row))
}

// MinSize keeps rows at a comfortable touch height
func (r *URLRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Height < r.rowHeight {
		size.Height = r.rowHeight
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	return size
}
