package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name for logging
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// GestureHandler classifies a touch into a gesture
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration

	now func() time.Time
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
}

// TouchDown starts tracking a touch
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp classifies the finished touch
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	gh.classify(dx, dy, duration)
}

// TouchCancel drops the tracked touch
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

func (gh *GestureHandler) classify(dx, dy float32, duration time.Duration) {
	absDx, absDy := abs32(dx), abs32(dy)
	moved := absDx >= gh.swipeThreshold || absDy >= gh.swipeThreshold

	switch {
	case moved && absDx > absDy && dx > 0:
		gh.triggerGesture(GestureSwipeRight)
	case moved && absDx > absDy:
		gh.triggerGesture(GestureSwipeLeft)
	case moved && dy > 0:
		gh.triggerGesture(GestureSwipeDown)
	case moved:
		gh.triggerGesture(GestureSwipeUp)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// SwipeArea wraps content and reports gestures made over it. On desktop a
// mouse drag is treated like a touch swipe.
type SwipeArea struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler

	dragDelta fyne.Delta
	dragging  bool
}

var (
	_ mobile.Touchable = (*SwipeArea)(nil)
	_ fyne.Draggable   = (*SwipeArea)(nil)
)

// NewSwipeArea creates a new gesture-aware container
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{
		content:        content,
		gestureHandler: NewGestureHandler(onGesture),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer renders the wrapped content
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// TouchDown handles touch down events
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (sa *SwipeArea) TouchCancel(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchCancel(event)
}

// Dragged accumulates a desktop drag
func (sa *SwipeArea) Dragged(event *fyne.DragEvent) {
	if !sa.dragging {
		sa.dragging = true
		sa.dragDelta = fyne.Delta{}
	}
	sa.dragDelta.DX += event.Dragged.DX
	sa.dragDelta.DY += event.Dragged.DY
}

// DragEnd classifies a finished desktop drag; short drags are ignored
func (sa *SwipeArea) DragEnd() {
	if !sa.dragging {
		return
	}
	sa.dragging = false

	dx, dy := sa.dragDelta.DX, sa.dragDelta.DY
	threshold := sa.gestureHandler.swipeThreshold
	if abs32(dx) < threshold && abs32(dy) < threshold {
		return
	}
	sa.gestureHandler.classify(dx, dy, 0)
}
