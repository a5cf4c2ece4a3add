package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

func TestGestureHandler_Classify(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		duration time.Duration
		want     GestureType
	}{
		{"tap", 2, 3, 100 * time.Millisecond, GestureTap},
		{"long press", 0, 0, time.Second, GestureLongPress},
		{"swipe right", 120, 10, 200 * time.Millisecond, GestureSwipeRight},
		{"swipe left", -120, 10, 200 * time.Millisecond, GestureSwipeLeft},
		{"swipe down", 10, 150, 200 * time.Millisecond, GestureSwipeDown},
		{"swipe up", 10, -150, 200 * time.Millisecond, GestureSwipeUp},
		{"slow swipe is still a swipe", 120, 0, time.Second, GestureSwipeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []GestureType
			gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
			gh.classify(tt.dx, tt.dy, tt.duration)

			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Expected %s, got %v", tt.want, got)
			}
		})
	}
}

func TestGestureHandler_TouchSequence(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	start := time.Now()
	gh.now = func() time.Time { return start }
	gh.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 100)}})

	gh.now = func() time.Time { return start.Add(150 * time.Millisecond) }
	gh.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 110)}})

	if len(got) != 1 || got[0] != GestureSwipeLeft {
		t.Errorf("Expected swipe-left, got %v", got)
	}

	// TouchUp without TouchDown is ignored
	gh.TouchUp(&mobile.TouchEvent{})
	if len(got) != 1 {
		t.Errorf("Stray TouchUp should not trigger, got %v", got)
	}
}

func TestGestureHandler_TouchCancel(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	gh.TouchDown(&mobile.TouchEvent{})
	gh.TouchCancel(&mobile.TouchEvent{})
	gh.TouchUp(&mobile.TouchEvent{})

	if len(got) != 0 {
		t.Errorf("Cancelled touch should not trigger, got %v", got)
	}
}

func TestSwipeArea_DesktopDrag(t *testing.T) {
	var got []GestureType
	area := NewSwipeArea(widget.NewLabel("page"), func(g GestureType) { got = append(got, g) })

	area.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(40, 0)})
	area.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(40, 5)})
	area.DragEnd()

	// Short drags are ignored
	area.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(5, 5)})
	area.DragEnd()

	if len(got) != 1 || got[0] != GestureSwipeRight {
		t.Errorf("Expected one swipe-right, got %v", got)
	}
}
