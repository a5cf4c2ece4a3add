package browser

import (
	"context"
	"errors"
	"sync"

	"github.com/ytget/safe-browser/internal/model"
)

// fakeRenderer records commands instead of rendering pages
type fakeRenderer struct {
	mu       sync.Mutex
	loaded   []string
	commands []string
	scrolled []int
	failLoad bool
	backErr  error
	reports  chan model.NavigationReport
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{reports: make(chan model.NavigationReport, 8)}
}

func (f *fakeRenderer) Load(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLoad {
		return errors.New("renderer crashed")
	}
	f.loaded = append(f.loaded, url)
	return nil
}

func (f *fakeRenderer) Back(context.Context) error {
	f.record("back")
	return f.backErr
}

func (f *fakeRenderer) Forward(context.Context) error {
	f.record("forward")
	return nil
}

func (f *fakeRenderer) Reload(context.Context) error {
	f.record("reload")
	return nil
}

func (f *fakeRenderer) ScrollBy(_ context.Context, dy int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scrolled = append(f.scrolled, dy)
	return nil
}

func (f *fakeRenderer) Navigations() <-chan model.NavigationReport {
	return f.reports
}

func (f *fakeRenderer) Close() error {
	close(f.reports)
	return nil
}

func (f *fakeRenderer) record(cmd string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
}

func (f *fakeRenderer) lastLoaded() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.loaded) == 0 {
		return ""
	}
	return f.loaded[len(f.loaded)-1]
}

// fakeNotifier collects notices
type fakeNotifier struct {
	mu      sync.Mutex
	notices []model.Notice
}

func (f *fakeNotifier) Notify(notice model.Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, notice)
}

func (f *fakeNotifier) count(kind model.NoticeKind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, notice := range f.notices {
		if notice.Kind == kind {
			n++
		}
	}
	return n
}

func (f *fakeNotifier) last() model.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notices) == 0 {
		return model.Notice{}
	}
	return f.notices[len(f.notices)-1]
}

// memoryBackend is a minimal allowlist.Backend
type memoryBackend struct {
	values  map[string]string
	failSet bool
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{values: make(map[string]string)}
}

func (m *memoryBackend) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryBackend) Set(key, value string) error {
	if m.failSet {
		return errors.New("write failed")
	}
	m.values[key] = value
	return nil
}
