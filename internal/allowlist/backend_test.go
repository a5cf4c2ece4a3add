package allowlist

import "errors"

var errDiskFull = errors.New("disk full")

// memoryBackend is an in-memory Backend with switchable failures
type memoryBackend struct {
	values   map[string]string
	failSet  bool
	failGet  bool
	setCalls int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{values: make(map[string]string)}
}

func (m *memoryBackend) Get(key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("storage unavailable")
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryBackend) Set(key, value string) error {
	m.setCalls++
	if m.failSet {
		return errDiskFull
	}
	m.values[key] = value
	return nil
}
