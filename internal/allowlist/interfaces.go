package allowlist

// Backend is a durable key-value record store. Fyne preferences and the JSON
// file store both satisfy it.
type Backend interface {
	// Get returns the stored value; found is false when the key was never written.
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}
