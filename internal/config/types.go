package config

// Config is the file configuration shared by the CLI and managed installs
type Config struct {
	// StorePath is the JSON file holding the allow-list record. When set, the
	// GUI uses it instead of preferences and reloads on external edits.
	StorePath string       `koanf:"store_path" yaml:"store_path"`
	ExportDir string       `koanf:"export_dir" yaml:"export_dir"`
	UserAgent string       `koanf:"user_agent" yaml:"user_agent"`
	Renderer  RendererKind `koanf:"renderer" yaml:"renderer"`
	Headless  bool         `koanf:"headless" yaml:"headless"`
}
