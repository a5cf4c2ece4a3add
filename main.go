package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/safe-browser/internal/allowlist"
	"github.com/ytget/safe-browser/internal/browser"
	"github.com/ytget/safe-browser/internal/config"
	"github.com/ytget/safe-browser/internal/platform"
	"github.com/ytget/safe-browser/internal/render"
	"github.com/ytget/safe-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.safe-browser"
	AppName = "Safe Browser"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		log.Printf("App icon not loaded: %v", err)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	settings := config.NewSettings(myApp)

	cfg, backend, err := openBackend(myApp)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := allowlist.NewStore(backend)
	store.Load()

	renderer := newRenderer(myApp, settings, cfg)
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Printf("Error closing renderer: %v", err)
		}
	}()

	// Exports go to the app's private documents unless a store file is managed
	exportDir := myApp.Storage().RootURI().Path()
	if _, managed := backend.(*platform.FileBackend); managed {
		exportDir = cfg.ExportDir
	}

	notifier := ui.NewDialogNotifier(myApp, myWindow)
	controller := browser.NewController(store, renderer, notifier)
	if settings.GetRestoreLastURL() {
		if last := settings.GetLastURL(); !controller.RestoreURL(last) && last != "" {
			log.Printf("Last URL %s is not allowed, starting at %s", last, controller.CurrentURL())
		}
	}

	ui.NewRootUI(ctx, myApp, myWindow, ui.Options{
		Controller: controller,
		Notifier:   notifier,
		Settings:   settings,
		ExportDir:  exportDir,
	})

	// External edits to the store file (e.g. by the allowlist CLI)
	if fb, ok := backend.(*platform.FileBackend); ok {
		watcher, err := platform.WatchFile(fb.Path(), platform.DefaultWatchDebounce, controller.ReloadList)
		if err != nil {
			log.Printf("Store watcher disabled: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	go controller.Watch(ctx, renderer.Navigations())
	go func() {
		if err := controller.Start(ctx); err != nil {
			log.Printf("Initial load failed: %v", err)
		}
	}()

	myWindow.ShowAndRun()
}

// openBackend picks the allow-list storage. A config file or SAFEBROWSER_*
// variables select the shared JSON file; otherwise app preferences are used.
func openBackend(a fyne.App) (*config.Config, allowlist.Backend, error) {
	path := config.DefaultConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if !config.HasOverrides(path) {
		return cfg, config.NewPreferencesBackend(a.Preferences()), nil
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(cfg.StorePath)); err != nil {
		log.Printf("failed to ensure store dir: %v", err)
	}
	log.Printf("Using allow-list file %s", cfg.StorePath)
	return cfg, platform.NewFileBackend(cfg.StorePath), nil
}

// newRenderer starts the configured renderer, falling back to the system
// browser when Chrome is unavailable
func newRenderer(a fyne.App, settings *config.Settings, cfg *config.Config) browser.Renderer {
	kind := settings.GetRenderer()
	if cfg.Renderer != "" && config.HasOverrides(config.DefaultConfigPath()) {
		kind = cfg.Renderer
	}

	if kind == config.RendererChrome {
		userAgent := cfg.UserAgent
		if userAgent == "" {
			userAgent = settings.EffectiveUserAgent(platform.IsAndroid())
		}
		chrome, err := render.NewChrome(render.ChromeConfig{
			Headless:  settings.GetHeadless() || cfg.Headless,
			UserAgent: userAgent,
		})
		if err == nil {
			return chrome
		}
		log.Printf("Chrome renderer unavailable, using system browser: %v", err)
	}

	return render.NewSystem(a)
}
