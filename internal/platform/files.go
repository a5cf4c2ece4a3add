package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ytget/safe-browser/internal/allowlist"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	AndroidAM       = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Android intents
const (
	IntentSend        = "android.intent.action.SEND"
	IntentView        = "android.intent.action.VIEW"
	IntentChooser     = "android.intent.action.CHOOSER"
	ExtraStream       = "android.intent.extra.STREAM"
	AndroidDownloads  = "/sdcard/Download"
	AndroidDocumentUI = "content://com.android.externalstorage.documents/root/primary/Download"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// runCommand executes an external command; replaced in tests
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// ShareFile hands an exported file to the platform: the share sheet on
// Android, a file manager with the file selected elsewhere
func ShareFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	goos := runtime.GOOS
	if IsAndroid() {
		goos = OSAndroid
	}

	switch goos {
	case OSDarwin:
		return runCommand(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		return runCommand(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux:
		return revealFileLinux(absPath)
	case OSAndroid:
		return shareFileAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// revealFileLinux opens the directory containing the file.
// File selection is not standardized on Linux.
func revealFileLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := runCommand(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return runCommand(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// shareFileAndroid tries the share sheet first and falls back to showing the
// file's folder
func shareFileAndroid(filePath string) error {
	uri := "file://" + filePath

	// Strategy 1: share sheet with the exported text file
	if err := runCommand(AndroidAM, "start", "-a", IntentSend, "-t", allowlist.ExportMIMEType, "--eu", ExtraStream, uri); err == nil {
		return nil
	}

	// Strategy 2: explicit chooser wrapping the send intent
	if err := runCommand(AndroidAM, "start", "-a", IntentChooser, "--eu", ExtraStream, uri, "-t", allowlist.ExportMIMEType); err == nil {
		return nil
	}

	// Strategy 3: open the folder that holds the file
	if err := runCommand(AndroidAM, "start", "-a", IntentView, "-d", "file://"+filepath.Dir(filePath)); err == nil {
		return nil
	}

	// Strategy 4: Downloads in the system document UI
	if err := runCommand(AndroidAM, "start", "-a", IntentView, "-d", AndroidDocumentUI); err == nil {
		return nil
	}

	return fmt.Errorf("failed to share file: no suitable activity found")
}

// IsAndroid reports whether the process runs on Android. Fyne Android apps
// may report linux as GOOS, so the environment is checked too.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if IsAndroid() {
		return AndroidDownloads, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// WriteExportFile writes content as urls_<millis>.txt into dir and returns
// the path of the new file
func WriteExportFile(dir, content string, now time.Time) (string, error) {
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, allowlist.ExportFileName(now))
	if err := os.WriteFile(path, []byte(content), DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// ReadImportFile reads a whole text file for import
func ReadImportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &allowlist.LoadError{Source: path, Err: err}
	}
	return string(data), nil
}
