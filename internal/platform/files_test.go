package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// stubCommands replaces runCommand and records every invocation
func stubCommands(t *testing.T, fail func(name string, args []string) bool) *[]string {
	t.Helper()
	var calls []string
	original := runCommand
	runCommand = func(name string, args ...string) error {
		calls = append(calls, name+" "+strings.Join(args, " "))
		if fail != nil && fail(name, args) {
			return errors.New("command failed")
		}
		return nil
	}
	t.Cleanup(func() { runCommand = original })
	return &calls
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "exports", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop layout only")
	}

	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestWriteExportFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	now := time.UnixMilli(1700000000123)
	content := "https://www.google.com\nhttps://www.github.com"

	path, err := WriteExportFile(dir, content, now)
	if err != nil {
		t.Fatalf("WriteExportFile failed: %v", err)
	}

	if filepath.Base(path) != "urls_1700000000123.txt" {
		t.Errorf("Unexpected export file name: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}
	if string(data) != content {
		t.Errorf("Expected content %q, got %q", content, string(data))
	}
}

func TestReadImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte("https://a.example\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	content, err := ReadImportFile(path)
	if err != nil {
		t.Fatalf("ReadImportFile failed: %v", err)
	}
	if content != "https://a.example\r\n" {
		t.Errorf("Unexpected content %q", content)
	}
}

func TestReadImportFile_Missing(t *testing.T) {
	_, err := ReadImportFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}
}

func TestShareFile_NonExistentFile(t *testing.T) {
	calls := stubCommands(t, nil)

	err := ShareFile(filepath.Join(t.TempDir(), "nonexistent.txt"))
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
	if len(*calls) != 0 {
		t.Errorf("No command should run, got %v", *calls)
	}
}

func TestShareFile_UsesPlatformCommand(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop dispatch only")
	}
	calls := stubCommands(t, nil)

	path, err := WriteExportFile(t.TempDir(), "https://www.google.com", time.Now())
	if err != nil {
		t.Fatal(err)
	}

	err = ShareFile(path)
	switch runtime.GOOS {
	case OSDarwin, OSWindows, OSLinux:
		if err != nil {
			t.Fatalf("ShareFile failed: %v", err)
		}
		if len(*calls) != 1 {
			t.Fatalf("Expected one command, got %v", *calls)
		}
	default:
		if err == nil {
			t.Error("Expected unsupported OS error")
		}
	}

	if runtime.GOOS == OSLinux && !strings.HasPrefix((*calls)[0], XDGOpenCommand+" ") {
		t.Errorf("Expected xdg-open, got %s", (*calls)[0])
	}
}

func TestShareFileAndroid_Strategies(t *testing.T) {
	tests := []struct {
		name      string
		failFirst int
		wantCalls int
		wantErr   bool
	}{
		{"share sheet succeeds", 0, 1, false},
		{"falls back to chooser", 1, 2, false},
		{"falls back to folder view", 2, 3, false},
		{"all strategies fail", 4, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			calls := stubCommands(t, func(string, []string) bool {
				n++
				return n <= tt.failFirst
			})

			err := shareFileAndroid("/sdcard/Download/urls_1.txt")
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if len(*calls) != tt.wantCalls {
				t.Errorf("Expected %d calls, got %d: %v", tt.wantCalls, len(*calls), *calls)
			}
			if !strings.Contains((*calls)[0], IntentSend) || !strings.Contains((*calls)[0], "text/plain") {
				t.Errorf("First strategy should be a text/plain send intent, got %s", (*calls)[0])
			}
		})
	}
}
