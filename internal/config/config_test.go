package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ning0612/fspreview/internal/domain"
	"github.com/Ning0612/fspreview/internal/logger"
)

func TestLoadFromString_Defaults(t *testing.T) {
	cfg, err := LoadFromString("{}")
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if cfg.Platform != domain.PlatformDesktop {
		t.Errorf("Platform = %q, want desktop", cfg.Platform)
	}
	if cfg.IconSize != 0 {
		t.Errorf("IconSize = %d, want 0", cfg.IconSize)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.DataDir == "" || cfg.DataDir[0] == '~' {
		t.Errorf("DataDir should be expanded, got %q", cfg.DataDir)
	}
}

func TestLoadFromString_Values(t *testing.T) {
	yaml := `
platform: Mobile
icon_size: 32
data_dir: /tmp/fspreview-data
log:
  level: debug
  format: json
  file:
    enabled: true
    path: /tmp/fspreview.log
    max_size_mb: 5
`
	cfg, err := LoadFromString(yaml)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if cfg.Platform != domain.PlatformMobile {
		t.Errorf("Platform = %q, want mobile", cfg.Platform)
	}
	if cfg.IconSize != 32 {
		t.Errorf("IconSize = %d, want 32", cfg.IconSize)
	}
	if cfg.Log.File.MaxSizeMB != 5 || cfg.Log.File.MaxBackups != 3 {
		t.Errorf("unexpected file config: %+v", cfg.Log.File)
	}

	lc := cfg.LoggerConfig()
	if lc.Level != logger.LevelDebug || lc.Format != logger.FormatJSON {
		t.Errorf("unexpected logger config: %+v", lc)
	}
	if len(lc.Outputs) != 2 || lc.Outputs[1].Type != logger.OutputFile || !lc.File.Enabled {
		t.Errorf("expected stderr and file outputs, got %+v", lc.Outputs)
	}
}

func TestLoadFromString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown platform", "platform: watch"},
		{"negative icon size", "icon_size: -4"},
		{"file logging without path", "log:\n  file:\n    enabled: true"},
		{"malformed yaml", "platform: [desktop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.yaml)
			if !errors.Is(err, domain.ErrConfigInvalid) {
				t.Errorf("expected ErrConfigInvalid, got %v", err)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("platform: mobile\ndata_dir: "+dir+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Platform != domain.PlatformMobile {
		t.Errorf("Platform = %q, want mobile", cfg.Platform)
	}
	if cfg.DataDir != filepath.Clean(dir) {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, domain.ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FSPREVIEW_PLATFORM", "mobile")
	t.Setenv("FSPREVIEW_LOG_LEVEL", "warn")

	cfg, err := LoadFromString("platform: desktop")
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if cfg.Platform != domain.PlatformMobile {
		t.Errorf("Platform = %q, want env override mobile", cfg.Platform)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	t.Setenv("FSPREVIEW_TEST_DIR", "/opt/data")

	tests := []struct {
		input string
		want  string
	}{
		{"~", filepath.Clean(home)},
		{"~/.fspreview", filepath.Join(home, ".fspreview")},
		{"$FSPREVIEW_TEST_DIR/db", filepath.Clean("/opt/data/db")},
		{"/a/./b/", filepath.Clean("/a/b")},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
