package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error: %v", err)
	}
	if cfg.ParagraphTag != "div" || cfg.RunTag != "span" || cfg.ImageTag != "img" {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.FailedImageText != "[failed to render image]" {
		t.Errorf("FailedImageText = %q", cfg.FailedImageText)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
paragraph_tag: p
failed_image_text: "(no image)"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.ParagraphTag != "p" {
		t.Errorf("ParagraphTag = %q, want p", cfg.ParagraphTag)
	}
	if cfg.FailedImageText != "(no image)" {
		t.Errorf("FailedImageText = %q, want (no image)", cfg.FailedImageText)
	}
	if cfg.RunTag != "span" || cfg.SubParagraphTag != "div" {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			wantMsg: "reading config",
		},
		{
			name:    "invalid yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "paragraph_tag: [unclosed") },
			wantMsg: "parsing config",
		},
		{
			name:    "empty tag",
			path:    func(t *testing.T) string { return writeConfig(t, `run_tag: ""`) },
			wantMsg: "run_tag must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}
