package main

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/framebuf"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fbdemo.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
width = 320
height = 240
pitch_align = 64
host = " 10.0.0.2 "
port = 2121
foreground = "#FFFF00"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 || cfg.PitchAlign != 64 {
		t.Errorf("geometry = %dx%d/%d", cfg.Width, cfg.Height, cfg.PitchAlign)
	}
	if cfg.Host != "10.0.0.2" || cfg.Port != 2121 {
		t.Errorf("address = %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.Foreground != framebuf.Yellow {
		t.Errorf("Foreground = %v", cfg.Foreground)
	}

	// Keys not in the file keep their defaults.
	def := defaultConfig()
	if cfg.Output != def.Output || cfg.Backend != def.Backend || cfg.Background != def.Background {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "width = ="},
		{"bad color", `background = "blue"`},
		{"bad port", "port = 70000"},
		{"zero width", "width = 0"},
		{"empty output", `output = " "`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("loadConfig() should fail")
			}
		})
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loadConfig(missing) should fail")
	}
}

func TestRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.Width, cfg.Height = 480, 272
	cfg.Output = filepath.Join(t.TempDir(), "out.png")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	if err := run(cfg, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 480 || img.Bounds().Dy() != 272 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := framebuf.FromColor(img.At(479, 100)); got != cfg.Background {
		t.Errorf("background pixel = %v, want %v", got, cfg.Background)
	}
	if !bytes.Contains(logs.Bytes(), []byte("balanced=true")) {
		t.Errorf("log output missing balanced=true:\n%s", logs.String())
	}
}

func TestRunUnknownBackend(t *testing.T) {
	cfg := defaultConfig()
	cfg.Backend = "nope"
	if err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Error("run() with unknown backend should fail")
	}
}
