package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/framebuf"
)

type config struct {
	Backend    string
	Width      int
	Height     int
	PitchAlign int
	Host       string
	Port       int
	Output     string
	Title      string
	Foreground framebuf.Color
	Background framebuf.Color
}

type fileConfig struct {
	Backend    string `toml:"backend"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	PitchAlign int    `toml:"pitch_align"`
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Output     string `toml:"output"`
	Title      string `toml:"title"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

func defaultConfig() config {
	return config{
		Backend:    "sim",
		Width:      framebuf.DefaultWidth,
		Height:     framebuf.DefaultHeight,
		PitchAlign: 1,
		Host:       "192.168.0.17",
		Port:       21,
		Output:     "fbdemo.png",
		Title:      "framebuf status",
		Foreground: framebuf.White,
		Background: framebuf.RGB(0x10, 0x10, 0x30),
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load fbdemo config: %w", err)
	}

	if meta.IsDefined("backend") {
		if b := strings.TrimSpace(raw.Backend); b != "" {
			cfg.Backend = b
		}
	}
	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("height") {
		cfg.Height = raw.Height
	}
	if meta.IsDefined("pitch_align") {
		cfg.PitchAlign = raw.PitchAlign
	}
	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("title") {
		cfg.Title = raw.Title
	}
	if meta.IsDefined("foreground") {
		c, err := framebuf.ParseHex(strings.TrimSpace(raw.Foreground))
		if err != nil {
			return config{}, fmt.Errorf("parse foreground: %w", err)
		}
		cfg.Foreground = c
	}
	if meta.IsDefined("background") {
		c, err := framebuf.ParseHex(strings.TrimSpace(raw.Background))
		if err != nil {
			return config{}, fmt.Errorf("parse background: %w", err)
		}
		cfg.Background = c
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	return nil
}
