// Command fbdemo renders a status screen on a framebuf Video and saves
// the displayed frame as PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/framebuf"
	"github.com/gogpu/framebuf/backend"
	_ "github.com/gogpu/framebuf/backend/sim"
	"github.com/gogpu/framebuf/bitfont"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		output     = flag.String("output", "", "output PNG file (overrides config)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	framebuf.SetLogger(logger)

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			logger.Error("fbdemo: config", "err", err)
			os.Exit(1)
		}
	}
	if *output != "" {
		cfg.Output = *output
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("fbdemo: failed", "err", err)
		os.Exit(1)
	}
}

// vblanker is implemented by backends with a display queue the caller
// drives.
type vblanker interface {
	VBlank() bool
}

func run(cfg config, logger *slog.Logger) (err error) {
	dev, err := backend.NewByName(cfg.Backend)
	if err != nil {
		return err
	}
	v, err := framebuf.Init(
		framebuf.WithBackend(dev),
		framebuf.WithSize(cfg.Width, cfg.Height),
		framebuf.WithPitchAlign(cfg.PitchAlign),
	)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, v.End())
		stats := v.Stats()
		logger.Info("fbdemo: done", "vram", stats.String(), "balanced", stats.Balanced())
	}()

	if err := drawStatus(v, cfg); err != nil {
		return err
	}
	if vb, ok := dev.(vblanker); ok {
		vb.VBlank()
	}

	img, err := v.Snapshot()
	if err != nil {
		return err
	}
	if err := caption(img, v, cfg.Foreground); err != nil {
		return err
	}
	if err := savePNG(cfg.Output, img); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	logger.Info("fbdemo: saved", "path", cfg.Output, "width", v.Width(), "height", v.Height())
	return nil
}

// drawStatus draws the title bar, the listening address and a palette.
func drawStatus(v *framebuf.Video, cfg config) error {
	if err := v.Clear(); err != nil {
		return err
	}
	if err := v.FillRect(0, 0, v.Width(), v.Height(), cfg.Background); err != nil {
		return err
	}
	if err := v.FillRect(0, 0, v.Width(), 2*framebuf.CellSize, framebuf.RGB(0x60, 0x20, 0x90)); err != nil {
		return err
	}
	if err := v.DrawString(framebuf.CellSize/2, framebuf.CellSize/2, cfg.Foreground, cfg.Title); err != nil {
		return err
	}

	y := 3 * framebuf.CellSize
	if err := v.DrawString(framebuf.CellSize, y, framebuf.Cyan, "READY"); err != nil {
		return err
	}
	y += 2 * framebuf.CellSize
	if err := v.DrawStringf(framebuf.CellSize, y, framebuf.RGB(0x40, 0xFF, 0x40),
		"Listening on IP %s Port %d", cfg.Host, cfg.Port); err != nil {
		return err
	}
	y += 2 * framebuf.CellSize
	if err := v.DrawStringf(framebuf.CellSize, y, cfg.Foreground,
		"Surface\t%dx%d\nPitch\t%d", v.Width(), v.Height(), v.Pitch()); err != nil {
		return err
	}

	palette := []framebuf.Color{
		framebuf.Red, framebuf.Green, framebuf.Blue, framebuf.Yellow,
		framebuf.Cyan, framebuf.Magenta, framebuf.White,
	}
	y += 3 * framebuf.CellSize
	for i, c := range palette {
		if err := v.FillRect(framebuf.CellSize+i*2*framebuf.CellSize, y, framebuf.CellSize, framebuf.CellSize, c); err != nil {
			return err
		}
	}
	return nil
}

// caption stamps the allocator statistics along the bottom edge at 1x.
func caption(img *image.NRGBA, v *framebuf.Video, c framebuf.Color) error {
	face, err := bitfont.NewFace(v.Font(), 1)
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(4, img.Bounds().Dy()-4),
	}
	d.DrawString(v.Stats().String())
	return nil
}
