//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/WaterKat/CGOL-Widget/internal/app"
	"github.com/WaterKat/CGOL-Widget/internal/config"
	"github.com/WaterKat/CGOL-Widget/internal/logging"
	"github.com/WaterKat/CGOL-Widget/internal/notify"
	"github.com/WaterKat/CGOL-Widget/internal/pattern"
	"github.com/WaterKat/CGOL-Widget/internal/widget"
)

const overlayMargin = 24

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg := config.Default()
	if flags.ConfigPath != "" {
		loaded, err := config.Load(flags.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flags.Width > 0 {
		cfg.Grid.Width = flags.Width
	}
	if flags.Height > 0 {
		cfg.Grid.Height = flags.Height
	}
	if flags.Scale > 0 {
		cfg.Render.Scale = flags.Scale
	}
	if flags.Rate > 0 {
		cfg.Step.Rate = flags.Rate
	}
	if flags.Seed != 0 {
		cfg.Grid.Seed = flags.Seed
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	var patterns *pattern.Table
	if cfg.Patterns.Path != "" {
		patterns, err = pattern.LoadTable(cfg.Patterns.Path)
		if err != nil {
			return err
		}
		logger.Info("patterns loaded",
			zap.Int("count", patterns.Count()),
			zap.Strings("names", patterns.Names()))
	}

	state, err := widget.New(cfg, logger, patterns)
	if err != nil {
		return err
	}

	if cfg.Notify.Enabled {
		server, err := notify.NewServer(cfg.Notify.BindAddress, state, logger)
		if err != nil {
			return err
		}
		defer server.Close()
		go server.Serve()
	}

	game, err := app.New(state, cfg)
	if err != nil {
		return err
	}

	w, h := state.Size()
	pw, ph := w*cfg.Render.Scale, h*cfg.Render.Scale
	ebiten.SetWindowTitle("cgol-widget")
	ebiten.SetWindowSize(pw, ph)

	opts := &ebiten.RunGameOptions{}
	if !flags.Windowed {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowMousePassthrough(cfg.Render.MousePassthrough)
		opts.ScreenTransparent = true
		opts.SkipTaskbar = true

		// Bottom-right corner, clear of the usual taskbar strip.
		sw, sh := ebiten.ScreenSizeInFullscreen()
		x := sw - pw - overlayMargin
		y := sh - ph - overlayMargin - 48
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		ebiten.SetWindowPosition(x, y)
	}

	logger.Info("widget running",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("scale", cfg.Render.Scale),
		zap.Bool("windowed", flags.Windowed))

	if err := ebiten.RunGameWithOptions(game, opts); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("widget stopped")
	return nil
}
