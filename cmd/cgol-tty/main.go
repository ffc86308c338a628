package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/WaterKat/CGOL-Widget/internal/config"
	"github.com/WaterKat/CGOL-Widget/internal/notify"
	"github.com/WaterKat/CGOL-Widget/internal/pattern"
	"github.com/WaterKat/CGOL-Widget/internal/tui"
	"github.com/WaterKat/CGOL-Widget/internal/widget"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	seed := flag.Int64("seed", 0, "override the configured RNG seed, 0 keeps it")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Grid.Seed = *seed
	}

	// The alternate screen owns the terminal while the preview runs, so
	// zap stays quiet here. The overlay binary is the logged surface.
	logger := zap.NewNop()

	var patterns *pattern.Table
	if cfg.Patterns.Path != "" {
		var err error
		patterns, err = pattern.LoadTable(cfg.Patterns.Path)
		if err != nil {
			return err
		}
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

	model, err := tui.New(state, cfg)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
