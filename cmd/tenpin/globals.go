package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/tenpin/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"tenpin.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	Workers  int    `short:"w" help:"Parallel workers for file scoring (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`
}

var (
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// setup loads configuration, applies command line overrides and builds the logger
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}

	if g.LogLevel != "" {
		cfg.CLI.LogLevel = g.LogLevel
	}
	if g.Workers != 0 {
		cfg.CLI.Workers = g.Workers
	}
	if g.NoColor {
		cfg.CLI.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if cfg.CLI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		Formatter:       cfg.Formatter(),
		ReportTimestamp: true,
	})
	return cfg, logger, nil
}

// signalContext creates a context that is cancelled on interrupt signals and logs
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
