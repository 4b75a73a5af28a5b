package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/foxeronthepath/roulette/internal/config"
	"github.com/foxeronthepath/roulette/internal/session"
	"github.com/foxeronthepath/roulette/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to HCL config file" default:"roulette.hcl" type:"path"`
	Debug   bool             `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("roulette"),
		kong.Description("A terminal roulette betting-table widget"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	err := run(cli)
	ctx.FatalIfErrorf(err)
}

func run(cli CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cli.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	logger.Info("Starting widget", "version", version, "config", cli.Config)

	lipgloss.SetColorProfile(termenv.ColorProfile())

	sess := session.New(logger)
	model := tui.NewModel(sess, quartz.NewReal(), logger, tui.Options{
		LossDelay:  cfg.LossDelay(),
		CloseDelay: cfg.CloseDelay(),
		ShowOdds:   cfg.UI.ShowOdds,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	var g errgroup.Group
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("widget exited: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)
		select {
		case <-sig:
			program.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Widget closed")
	return nil
}
