// Package main is the entry point for the Cadence listening dashboard.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/j-veylop/cadence-dashboard-tui/internal/analytics"
	"github.com/j-veylop/cadence-dashboard-tui/internal/app"
	"github.com/j-veylop/cadence-dashboard-tui/internal/config"
	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/export"
	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/services"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/tabs/dashboard"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/tabs/info"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/tabs/snapshots"
	"github.com/j-veylop/cadence-dashboard-tui/internal/version"
)

// options holds the parsed command-line flags.
type options struct {
	exportDir string
	zones     string
	weeks     string
}

// newRootCmd builds the cadence command. Without --export it starts the TUI.
func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "cadence",
		Short:         "Music listening activity dashboard",
		Long:          longHelp,
		Version:       version.GetVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts, cmd.OutOrStdout())
		},
	}
	cmd.SetVersionTemplate(version.Info() + "\n")

	flags := cmd.Flags()
	flags.StringVar(&opts.exportDir, "export", "", "export charts for the selection to `DIR` and exit")
	flags.StringVar(&opts.zones, "zones", "", "comma-separated time zones for --export, e.g. EST,PST (default all)")
	flags.StringVar(&opts.weeks, "weeks", "", "comma-separated weeks for --export, e.g. \"Present,Week 1\" (default Present)")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run(opts options, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.LogFile != "" {
		closer, err := logger.Init(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
	}
	logger.Info("Starting cadence", "version", version.GetVersion(), "data_dir", cfg.DataDir)

	if opts.exportDir != "" {
		sel := models.Selection{
			TimeZones: models.ParseTimeZones(opts.zones),
			Weeks:     models.ParseWeeks(opts.weeks),
		}
		return exportOnly(cfg.DataDir, opts.exportDir, sel, out)
	}

	// Loads every table; a bad input file stops here before the TUI starts.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	state := model.GetState()
	tabs := []app.Tab{
		dashboard.New(state),
		snapshots.New(state),
		info.New(state, cfg),
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// exportOnly writes the dashboard for sel to outDir without starting the TUI.
func exportOnly(dataDir, outDir string, sel models.Selection, out io.Writer) error {
	tables, err := events.LoadDir(dataDir)
	if err != nil {
		return err
	}

	d := analytics.Compute(tables, sel)
	paths, err := export.Write(outDir, d)
	if err != nil {
		return err
	}

	logger.Info("Exported dashboard", "dir", outDir, "files", len(paths), "selection", sel.String())
	fmt.Fprintf(out, "Exported %s (%d plays) to %s\n", sel.String(), d.Plays, outDir)
	for _, p := range paths {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}

const longHelp = `Cadence - music listening activity dashboard

Keyboard Shortcuts:
  1-3             Switch between tabs (Dashboard, Snapshots, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  Space           Toggle the item under the cursor
  f               Switch between time zones and weeks
  s / e           Save snapshot / export
  r               Reload data files
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  CADENCE_DATA_DIR   Directory holding the six NDJSON tables (default: ./data)
  DATABASE_PATH      SQLite database for snapshots
  EXPORT_DIR         Export directory (default: ./export)
  LOG_FILE           Log file path
  LOG_LEVEL          debug, info, warn or error (default: info)
  RELOAD_DEBOUNCE    Delay before reloading changed files (default: 250ms)
  CADENCE_WATCH      Reload when data files change (default: true)
  CADENCE_NOTIFY     Desktop notifications on reload and export (default: false)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/cadence/.env
  - ~/.cadence/.env`
