// ordash: operations-research calculator dashboard.
//
// Runs the M/M/1 queue, EOQ, production LP and break-even calculators in a
// terminal dashboard, or evaluates one of them headless with --mode.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ordash/ordash/internal/config"
	"github.com/ordash/ordash/internal/headless"
	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/tui"
	flag "github.com/spf13/pflag"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Exit codes
const (
	exitError      = 1
	exitDiagnostic = 2
)

type options struct {
	configPath string
	debug      bool
	mode       string
	output     string
	overrides  map[string]string
}

// writeVersion prints the build and the configuration file that would be read.
func writeVersion(w io.Writer, configPath string) {
	fmt.Fprintf(w, "ordash version %s (built %s)\n", Version, BuildTime)
	fmt.Fprintf(w, "config: %s\n", config.ConfigPath(configPath))
}

func main() {
	var opts options
	flag.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	showVersion := flag.BoolP("version", "v", false, "Show version and exit")
	flag.StringVarP(&opts.mode, "mode", "m", "", "Evaluate one calculator without the dashboard (queue, eoq, production, breakeven)")
	flag.StringVarP(&opts.output, "output", "o", "text", "Headless output format (text, yaml)")
	flag.StringToStringVar(&opts.overrides, "set", nil, "Override a configuration value, e.g. --set queueing.arrival_rate=5")
	flag.Parse()

	if *showVersion {
		writeVersion(os.Stdout, opts.configPath)
		os.Exit(0)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		// Force exit after timeout
		time.AfterFunc(10*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(exitError)
		})
	}()

	if err := run(ctx, opts, os.Stdout); err != nil {
		if headless.IsDiagnostic(err) {
			fmt.Fprintln(os.Stderr, "ordash:", err)
			os.Exit(exitDiagnostic)
		}
		slog.Error("application error", "error", err)
		fmt.Fprintln(os.Stderr, "ordash:", err)
		os.Exit(exitError)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	isHeadless := opts.mode != ""

	// Headless runs do not write a default file next to the caller.
	cfg, cfgPath, err := config.Load(opts.configPath, !isHeadless)
	if err != nil {
		var loadErr *config.LoadError
		if !isHeadless || opts.configPath != "" || errors.As(err, &loadErr) {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg, cfgPath = config.Default(), ""
	}

	if err := cfg.Apply(opts.overrides); err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg, opts.debug, isHeadless)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	slog.Info("ordash starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
		"headless", isHeadless,
	)

	if isHeadless {
		mode, err := models.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		format, err := headless.ParseFormat(opts.output)
		if err != nil {
			return err
		}
		return headless.Run(stdout, cfg, mode, format, logger)
	}

	// Set version info for TUI
	tui.Version = Version
	tui.BuildTime = BuildTime

	if err := tui.Run(ctx, cfg, logger); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("ordash shutdown complete")
	return nil
}

// setupLogging returns the process logger. The dashboard owns the terminal,
// so it logs JSON to the configured file; headless runs log text to stderr.
func setupLogging(cfg *config.Config, debug, isHeadless bool) (*slog.Logger, func(), error) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}
	opts := &slog.HandlerOptions{Level: logLevel}

	if isHeadless {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	if logPath == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(logFile, opts)), func() { logFile.Close() }, nil
}
