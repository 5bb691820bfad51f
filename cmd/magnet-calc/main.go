package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/handiism/magnet-calculator/internal/config"
	ioutils "github.com/handiism/magnet-calculator/internal/io"
	"github.com/handiism/magnet-calculator/internal/logging"
	"github.com/handiism/magnet-calculator/internal/shell"
)

func main() {
	// Command line flags
	var (
		configFlag     = flag.String("config", "", "Path to settings file (default: user config dir)")
		strictFlag     = flag.Bool("strict", false, "Reject numbers followed by other text")
		exitOptionFlag = flag.Bool("exit-option", false, "Show an Exit entry in the menu")
		verboseFlag    = flag.Bool("verbose", false, "Write debug logs to stderr")
		saveFlag       = flag.Bool("save-config", false, "Write the effective settings to the config file and exit")
	)

	flag.Parse()

	// Load config
	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *strictFlag {
		settings.StrictNumericInput = true
	}
	if *exitOptionFlag {
		settings.ShowExitOption = true
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	if *saveFlag {
		if err := settings.Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Settings saved to %s\n", path)
		return
	}

	logger, err := logging.New(settings.ToLoggingConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Handle interrupts. A pending stdin read cannot be unblocked, so the
	// process exits from here.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Debug("interrupted", zap.Stringer("signal", sig))
		cancel()
		_ = logger.Sync()
		fmt.Println()
		os.Exit(130)
	}()

	logger.Debug("starting", zap.String("config", path), zap.Any("settings", settings))

	opts := append(shell.OptionsFromSettings(settings), shell.WithLogger(logger))
	sh := shell.New(ioutils.NewScanReader(os.Stdin), ioutils.NewStreamWriter(os.Stdout), opts...)

	if err := sh.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
