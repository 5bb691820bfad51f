package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/magnet-calculator/internal/config"
	"github.com/handiism/magnet-calculator/internal/logging"
	"github.com/handiism/magnet-calculator/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to settings file (default: user config dir)")
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Verbose stderr logging would corrupt the alt screen; only log_path applies.
	logger, err := logging.New(settings.ToTUILoggingConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := tui.Run(settings, logger); err != nil {
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
