package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rheza/ee-toolbox/internal/config"
	"github.com/rheza/ee-toolbox/internal/console"
	"github.com/rheza/ee-toolbox/internal/toolbox"
)

func main() {
	// Command line flags
	var (
		configFlag = flag.String("config", "", "Path to config file")
		logFlag    = flag.String("log", "", "Calculation log file (overrides config)")
		exportFlag = flag.String("export", "", "Sample export directory (overrides config)")
		helpFlag   = flag.Bool("help", false, "Show usage")
	)

	flag.Parse()

	if *helpFlag {
		fmt.Println("EE Toolbox - Interactive electrical engineering calculators")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  eetool [options]")
		fmt.Println()
		fmt.Println("For a full-screen interface, use: eetool-tui")
		fmt.Println()
		flag.PrintDefaults()
		return
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *logFlag != "" {
		settings.LogFilePath = *logFlag
	}
	if *exportFlag != "" {
		settings.ExportPath = *exportFlag
	}

	tb := toolbox.New(settings, os.Stdin, os.Stdout)
	if err := tb.Run(); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			fmt.Fprintln(os.Stderr, "\nInput error. Exiting.")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
