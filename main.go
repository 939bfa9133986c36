package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lumipallolabs/gpscan/internal/config"
	"github.com/lumipallolabs/gpscan/internal/core"
	"github.com/lumipallolabs/gpscan/internal/logging"
	"github.com/lumipallolabs/gpscan/internal/ui"
)

// CPUProfileEnv names a file to write a CPU profile to
const CPUProfileEnv = "GPSCAN_CPUPROFILE"

func main() {
	os.Exit(run())
}

func run() int {
	styles := ui.NewStyles(os.Stderr)

	// Enable CPU profiling if GPSCAN_CPUPROFILE is set
	if cpuProfile := os.Getenv(CPUProfileEnv); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			styles.PrintError(os.Stderr, fmt.Errorf("could not create CPU profile: %w", err))
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			styles.PrintError(os.Stderr, fmt.Errorf("could not start CPU profile: %w", err))
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.ParseFlags()
	if err != nil {
		styles.PrintError(os.Stderr, err)
		return 1
	}

	logger, closeLog := logging.New(os.Stderr, cfg.Verbose)
	defer closeLog()

	counters, err := core.NewRunner(logger).Run(cfg)
	if err != nil {
		styles.PrintError(os.Stderr, err)
		return 1
	}

	logger.Info("scan complete", "root", cfg.Directory, "summary", counters.Summary())
	return 0
}
