package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/KevoDB/cursor/pkg/bench"
	"github.com/KevoDB/cursor/pkg/common/log"
	"github.com/KevoDB/cursor/pkg/config"
	"github.com/KevoDB/cursor/pkg/telemetry"
)

var (
	// Command line flags
	benchmarkType = flag.String("type", "all", "Workloads to run (sort, distance, search, scan, comma separated, or all)")
	size          = flag.Int("size", 0, "Number of elements per workload (default from config)")
	rounds        = flag.Int("rounds", 0, "Rounds per workload (default from config)")
	seed          = flag.Int64("seed", 0, "Seed for input generation (default from config)")
	configFile    = flag.String("config", "", "JSON configuration file")
	resultsFile   = flag.String("results", "", "CSV file to write results to, zstd-compressed if it ends in .zst")
	useTelemetry  = flag.Bool("telemetry", false, "Export metrics and spans through OpenTelemetry")
	verbose       = flag.Bool("v", false, "Log every round")
	cpuProfile    = flag.String("cpu-profile", "", "Write CPU profile to file")
	memProfile    = flag.String("mem-profile", "", "Write memory profile to file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cursor-bench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if *verbose {
		level = log.LevelDebug
	}
	logger := log.NewStandardLogger(log.WithLevel(level), log.WithComponent("cursor-bench"))

	// Set up CPU profiling if requested
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	tel := telemetry.NewNoop()
	if cfg.Telemetry {
		telCfg := telemetry.DefaultConfig()
		telCfg.LoadFromEnv()
		telCfg.Output = os.Stderr
		tel, err = telemetry.New(telCfg)
		if err != nil {
			return err
		}
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tel.Shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown: %v", err)
		}
	}()

	runner, err := bench.NewRunner(cfg, bench.WithTelemetry(tel), bench.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Cursor Benchmark Report (%s)\n", time.Now().Format(time.RFC3339))
	fmt.Printf("Size: %d, Rounds: %d, Seed: %d\n\n", cfg.Size, cfg.Rounds, cfg.Seed)

	results, runErr := runner.Run(ctx)
	if err := bench.WriteText(os.Stdout, results); err != nil {
		return err
	}

	if cfg.ResultsFile != "" && len(results) > 0 {
		if err := bench.SaveResults(cfg.ResultsFile, results); err != nil {
			logger.Error("failed to write results to %s: %v", cfg.ResultsFile, err)
		} else {
			logger.Info("results written to %s", cfg.ResultsFile)
		}
	}

	// Write memory profile if requested
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			logger.Error("could not create memory profile: %v", err)
		} else {
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				logger.Error("could not write memory profile: %v", err)
			}
		}
	}

	if errors.Is(runErr, context.Canceled) {
		logger.Warn("interrupted, partial results shown")
		return nil
	}
	return runErr
}

// loadConfig layers defaults, the config file, CURSOR_BENCH_* variables and
// explicitly set flags, in that order.
func loadConfig() (*config.BenchConfig, error) {
	cfg := config.NewDefaultBenchConfig()
	if *configFile != "" {
		loaded, err := config.LoadBenchConfig(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()

	cfg.Update(func(c *config.BenchConfig) {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "type":
				c.Workloads = config.ParseWorkloads(*benchmarkType)
			case "size":
				c.Size = *size
			case "rounds":
				c.Rounds = *rounds
			case "seed":
				c.Seed = *seed
			case "results":
				c.ResultsFile = *resultsFile
			case "telemetry":
				c.Telemetry = *useTelemetry
			}
		})
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
