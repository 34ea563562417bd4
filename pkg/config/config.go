package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
)

const (
	DefaultConfigFileName = "cursor-bench.json"
	CurrentConfigVersion  = 1
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrConfigNotFound = errors.New("configuration not found")
)

// Workload names understood by the benchmark runner
const (
	WorkloadSort     = "sort"
	WorkloadDistance = "distance"
	WorkloadSearch   = "search"
	WorkloadScan     = "scan"
)

// AllWorkloads lists every workload in run order
var AllWorkloads = []string{WorkloadSort, WorkloadDistance, WorkloadSearch, WorkloadScan}

// MaxSize bounds the element count of a single workload
const MaxSize = 1 << 26

type BenchConfig struct {
	Version int `json:"version"`

	// Workload selection
	Workloads []string `json:"workloads"`
	Size      int      `json:"size"`
	Rounds    int      `json:"rounds"`
	Seed      int64    `json:"seed"`

	// Output
	ResultsFile string `json:"results_file"`
	LogLevel    string `json:"log_level"`

	// Telemetry toggles the OpenTelemetry provider; its own settings come
	// from CURSOR_TELEMETRY_* variables
	Telemetry bool `json:"telemetry"`

	mu sync.RWMutex
}

// NewDefaultBenchConfig creates a BenchConfig with recommended default values
func NewDefaultBenchConfig() *BenchConfig {
	return &BenchConfig{
		Version:   CurrentConfigVersion,
		Workloads: slices.Clone(AllWorkloads),
		Size:      100_000,
		Rounds:    5,
		Seed:      1,
		LogLevel:  "info",
	}
}

// Validate checks if the configuration is valid
func (c *BenchConfig) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.validate()
}

func (c *BenchConfig) validate() error {
	if c.Version <= 0 {
		return fmt.Errorf("%w: invalid version %d", ErrInvalidConfig, c.Version)
	}

	if len(c.Workloads) == 0 {
		return fmt.Errorf("%w: no workloads selected", ErrInvalidConfig)
	}

	for _, w := range c.Workloads {
		if !slices.Contains(AllWorkloads, w) {
			return fmt.Errorf("%w: unknown workload %q", ErrInvalidConfig, w)
		}
	}

	if c.Size <= 0 || c.Size > MaxSize {
		return fmt.Errorf("%w: size must be in [1, %d], got %d", ErrInvalidConfig, MaxSize, c.Size)
	}

	if c.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive", ErrInvalidConfig)
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// ParseWorkloads splits a comma separated list. "all" selects every workload.
func ParseWorkloads(list string) []string {
	if strings.TrimSpace(list) == "all" {
		return slices.Clone(AllWorkloads)
	}

	var out []string
	for _, w := range strings.Split(list, ",") {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// LoadFromEnv overrides fields from CURSOR_BENCH_* variables.
// Unparseable numbers are ignored.
func (c *BenchConfig) LoadFromEnv() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if val := os.Getenv("CURSOR_BENCH_WORKLOADS"); val != "" {
		c.Workloads = ParseWorkloads(val)
	}

	if val := os.Getenv("CURSOR_BENCH_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.Size = n
		}
	}

	if val := os.Getenv("CURSOR_BENCH_ROUNDS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.Rounds = n
		}
	}

	if val := os.Getenv("CURSOR_BENCH_SEED"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.Seed = n
		}
	}

	if val := os.Getenv("CURSOR_BENCH_RESULTS"); val != "" {
		c.ResultsFile = val
	}

	if val := os.Getenv("CURSOR_BENCH_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv("CURSOR_BENCH_TELEMETRY"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Telemetry = b
		}
	}
}

// LoadBenchConfig reads and validates a configuration file
func LoadBenchConfig(path string) (*BenchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := NewDefaultBenchConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path through a temporary file
func (c *BenchConfig) Save(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename config: %w", err)
	}

	return nil
}

// Update applies the given function to modify the configuration
func (c *BenchConfig) Update(fn func(*BenchConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c)
}
