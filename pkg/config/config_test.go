package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultBenchConfig(t *testing.T) {
	cfg := NewDefaultBenchConfig()

	if cfg.Version != CurrentConfigVersion {
		t.Errorf("expected version %d, got %d", CurrentConfigVersion, cfg.Version)
	}

	if len(cfg.Workloads) != len(AllWorkloads) {
		t.Errorf("expected all workloads by default, got %v", cfg.Workloads)
	}

	// Defaults must not alias the package-level list
	cfg.Workloads[0] = "mutated"
	if AllWorkloads[0] != WorkloadSort {
		t.Errorf("default workloads alias AllWorkloads")
	}
}

func TestBenchConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BenchConfig)
		wantErr bool
	}{
		{"defaults", func(c *BenchConfig) {}, false},
		{"zero version", func(c *BenchConfig) { c.Version = 0 }, true},
		{"no workloads", func(c *BenchConfig) { c.Workloads = nil }, true},
		{"unknown workload", func(c *BenchConfig) { c.Workloads = []string{"shuffle"} }, true},
		{"zero size", func(c *BenchConfig) { c.Size = 0 }, true},
		{"huge size", func(c *BenchConfig) { c.Size = MaxSize + 1 }, true},
		{"zero rounds", func(c *BenchConfig) { c.Rounds = 0 }, true},
		{"bad log level", func(c *BenchConfig) { c.LogLevel = "loud" }, true},
		{"single workload", func(c *BenchConfig) { c.Workloads = []string{WorkloadScan} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultBenchConfig()
			cfg.Update(tt.mutate)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseWorkloads(t *testing.T) {
	if got := ParseWorkloads("all"); len(got) != len(AllWorkloads) {
		t.Errorf("expected all workloads, got %v", got)
	}

	got := ParseWorkloads(" Sort, ,scan ")
	if len(got) != 2 || got[0] != WorkloadSort || got[1] != WorkloadScan {
		t.Errorf("unexpected parse result %v", got)
	}
}

func TestSaveAndLoadBenchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFileName)

	cfg := NewDefaultBenchConfig()
	cfg.Update(func(c *BenchConfig) {
		c.Size = 4096
		c.Seed = 99
		c.Workloads = []string{WorkloadSearch}
		c.ResultsFile = "out.csv.zst"
	})

	if err := cfg.Save(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file should be gone after save")
	}

	loaded, err := LoadBenchConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Size != 4096 || loaded.Seed != 99 || loaded.ResultsFile != "out.csv.zst" {
		t.Errorf("loaded config differs: %+v", loaded)
	}
	if len(loaded.Workloads) != 1 || loaded.Workloads[0] != WorkloadSearch {
		t.Errorf("unexpected workloads %v", loaded.Workloads)
	}
}

func TestLoadBenchConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte(`{"size": 10}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBenchConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Size != 10 || cfg.Rounds != NewDefaultBenchConfig().Rounds {
		t.Errorf("expected size override and default rounds, got %+v", cfg)
	}
}

func TestLoadBenchConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBenchConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBenchConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for malformed file, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"rounds": -1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBenchConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for invalid values, got %v", err)
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := NewDefaultBenchConfig()
	cfg.Size = -1
	if err := cfg.Save(filepath.Join(t.TempDir(), DefaultConfigFileName)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CURSOR_BENCH_WORKLOADS", "sort,distance")
	t.Setenv("CURSOR_BENCH_SIZE", "512")
	t.Setenv("CURSOR_BENCH_ROUNDS", "not-a-number")
	t.Setenv("CURSOR_BENCH_SEED", "7")
	t.Setenv("CURSOR_BENCH_RESULTS", "bench.csv")
	t.Setenv("CURSOR_BENCH_LOG_LEVEL", "debug")
	t.Setenv("CURSOR_BENCH_TELEMETRY", "true")

	cfg := NewDefaultBenchConfig()
	cfg.LoadFromEnv()

	if len(cfg.Workloads) != 2 || cfg.Workloads[1] != WorkloadDistance {
		t.Errorf("unexpected workloads %v", cfg.Workloads)
	}
	if cfg.Size != 512 || cfg.Seed != 7 {
		t.Errorf("unexpected size/seed %d/%d", cfg.Size, cfg.Seed)
	}
	if cfg.Rounds != NewDefaultBenchConfig().Rounds {
		t.Errorf("unparseable rounds should keep the default, got %d", cfg.Rounds)
	}
	if cfg.ResultsFile != "bench.csv" || cfg.LogLevel != "debug" || !cfg.Telemetry {
		t.Errorf("unexpected string/bool overrides: %+v", cfg)
	}
}
