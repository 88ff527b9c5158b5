package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mpt/internal/platform/config"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()
	course := t.TempDir()

	cfg, err := config.New(course)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.CourseName != config.DefaultCourse {
		t.Fatalf("expected default course, got %s", cfg.CourseName)
	}
	if cfg.Deploy.Host != config.DefaultHost || cfg.Deploy.BasePath != config.DefaultBasePath {
		t.Fatalf("expected default deploy target, got %+v", cfg.Deploy)
	}
	if cfg.Deploy.Pattern != "tutorial_*" {
		t.Fatalf("expected default push pattern, got %s", cfg.Deploy.Pattern)
	}
	if cfg.Deploy.Delay != 3*time.Second {
		t.Fatalf("expected 3s delay, got %s", cfg.Deploy.Delay)
	}
	if cfg.CatalogPath != filepath.Join(course, "tutorials.txt") {
		t.Fatalf("unexpected catalog path: %s", cfg.CatalogPath)
	}
}

func TestConfigFileOverrides(t *testing.T) {
	t.Parallel()
	course := t.TempDir()
	raw := "course: COMP1000\ndeploy:\n  host: tutor.example.edu\n  pattern: 'week_*'\n  delay_seconds: 0\n"
	if err := os.WriteFile(filepath.Join(course, "mpt.yml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.New(course)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.CourseName != "COMP1000" {
		t.Fatalf("expected COMP1000, got %s", cfg.CourseName)
	}
	if cfg.Deploy.Host != "tutor.example.edu" {
		t.Fatalf("expected overridden host, got %s", cfg.Deploy.Host)
	}
	if cfg.Deploy.Pattern != "week_*" {
		t.Fatalf("expected overridden pattern, got %s", cfg.Deploy.Pattern)
	}
	if cfg.Deploy.Delay != 0 {
		t.Fatalf("expected zero delay, got %s", cfg.Deploy.Delay)
	}
	// base_path not set in the file, so the default must survive.
	if cfg.Deploy.BasePath != config.DefaultBasePath {
		t.Fatalf("expected default base path, got %s", cfg.Deploy.BasePath)
	}
}

func TestNegativeDelayRejected(t *testing.T) {
	t.Parallel()
	course := t.TempDir()
	raw := "deploy:\n  delay_seconds: -1\n"
	if err := os.WriteFile(filepath.Join(course, "mpt.yml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(course); err == nil {
		t.Fatal("expected error for negative delay")
	}
}
