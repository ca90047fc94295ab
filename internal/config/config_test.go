package config

import (
	"io"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("PERFPLAYGROUND_ROUTE", "")
	t.Setenv("PERFPLAYGROUND_MAX_LOGS", "")
	t.Setenv("PERFPLAYGROUND_BASE_PATH", "")
	t.Setenv("PERFPLAYGROUND_THEME", "")
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Route != RouteUnoptimized || cfg.MaxLogs != 50 || cfg.InitialRecords != 3 || cfg.Theme != ThemeDark {
		t.Fatalf("defaults: %s", cfg)
	}
	if got := cfg.Location(RouteOptimized); got != "/react-performance-playground/optimized" {
		t.Fatalf("location: %s", got)
	}
	if got := cfg.Location(RouteUnoptimized); got != "/react-performance-playground/" {
		t.Fatalf("root location: %s", got)
	}
}

func TestParseFlagsAndBounds(t *testing.T) {
	cfg, err := Parse([]string{"-route", "optimized", "-max-logs", "0", "-initial-records", "-2", "-base-path", "demo/", "-theme", "LIGHT"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Route != RouteOptimized {
		t.Fatalf("route: %s", cfg.Route)
	}
	if cfg.MaxLogs != 1 || cfg.InitialRecords != 0 {
		t.Fatalf("bounds: max=%d initial=%d", cfg.MaxLogs, cfg.InitialRecords)
	}
	if cfg.BasePath != "/demo" || cfg.Theme != ThemeLight {
		t.Fatalf("base=%s theme=%s", cfg.BasePath, cfg.Theme)
	}
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("PERFPLAYGROUND_ROUTE", "/optimized")
	t.Setenv("PERFPLAYGROUND_MAX_LOGS", "12")
	t.Setenv("PERFPLAYGROUND_BASE_PATH", "/")
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Route != RouteOptimized || cfg.MaxLogs != 12 || cfg.BasePath != "" {
		t.Fatalf("env: %s", cfg)
	}
	if got := cfg.Location(RouteUnoptimized); got != "/" {
		t.Fatalf("location without base: %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]string{"-route", "/nowhere"}, io.Discard); err == nil {
		t.Fatalf("expected route error")
	}
	if _, err := Parse([]string{"-theme", "neon"}, io.Discard); err == nil {
		t.Fatalf("expected theme error")
	}
	if _, err := Parse([]string{"-bogus"}, io.Discard); err == nil {
		t.Fatalf("expected flag error")
	}
}
