package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const (
	RouteUnoptimized = "/"
	RouteOptimized   = "/optimized"
)

type Config struct {
	Route            string
	BasePath         string
	MaxLogs          int
	InitialRecords   int
	Theme            Theme
	ConsoleCollapsed bool
	ShowVersion      bool
}

// Load reads .env (if present), then flags from os.Args.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse(os.Args[1:], os.Stderr)
}

// Parse builds a Config from args, using environment variables as defaults.
func Parse(args []string, out io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("perfplayground", flag.ContinueOnError)
	fs.SetOutput(out)

	route := ""
	fs.StringVar(&route, "route", getenvDefault("PERFPLAYGROUND_ROUTE", RouteUnoptimized), "start route: / | /optimized (or unoptimized|optimized)")
	fs.StringVar(&cfg.BasePath, "base-path", getenvDefault("PERFPLAYGROUND_BASE_PATH", "/react-performance-playground"), "base path shown in front of routes")
	fs.IntVar(&cfg.MaxLogs, "max-logs", getenvDefaultInt("PERFPLAYGROUND_MAX_LOGS", 50), "console entries to keep (min 1)")
	fs.IntVar(&cfg.InitialRecords, "initial-records", 3, "records each page starts with")
	theme := ""
	fs.StringVar(&theme, "theme", getenvDefault("PERFPLAYGROUND_THEME", string(ThemeDark)), "theme: dark|light")
	fs.BoolVar(&cfg.ConsoleCollapsed, "console-collapsed", false, "start with the console collapsed")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	r, err := NormalizeRoute(route)
	if err != nil {
		return nil, err
	}
	cfg.Route = r

	switch Theme(strings.ToLower(theme)) {
	case ThemeDark, ThemeLight:
		cfg.Theme = Theme(strings.ToLower(theme))
	default:
		return nil, fmt.Errorf("unknown theme %q (want dark|light)", theme)
	}

	cfg.BasePath = "/" + strings.Trim(cfg.BasePath, "/")
	if cfg.BasePath == "/" {
		cfg.BasePath = ""
	}
	if cfg.MaxLogs < 1 {
		cfg.MaxLogs = 1
	}
	if cfg.InitialRecords < 0 {
		cfg.InitialRecords = 0
	}
	return cfg, nil
}

// NormalizeRoute accepts a route path or a page name.
func NormalizeRoute(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "/", "unoptimized":
		return RouteUnoptimized, nil
	case "/optimized", "optimized":
		return RouteOptimized, nil
	}
	return "", fmt.Errorf("unknown route %q", s)
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Location is the full displayed path for a route.
func (c *Config) Location(route string) string {
	if route == RouteUnoptimized {
		return c.BasePath + "/"
	}
	return c.BasePath + route
}

func (c *Config) String() string {
	return fmt.Sprintf("route=%s base=%s max-logs=%d initial=%d theme=%s", c.Route, c.BasePath, c.MaxLogs, c.InitialRecords, c.Theme)
}
