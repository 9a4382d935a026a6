package config

import (
	"errors"
	"flag"
	"fmt"
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

type Config struct {
	APIBase     string
	TimeoutSec  int
	Theme       Theme
	View        string
	Entity      string
	PageLimit   int
	ExportDir   string
	ShowVersion bool
}

func Load() (*Config, error) {
	// .env is optional; flags and real env always win
	_ = godotenv.Load()

	cfg := &Config{}

	fs := flag.NewFlagSet("inquest", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.APIBase, "api", getenvDefault("INQUEST_API_URL", "http://127.0.0.1:8000"), "base URL of the investigation API")
	fs.IntVar(&cfg.TimeoutSec, "timeout-sec", getenvDefaultInt("INQUEST_TIMEOUT_SEC", 30), "HTTP request timeout in seconds")
	theme := getenvDefault("INQUEST_THEME", string(ThemeDark))
	fs.StringVar(&theme, "theme", theme, "theme: dark|light")
	fs.StringVar(&cfg.View, "view", "", "initial view: home|search|summary|storages|flow|trace|between|reports|ask")
	fs.StringVar(&cfg.Entity, "entity", "", "initial entity id")
	fs.IntVar(&cfg.PageLimit, "page-limit", getenvDefaultInt("INQUEST_PAGE_LIMIT", 200), "rows per page for paged views")
	fs.StringVar(&cfg.ExportDir, "export-dir", getenvDefault("INQUEST_EXPORT_DIR", "."), "directory for exported responses")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	switch Theme(theme) {
	case ThemeDark, ThemeLight:
		cfg.Theme = Theme(theme)
	default:
		return nil, fmt.Errorf("unknown theme %q", theme)
	}

	cfg.APIBase = strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if cfg.APIBase == "" {
		return nil, errors.New("--api base URL must not be empty")
	}
	if cfg.TimeoutSec <= 0 {
		cfg.TimeoutSec = 30
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 200
	}

	return cfg, nil
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

func (c *Config) String() string {
	return fmt.Sprintf("api=%s timeout=%ds theme=%s view=%s entity=%s limit=%d", c.APIBase, c.TimeoutSec, c.Theme, c.View, c.Entity, c.PageLimit)
}
