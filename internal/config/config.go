// Package config resolves LearnGrid settings from defaults, an optional
// YAML file and LEARNGRID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/learngrid/learngrid/internal/selfupdate"
)

const (
	// DefaultAPIBaseURL is where the LearnGrid backend listens by default.
	DefaultAPIBaseURL = "http://127.0.0.1:5000"

	// DefaultConcurrency bounds parallel quiz fetches during export.
	DefaultConcurrency = 4

	// DefaultReleaseRepo is the GitHub repository `version --check` asks
	// for releases.
	DefaultReleaseRepo = selfupdate.DefaultRepo
)

var (
	ErrInvalidURL     = errors.New("api url must be an absolute http or https URL")
	ErrInvalidTimeout = errors.New("timeout must be a non-negative duration")
)

// Config holds client configuration.
type Config struct {
	// APIBaseURL is the scheme and host of the LearnGrid API.
	APIBaseURL string

	// Timeout bounds a single API request. Zero means no timeout.
	Timeout time.Duration

	// LogFile receives structured logs. Empty disables logging.
	LogFile string

	// Concurrency bounds parallel quiz fetches in `learngrid roadmap --quizzes`.
	Concurrency int

	// ReleaseRepo is the owner/name of the GitHub repository publishing
	// releases.
	ReleaseRepo string
}

type fileConfig struct {
	APIURL      string `yaml:"api_url"`
	Timeout     string `yaml:"timeout"`
	LogFile     string `yaml:"log_file"`
	Concurrency int    `yaml:"concurrency"`
	ReleaseRepo string `yaml:"release_repo"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:  DefaultAPIBaseURL,
		Concurrency: DefaultConcurrency,
		ReleaseRepo: DefaultReleaseRepo,
	}
}

// DefaultPath returns the config file used when none is given:
// LEARNGRID_CONFIG, else learngrid/config.yaml under the user config dir.
func DefaultPath() string {
	if p := os.Getenv("LEARNGRID_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "learngrid", "config.yaml")
}

// Load builds a Config from defaults, the YAML file at path and the
// environment, in that order of precedence. An explicit path must exist;
// the default path is optional.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.applyFile(path, explicit); err != nil {
			return cfg, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.APIURL != "" {
		c.APIBaseURL = fc.APIURL
	}
	if fc.Timeout != "" {
		d, err := parseTimeout(fc.Timeout)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		c.Timeout = d
	}
	if fc.LogFile != "" {
		c.LogFile = fc.LogFile
	}
	if fc.Concurrency > 0 {
		c.Concurrency = fc.Concurrency
	}
	if fc.ReleaseRepo != "" {
		c.ReleaseRepo = fc.ReleaseRepo
	}
	return nil
}

func (c *Config) applyEnv() error {
	if u := os.Getenv("LEARNGRID_API_URL"); u != "" {
		c.APIBaseURL = u
	}
	if t := os.Getenv("LEARNGRID_TIMEOUT"); t != "" {
		d, err := parseTimeout(t)
		if err != nil {
			return fmt.Errorf("LEARNGRID_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if f := os.Getenv("LEARNGRID_LOG_FILE"); f != "" {
		c.LogFile = f
	}
	if r := os.Getenv("LEARNGRID_RELEASE_REPO"); r != "" {
		c.ReleaseRepo = r
	}
	return nil
}

func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
	}
	return d, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, c.APIBaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if _, _, err := selfupdate.ParseRepo(c.ReleaseRepo); err != nil {
		return err
	}
	return nil
}
