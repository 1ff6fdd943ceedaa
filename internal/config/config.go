package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all venture-case pipeline configuration.
type Config struct {
	Sources  SourceConfig
	LLM      LLMConfig
	Output   OutputConfig
	LogLevel string
}

// SourceConfig holds portfolio source locations and fetch settings.
type SourceConfig struct {
	EIPURLs      []string
	SETURLs      []string
	EIPLocalHTML string // fallback file when remote scraping yields nothing
	SETLocalHTML string
	HTTPTimeout  time.Duration
}

// LLMConfig holds relevance-classification settings.
type LLMConfig struct {
	APIKey     string
	Model      string
	Keywords   []string
	CharBudget int // serialized batch size cap, in characters
	Disabled   bool
}

// OutputConfig holds CSV export settings.
type OutputConfig struct {
	Path string
}

// DefaultKeywords is the energy relevance keyword set given to the classifier.
var DefaultKeywords = []string{"smart grid", "energy", "energy storage", "industrial efficiency"}

// Load reads configuration from environment variables with sensible defaults.
// A missing GEMINI_API_KEY is not an error here: the classifier degrades to
// pass-everything at run time.
func Load() Config {
	return Config{
		Sources: SourceConfig{
			EIPURLs:      getenvList("VENTURE_EIP_URLS", []string{"https://www.energyimpactpartners.com/_portfolio/"}),
			SETURLs:      getenvList("VENTURE_SET_URLS", []string{"https://www.setventures.com/portfolio/"}),
			EIPLocalHTML: os.Getenv("VENTURE_EIP_LOCAL_HTML"),
			SETLocalHTML: os.Getenv("VENTURE_SET_LOCAL_HTML"),
			HTTPTimeout:  getenvDuration("VENTURE_HTTP_TIMEOUT", 15*time.Second),
		},
		LLM: LLMConfig{
			APIKey:     os.Getenv("GEMINI_API_KEY"),
			Model:      getenv("VENTURE_GEMINI_MODEL", "gemini-3-flash-preview"),
			Keywords:   getenvList("VENTURE_ENERGY_KEYWORDS", DefaultKeywords),
			CharBudget: getenvInt("VENTURE_CHAR_BUDGET", 120000),
			Disabled:   getenvBool("VENTURE_DISABLE_LLM", false),
		},
		Output: OutputConfig{
			Path: getenv("VENTURE_OUTPUT", "hitachi_relevant_companies.csv"),
		},
		LogLevel: getenv("VENTURE_LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration for unusable values.
// All problems are reported at once.
func (c Config) Validate() error {
	var errs []error
	if len(c.Sources.EIPURLs) == 0 && c.Sources.EIPLocalHTML == "" {
		errs = append(errs, errors.New("no EIP source: set VENTURE_EIP_URLS or VENTURE_EIP_LOCAL_HTML"))
	}
	if len(c.Sources.SETURLs) == 0 && c.Sources.SETLocalHTML == "" {
		errs = append(errs, errors.New("no SET source: set VENTURE_SET_URLS or VENTURE_SET_LOCAL_HTML"))
	}
	if c.Sources.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http timeout must be positive, got %v", c.Sources.HTTPTimeout))
	}
	if c.LLM.CharBudget <= 0 {
		errs = append(errs, fmt.Errorf("char budget must be positive, got %d", c.LLM.CharBudget))
	}
	if len(c.LLM.Keywords) == 0 {
		errs = append(errs, errors.New("keyword set must not be empty"))
	}
	if c.Output.Path == "" {
		errs = append(errs, errors.New("output path must not be empty"))
	}
	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// getenvList splits a comma-separated env value, dropping empty elements.
func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
