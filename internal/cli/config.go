package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded on startup when present
const DefaultEnvFile = ".env"

// Output and log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

var errInvalidFormat = errors.New("format must be text or json")

// Config holds CLI configuration
type Config struct {
	Output    string
	LogFormat string
	Verbose   bool
	Seed      string // Empty means unseeded
	Name      string
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		Output:    getEnvOrDefault("BATTLESHIP_OUTPUT", FormatText),
		LogFormat: getEnvOrDefault("BATTLESHIP_LOG_FORMAT", FormatText),
		Verbose:   false,
		Seed:      os.Getenv("BATTLESHIP_SEED"),
		Name:      os.Getenv("BATTLESHIP_NAME"),
	}
}

// Validate checks the format settings
func (c *Config) Validate() error {
	if !validFormat(c.Output) {
		return fmt.Errorf("output %q: %w", c.Output, errInvalidFormat)
	}
	if !validFormat(c.LogFormat) {
		return fmt.Errorf("log format %q: %w", c.LogFormat, errInvalidFormat)
	}
	if _, err := c.SeedValue(); err != nil {
		return err
	}
	return nil
}

// SeedValue parses the configured seed, returning nil when none is set
func (c *Config) SeedValue() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
	}
	return &seed, nil
}

// loadEnvFile populates the environment from an env file if one exists.
// Variables already set in the environment win.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil // No env file is fine
		}
		return err
	}
	return godotenv.Load(path)
}

func validFormat(format string) bool {
	return format == FormatText || format == FormatJSON
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
