package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xyproto/randomstring"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors   = 10
	StepPeriod  = 1500 * time.Millisecond
	Addr        = ":8000"
	IDLength    = 8
	MaxSimTicks = 1 << 16
)

var AllowedOrigins = []string{
	"https://chatelain.li",
	"https://www.chatelain.li",
	"https://strategix.ch",
	"https://www.strategix.ch",
}

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	InstanceID     string        `yaml:"id"`
	TotalFloors    int           `yaml:"floors"`
	StepPeriod     time.Duration `yaml:"step_period"`
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	LogLevel       string        `yaml:"log_level"`
	LogFile        bool          `yaml:"log_file"`
}

func Default() Config {
	return Config{
		TotalFloors:    NumFloors,
		StepPeriod:     StepPeriod,
		Addr:           Addr,
		AllowedOrigins: append([]string(nil), AllowedOrigins...),
		LogLevel:       "info",
	}
}

// LoadFile overlays the YAML file at path on cfg. Keys missing from the file keep their value.
func LoadFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv overlays settings from the optional .env file at envPath and then from the process
// environment. A missing .env file is not an error.
func LoadEnv(cfg *Config, envPath string) error {
	vars := make(map[string]string)
	if envPath != "" {
		envFile, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			vars = envFile
		case errors.Is(err, os.ErrNotExist):
			slog.Debug("No env file", "path", envPath)
		default:
			return fmt.Errorf("read env file %s: %w", envPath, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	if v, ok := lookup("ELEVSIM_ID"); ok {
		cfg.InstanceID = v
	}
	if v, ok := lookup("ELEVSIM_FLOORS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ELEVSIM_FLOORS=%q", ErrInvalidConfig, v)
		}
		cfg.TotalFloors = n
	}
	if v, ok := lookup("ELEVSIM_STEP_PERIOD"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: ELEVSIM_STEP_PERIOD=%q", ErrInvalidConfig, v)
		}
		cfg.StepPeriod = d
	}
	// PORT is set by hosting platforms and loses to an explicit address.
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.Addr = ":" + v
	}
	if v, ok := lookup("ELEVSIM_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := lookup("ELEVSIM_ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup("ELEVSIM_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}

func (cfg *Config) Validate() error {
	if cfg.TotalFloors < 1 {
		return fmt.Errorf("%w: floors must be at least 1, got %d", ErrInvalidConfig, cfg.TotalFloors)
	}
	if cfg.StepPeriod <= 0 {
		return fmt.Errorf("%w: step period must be positive, got %s", ErrInvalidConfig, cfg.StepPeriod)
	}
	if cfg.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// EnsureID fills in a random instance ID if none was configured.
func (cfg *Config) EnsureID() {
	if cfg.InstanceID == "" {
		cfg.InstanceID = randomstring.EnglishFrequencyString(IDLength)
	}
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
