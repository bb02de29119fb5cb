// Package config loads treebench settings from defaults, an optional YAML
// file and TREEBENCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName      = ".treebench"
	configType      = "yaml"
	envPrefix       = "TREEBENCH"
	envKeySeparator = "_"
)

// Defaults.
const (
	DefaultN     = 100000
	DefaultSteps = 10
	DefaultSeed  = 0
)

// DefaultSubjects measured when none are configured.
var DefaultSubjects = []string{"rb", "treap"}

var (
	ErrInvalidN        = errors.New("n must be positive")
	ErrInvalidSteps    = errors.New("steps must be at least 2 and at most n")
	ErrNoSubjects      = errors.New("no subjects configured")
	ErrInvalidLogLevel = errors.New("unknown log level")
	ErrInvalidFormat   = errors.New("unknown log format")
)

// Config of a treebench run.
type Config struct {
	Workload Workload `mapstructure:"workload"`
	Logging  Logging  `mapstructure:"logging"`
}

// Workload shape.
type Workload struct {
	// N keys are inserted per step.
	N int `mapstructure:"n"`
	// Steps splits the run; step i deletes N/Steps*i keys before querying.
	Steps    int      `mapstructure:"steps"`
	Seed     uint64   `mapstructure:"seed"`
	Subjects []string `mapstructure:"subjects"`
}

// Logging of the trees under test.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load configuration. If configPath is empty, .treebench.yaml is searched in
// the working directory and $HOME; a missing file isn't an error.
// The result isn't validated: callers apply their own overrides first and
// then call Validate.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("workload.n", DefaultN)
	viperCfg.SetDefault("workload.steps", DefaultSteps)
	viperCfg.SetDefault("workload.seed", DefaultSeed)
	viperCfg.SetDefault("workload.subjects", DefaultSubjects)

	viperCfg.SetDefault("logging.level", "warn")
	viperCfg.SetDefault("logging.format", "text")
}

// Validate the configuration.
func (c *Config) Validate() error {
	if c.Workload.N <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidN, c.Workload.N)
	}
	if c.Workload.Steps < 2 || c.Workload.Steps > c.Workload.N {
		return fmt.Errorf("%w: %d", ErrInvalidSteps, c.Workload.Steps)
	}
	if len(c.Workload.Subjects) == 0 {
		return ErrNoSubjects
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Logging.Format)
	}
	return nil
}

func (l Logging) level() (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	return lv, nil
}

// Logger writing to w as configured.
func (l Logging) Logger(w io.Writer) *slog.Logger {
	lv, err := l.level()
	if err != nil {
		lv = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lv}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
