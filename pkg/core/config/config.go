package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
	mdwerrors "github.com/msto63/strvec/foundation/core/errors"
	"github.com/msto63/strvec/foundation/core/log"
	"github.com/msto63/strvec/foundation/utils/stringx"
)

// Environment variables read by LoadFromEnv and ApplyEnv
const (
	EnvConfig         = "STRVEC_CONFIG"
	EnvLogLevel       = "STRVEC_LOG_LEVEL"
	EnvLogFormat      = "STRVEC_LOG_FORMAT"
	EnvMaxBufferBytes = "STRVEC_MAX_BUFFER_BYTES"
	EnvOutput         = "STRVEC_OUTPUT"
	EnvInputEncoding  = "STRVEC_INPUT_ENCODING"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Engine  EngineConfig  `toml:"engine" yaml:"engine"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Input   InputConfig   `toml:"input" yaml:"input"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// EngineConfig holds settings passed to the vector operations
type EngineConfig struct {
	MaxBufferBytes int  `toml:"max_buffer_bytes" yaml:"max_buffer_bytes"`
	StrictWarnings bool `toml:"strict_warnings" yaml:"strict_warnings"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format   string `toml:"format" yaml:"format"`
	Color    *bool  `toml:"color" yaml:"color"`
	NAString string `toml:"na_string" yaml:"na_string"`
}

// InputConfig holds input document settings
type InputConfig struct {
	Encoding string `toml:"encoding" yaml:"encoding"`
}

// Output formats accepted in [output] format
var OutputFormats = []string{"text", "json", "yaml"}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows
// the file extension (.yaml/.yml for YAML, anything else TOML).
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.New("config file not found: " + path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	format := detectFormat(path)
	switch format {
	case "yaml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("format", format)
	}

	cfg.applyDefaults()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by STRVEC_CONFIG, or the first file
// found in the default locations. Without any file it returns the
// defaults with environment overrides applied.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths returns the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
		"./config.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "strvec", "config.toml"))
	}
	return paths
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "strvec"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Engine.MaxBufferBytes == 0 {
		c.Engine.MaxBufferBytes = stringx.DefaultMaxBufferBytes
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Output.NAString == "" {
		c.Output.NAString = "NA"
	}

	if c.Input.Encoding == "" {
		c.Input.Encoding = "utf-8"
	}
}

// ApplyEnv overrides values from STRVEC_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvInputEncoding); v != "" {
		c.Input.Encoding = v
	}
	if v := os.Getenv(EnvMaxBufferBytes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return mdwerrors.ConfigError(EnvMaxBufferBytes, v, "not an integer")
		}
		c.Engine.MaxBufferBytes = n
	}
	return nil
}

// Validate checks levels, formats and limits
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return mdwerrors.ConfigError("general.log_level", c.General.LogLevel, "unknown log level")
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return mdwerrors.ConfigError("general.log_format", c.General.LogFormat, "unknown log format")
	}
	if c.Engine.MaxBufferBytes <= 0 {
		return mdwerrors.ConfigError("engine.max_buffer_bytes", c.Engine.MaxBufferBytes, "must be positive")
	}
	if !validOutputFormat(c.Output.Format) {
		return mdwerrors.ConfigError("output.format", c.Output.Format, "must be one of "+strings.Join(OutputFormats, ", "))
	}
	return nil
}

// ColorEnabled reports whether colored output is configured
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

func validOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
