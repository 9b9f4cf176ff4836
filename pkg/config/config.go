/*
Package config manages the TOML config for wordprob.

The file has one section per routine plus the IPC server limits:

	[estimator]
	workers = 1
	strict_shape = false

	[buckets]
	mode = "literal"

	[sampler]
	max_rounds = 64
	offset_mode = "individual"
	deterministic = false
	seed = 0

	[server]
	max_population = 100000
	max_substring_size = 256

Sections or keys that fail to parse fall back to their defaults.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordprob/internal/utils"
	"github.com/bastiangx/wordprob/pkg/stats"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Estimator EstimatorConfig `toml:"estimator"`
	Buckets   BucketsConfig   `toml:"buckets"`
	Sampler   SamplerConfig   `toml:"sampler"`
	Server    ServerConfig    `toml:"server"`
}

// EstimatorConfig tunes the next-word estimator.
type EstimatorConfig struct {
	Workers     int  `toml:"workers"`
	StrictShape bool `toml:"strict_shape"`
}

// BucketsConfig selects the length-bucket counting mode.
type BucketsConfig struct {
	Mode string `toml:"mode"`
}

// SamplerConfig tunes the substring sampler.
type SamplerConfig struct {
	MaxRounds     int    `toml:"max_rounds"`
	OffsetMode    string `toml:"offset_mode"`
	Deterministic bool   `toml:"deterministic"`
	Seed          int64  `toml:"seed"`
}

// ServerConfig has IPC request limits.
type ServerConfig struct {
	MaxPopulation    int `toml:"max_population"`
	MaxSubstringSize int `toml:"max_substring_size"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Estimator: EstimatorConfig{
			Workers:     1,
			StrictShape: false,
		},
		Buckets: BucketsConfig{
			Mode: stats.BucketLiteral.String(),
		},
		Sampler: SamplerConfig{
			MaxRounds:  stats.DefaultMaxRounds,
			OffsetMode: stats.OffsetByIndividual.String(),
		},
		Server: ServerConfig{
			MaxPopulation:    100000,
			MaxSubstringSize: 256,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordprob
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		primaryPath := filepath.Join(homeDir, ".config", "wordprob")
		if result := utils.CheckDirStatus(primaryPath); result.Writable {
			return primaryPath, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	execDir, err := utils.ExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordprob/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that does not decode as a whole
// is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath)
	}
	if err := cfg.Validate(); err != nil {
		log.Warnf("Invalid values in %s: %v. Using defaults for them.", configPath, err)
		cfg.fixInvalid()
	}
	return cfg, nil
}

// tryPartialParse keeps whatever keys decode with the right type.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	if section, ok := utils.ExtractSection(raw, "estimator"); ok {
		if val, ok := utils.ExtractInt(section, "workers"); ok {
			cfg.Estimator.Workers = val
		}
		if val, ok := utils.ExtractBool(section, "strict_shape"); ok {
			cfg.Estimator.StrictShape = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "buckets"); ok {
		if val, ok := utils.ExtractString(section, "mode"); ok {
			cfg.Buckets.Mode = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "sampler"); ok {
		if val, ok := utils.ExtractInt(section, "max_rounds"); ok {
			cfg.Sampler.MaxRounds = val
		}
		if val, ok := utils.ExtractString(section, "offset_mode"); ok {
			cfg.Sampler.OffsetMode = val
		}
		if val, ok := utils.ExtractBool(section, "deterministic"); ok {
			cfg.Sampler.Deterministic = val
		}
		if val, ok := utils.ExtractInt64(section, "seed"); ok {
			cfg.Sampler.Seed = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		if val, ok := utils.ExtractInt(section, "max_population"); ok {
			cfg.Server.MaxPopulation = val
		}
		if val, ok := utils.ExtractInt(section, "max_substring_size"); ok {
			cfg.Server.MaxSubstringSize = val
		}
	}
	cfg.fixInvalid()
	return cfg, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Validate reports the first value outside its accepted range.
func (c *Config) Validate() error {
	if c.Estimator.Workers < 1 {
		return fmt.Errorf("estimator.workers must be at least 1, got %d", c.Estimator.Workers)
	}
	if _, err := stats.ParseBucketMode(c.Buckets.Mode); err != nil {
		return err
	}
	if c.Sampler.MaxRounds < 1 {
		return fmt.Errorf("sampler.max_rounds must be at least 1, got %d", c.Sampler.MaxRounds)
	}
	if _, err := stats.ParseOffsetMode(c.Sampler.OffsetMode); err != nil {
		return err
	}
	if c.Server.MaxPopulation < 1 || c.Server.MaxSubstringSize < 1 {
		return fmt.Errorf("server limits must be positive")
	}
	return nil
}

// fixInvalid resets every out-of-range value to its default.
func (c *Config) fixInvalid() {
	def := DefaultConfig()
	if c.Estimator.Workers < 1 {
		c.Estimator.Workers = def.Estimator.Workers
	}
	if _, err := stats.ParseBucketMode(c.Buckets.Mode); err != nil {
		c.Buckets.Mode = def.Buckets.Mode
	}
	if c.Sampler.MaxRounds < 1 {
		c.Sampler.MaxRounds = def.Sampler.MaxRounds
	}
	if _, err := stats.ParseOffsetMode(c.Sampler.OffsetMode); err != nil {
		c.Sampler.OffsetMode = def.Sampler.OffsetMode
	}
	if c.Server.MaxPopulation < 1 {
		c.Server.MaxPopulation = def.Server.MaxPopulation
	}
	if c.Server.MaxSubstringSize < 1 {
		c.Server.MaxSubstringSize = def.Server.MaxSubstringSize
	}
}

// EstimatorOptions returns the stats options for NextWordDistribution.
func (c *Config) EstimatorOptions() []stats.Option {
	return []stats.Option{
		stats.WithWorkers(c.Estimator.Workers),
		stats.WithStrictShape(c.Estimator.StrictShape),
	}
}

// BucketOptions returns the stats options for ExpectedLengthDistribution.
func (c *Config) BucketOptions() []stats.Option {
	mode, err := stats.ParseBucketMode(c.Buckets.Mode)
	if err != nil {
		mode = stats.BucketLiteral
	}
	return []stats.Option{stats.WithBucketMode(mode)}
}

// SamplerOptions returns the stats options for SubstringFrequencies.
// A deterministic config gets a source seeded from Sampler.Seed.
func (c *Config) SamplerOptions() []stats.Option {
	mode, err := stats.ParseOffsetMode(c.Sampler.OffsetMode)
	if err != nil {
		mode = stats.OffsetByIndividual
	}
	opts := []stats.Option{
		stats.WithMaxRounds(c.Sampler.MaxRounds),
		stats.WithOffsetMode(mode),
	}
	if c.Sampler.Deterministic {
		opts = append(opts, stats.WithSource(stats.NewSource(uint64(c.Sampler.Seed))))
	}
	return opts
}
