package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"runtime"
	"strings"

	internal "github.com/ZanzyTHEbar/g2x/g2x"
	"github.com/ZanzyTHEbar/g2x/g2x/resolve"
	"github.com/ZanzyTHEbar/g2x/g2x/similarity"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Resolver ResolverConfig `mapstructure:"resolver"`
	Listing  ListingConfig  `mapstructure:"listing"`
	Batch    BatchConfig    `mapstructure:"batch"`
	Log      LogConfig      `mapstructure:"log"`
}

// ResolverConfig stores the fuzzy strategy and engine tuning.
type ResolverConfig struct {
	Algorithm          string            `mapstructure:"algorithm"`
	Strategy           string            `mapstructure:"strategy"`
	Plain              bool              `mapstructure:"plain"`
	Threshold          float64           `mapstructure:"threshold"`
	ConfidenceGap      float64           `mapstructure:"confidenceGap"`
	LowerThreshold     float64           `mapstructure:"lowerThreshold"`
	Weights            resolve.Weights   `mapstructure:"weights"`
	CandidateCap       int               `mapstructure:"candidateCap"`
	EarlyExitTop       int               `mapstructure:"earlyExitTop"`
	BordaTopK          int               `mapstructure:"bordaTopK"`
	MinConsensusPoints int               `mapstructure:"minConsensusPoints"`
	ContainmentFactor  float64           `mapstructure:"containmentFactor"`
	Synonyms           map[string]string `mapstructure:"synonyms"`
}

// ListingConfig stores where the file listing comes from and what to skip in it.
type ListingConfig struct {
	Path   string   `mapstructure:"path"`
	Ignore []string `mapstructure:"ignore"`
}

// BatchConfig stores batch resolution settings.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults are used instead.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix(internal.DefaultAppName)
	v.AutomaticEnv()                                   // Read in environment variables that match
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // resolver.threshold becomes G2X_RESOLVER_THRESHOLD

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := resolve.DefaultOptions()

	v.SetDefault("resolver.algorithm", similarity.AlgorithmJaroWinkler+"+"+similarity.AlgorithmTokenOverlap)
	v.SetDefault("resolver.strategy", string(resolve.StrategyConsensus))
	v.SetDefault("resolver.plain", false)
	v.SetDefault("resolver.threshold", d.Threshold)
	v.SetDefault("resolver.confidenceGap", d.ConfidenceGap)
	v.SetDefault("resolver.lowerThreshold", d.LowerThreshold)
	v.SetDefault("resolver.weights.path", d.Weights.Path)
	v.SetDefault("resolver.weights.album", d.Weights.Album)
	v.SetDefault("resolver.weights.file", d.Weights.File)
	v.SetDefault("resolver.candidateCap", d.CandidateCap)
	v.SetDefault("resolver.earlyExitTop", d.EarlyExitTop)
	v.SetDefault("resolver.bordaTopK", d.BordaTopK)
	v.SetDefault("resolver.minConsensusPoints", d.MinConsensusPoints)
	v.SetDefault("resolver.containmentFactor", d.ContainmentFactor)

	v.SetDefault("listing.path", "")
	v.SetDefault("listing.ignore", internal.DefaultIgnorePattern)

	v.SetDefault("batch.workers", min(max(runtime.NumCPU(), 2), 16))
	v.SetDefault("log.level", "info")
}

// Validate rejects values the CLI cannot run with. Engine thresholds are not
// range-checked; a poor match is reported downstream rather than refused here.
func (c *Config) Validate() error {
	if _, err := resolve.ParseStrategyType(c.Resolver.Strategy); err != nil {
		return fmt.Errorf("%w: resolver.strategy: %w", ErrInvalidConfig, err)
	}
	for _, name := range strings.Split(c.Resolver.Algorithm, "+") {
		if _, err := similarity.ByName(name); err != nil {
			return fmt.Errorf("%w: resolver.algorithm: %w", ErrInvalidConfig, err)
		}
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be positive, got %d", ErrInvalidConfig, c.Batch.Workers)
	}
	return nil
}

// FuzzyStrategy builds the resolver strategy. With plain set, a single strategy
// carries no params and only the variant matcher runs.
func (rc ResolverConfig) FuzzyStrategy() resolve.Strategy {
	st, err := resolve.ParseStrategyType(rc.Strategy)
	if err != nil {
		st = resolve.StrategyConsensus
	}
	s := resolve.Strategy{Algorithm: rc.Algorithm, Type: st}
	if rc.Plain && st == resolve.StrategySingle {
		return s
	}
	weights := rc.Weights
	s.Params = &resolve.Params{
		Threshold:          resolve.Float(rc.Threshold),
		ConfidenceGap:      resolve.Float(rc.ConfidenceGap),
		LowerThreshold:     resolve.Float(rc.LowerThreshold),
		Weights:            &weights,
		CandidateCap:       resolve.Int(rc.CandidateCap),
		EarlyExitTop:       resolve.Int(rc.EarlyExitTop),
		BordaTopK:          resolve.Int(rc.BordaTopK),
		MinConsensusPoints: resolve.Int(rc.MinConsensusPoints),
	}
	return s
}

// Options returns the base engine options: defaults plus the configured
// containment factor and extra synonyms.
func (rc ResolverConfig) Options() resolve.Options {
	opts := resolve.DefaultOptions()
	if rc.ContainmentFactor > 0 {
		opts.ContainmentFactor = rc.ContainmentFactor
	}
	extra := make(map[string]string, len(rc.Synonyms))
	for k, v := range rc.Synonyms {
		extra[strings.ToLower(k)] = v
	}
	maps.Copy(opts.Synonyms, extra)
	return opts
}
