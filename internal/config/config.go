package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all GitSift settings. Values come from, in increasing
// precedence: built-in defaults, the config file, GITSIFT_* environment
// variables, then command-line flags applied by the caller.
type Config struct {
	// Where history comes from: "auto" picks local for paths and
	// github for owner/repo arguments.
	Source string `yaml:"source" mapstructure:"source"`

	History  HistoryConfig  `yaml:"history" mapstructure:"history"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	GitHub   GitHubConfig   `yaml:"github" mapstructure:"github"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// HistoryConfig bounds how much history is analyzed. Zero means
// unbounded: the whole log, however old.
type HistoryConfig struct {
	Days       int `yaml:"days" mapstructure:"days"`
	MaxCommits int `yaml:"max_commits" mapstructure:"max_commits"`
}

// AnalysisConfig carries the per-analyzer tunables.
type AnalysisConfig struct {
	HotspotTop         int `yaml:"hotspot_top" mapstructure:"hotspot_top"`
	CouplingTop        int `yaml:"coupling_top" mapstructure:"coupling_top"`
	CouplingMinCommits int `yaml:"coupling_min_commits" mapstructure:"coupling_min_commits"`
	MaxFilesPerCommit  int `yaml:"max_files_per_commit" mapstructure:"max_files_per_commit"`
	AuthorTop          int `yaml:"author_top" mapstructure:"author_top"`
	SiloMinCommits     int `yaml:"silo_min_commits" mapstructure:"silo_min_commits"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // text, markdown, mermaid, json, yaml
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Path    string        `yaml:"path" mapstructure:"path"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type GitHubConfig struct {
	Token     string `yaml:"token,omitempty" mapstructure:"token"`
	RateLimit int    `yaml:"rate_limit" mapstructure:"rate_limit"` // Requests per second
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: "auto",
		Analysis: AnalysisConfig{
			HotspotTop:         20,
			CouplingTop:        20,
			CouplingMinCommits: 3,
			MaxFilesPerCommit:  30,
			AuthorTop:          15,
			SiloMinCommits:     2,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "~/.gitsift/cache.db",
			TTL:     24 * time.Hour,
		},
		GitHub: GitHubConfig{
			RateLimit: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given file, or from the standard
// search path (.gitsift/, ., ~/.gitsift) when path is empty. A missing
// config file is fine unless it was named explicitly.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("GITSIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".gitsift")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gitsift"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file found, defaults apply.
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.Cache.Path = expandPath(cfg.Cache.Path)

	return cfg, nil
}

// setDefaults registers every key individually so AutomaticEnv can bind
// GITSIFT_SECTION_KEY variables to the nested fields.
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("source", def.Source)
	v.SetDefault("history.days", def.History.Days)
	v.SetDefault("history.max_commits", def.History.MaxCommits)
	v.SetDefault("analysis.hotspot_top", def.Analysis.HotspotTop)
	v.SetDefault("analysis.coupling_top", def.Analysis.CouplingTop)
	v.SetDefault("analysis.coupling_min_commits", def.Analysis.CouplingMinCommits)
	v.SetDefault("analysis.max_files_per_commit", def.Analysis.MaxFilesPerCommit)
	v.SetDefault("analysis.author_top", def.Analysis.AuthorTop)
	v.SetDefault("analysis.silo_min_commits", def.Analysis.SiloMinCommits)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("cache.enabled", def.Cache.Enabled)
	v.SetDefault("cache.path", def.Cache.Path)
	v.SetDefault("cache.ttl", def.Cache.TTL.String())
	v.SetDefault("github.token", "")
	v.SetDefault("github.rate_limit", def.GitHub.RateLimit)
	v.SetDefault("log.level", def.Log.Level)
}

// loadEnvFiles loads .env files without overriding variables that are
// already set in the environment.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeEnv := filepath.Join(home, ".gitsift", ".env")
		if _, err := os.Stat(homeEnv); err == nil {
			_ = godotenv.Load(homeEnv)
		}
	}
}

// applyEnvOverrides picks up the conventional GitHub token variables,
// which live outside the GITSIFT_ prefix.
func applyEnvOverrides(cfg *Config) {
	if cfg.GitHub.Token == "" {
		if token := os.Getenv("GITHUB_TOKEN"); token != "" {
			cfg.GitHub.Token = token
		} else if token := os.Getenv("GH_TOKEN"); token != "" {
			cfg.GitHub.Token = token
		}
	}
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("source", c.Source)
	v.Set("history", c.History)
	v.Set("analysis", c.Analysis)
	v.Set("output", c.Output)
	v.Set("cache", c.Cache)
	v.Set("github", c.GitHub)
	v.Set("log", c.Log)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultPath returns the user-level config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".gitsift", "config.yaml"), nil
}
