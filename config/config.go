package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full run configuration. Values come from defaults, an
// optional mindmeld.yaml in the working directory, and MINDMELD_* env vars,
// in that order; command-line flags override on top.
type Config struct {
	Rounds      int     `mapstructure:"rounds"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Seed        int64   `mapstructure:"seed"`
	PromptDir   string  `mapstructure:"prompt_dir"`
	LogDir      string  `mapstructure:"log_dir"`

	Player1 Player `mapstructure:"player1"`
	Player2 Player `mapstructure:"player2"`

	Elo EloConfig `mapstructure:"elo"`
}

// Player configures one contestant.
type Player struct {
	Name   string `mapstructure:"name"`
	Model  string `mapstructure:"model"`
	Prompt string `mapstructure:"prompt"` // system prompt file name
}

// EloConfig controls the post-match rating report.
type EloConfig struct {
	Start float64 `mapstructure:"start"`
	K     float64 `mapstructure:"k"`
}

// Load reads the configuration. A missing config file is fine; defaults and
// environment cover everything.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("rounds", 1)
	v.SetDefault("temperature", 0.0)
	v.SetDefault("max_tokens", 0) // 0 = per-provider default
	v.SetDefault("seed", 0)
	v.SetDefault("prompt_dir", "system_prompts")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("player1.name", "Player 1")
	v.SetDefault("player1.model", "llama31_q5")
	v.SetDefault("player1.prompt", "default")
	v.SetDefault("player2.name", "Player 2")
	v.SetDefault("player2.model", "llama31_q5")
	v.SetDefault("player2.prompt", "default")
	v.SetDefault("elo.start", 1500.0)
	v.SetDefault("elo.k", 24.0)

	v.SetEnvPrefix("MINDMELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("mindmeld")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations no match can run with.
func (c *Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be in [0, 1], got %g", c.Temperature)
	}
	if c.Player1.Name == c.Player2.Name {
		return fmt.Errorf("players must have distinct names, both are %q", c.Player1.Name)
	}
	return nil
}
