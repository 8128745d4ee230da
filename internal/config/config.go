package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/rselect/internal/prompt"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config represents the rselect configuration file.
type Config struct {
	Prompt PromptSettings `toml:"prompt" yaml:"prompt"`
	Theme  ThemeSettings  `toml:"theme" yaml:"theme"`
	Log    LogSettings    `toml:"log" yaml:"log"`
}

// PromptSettings holds the select prompt defaults.
type PromptSettings struct {
	PageSize    int    `toml:"page_size" yaml:"page_size"`
	VimMode     bool   `toml:"vim_mode" yaml:"vim_mode"`
	HelpMessage string `toml:"help_message" yaml:"help_message"`
	HideHelp    bool   `toml:"hide_help" yaml:"hide_help"`
	Filter      string `toml:"filter" yaml:"filter"`
}

// ThemeSettings holds color names understood by tcell.
type ThemeSettings struct {
	PromptFg    string `toml:"prompt_fg" yaml:"prompt_fg"`
	SelectionFg string `toml:"selection_fg" yaml:"selection_fg"`
	SelectionBg string `toml:"selection_bg" yaml:"selection_bg"`
	HelpFg      string `toml:"help_fg" yaml:"help_fg"`
	AnswerFg    string `toml:"answer_fg" yaml:"answer_fg"`
}

// LogSettings configures the debug log. An empty file disables logging.
type LogSettings struct {
	File  string `toml:"file" yaml:"file"`
	Level string `toml:"level" yaml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptSettings{
			PageSize:    prompt.DefaultPageSize,
			VimMode:     prompt.DefaultVimMode,
			HelpMessage: prompt.DefaultHelpMessage,
			Filter:      prompt.FilterSubstring,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// DefaultPath returns the location of the user's config file.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "rselect", "config.toml")
}

// Load reads the config at path. When explicit is false a missing file is not
// an error and yields DefaultConfig.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ".yml")
// on top of DefaultConfig and validates the result.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the prompt cannot work with.
func (c *Config) Validate() error {
	if c.Prompt.PageSize < 1 {
		return fmt.Errorf("%w: page_size must be at least 1, got %d", prompt.ErrInvalidConfiguration, c.Prompt.PageSize)
	}
	if _, err := prompt.FilterByName(c.Prompt.Filter); err != nil {
		return err
	}
	return nil
}

// Apply copies the prompt settings onto s.
func (c *Config) Apply(s prompt.Select) (prompt.Select, error) {
	filter, err := prompt.FilterByName(c.Prompt.Filter)
	if err != nil {
		return s, err
	}
	s = s.WithPageSize(c.Prompt.PageSize).
		WithVimMode(c.Prompt.VimMode).
		WithFilter(filter)
	if c.Prompt.HideHelp {
		s = s.WithoutHelpMessage()
	} else if c.Prompt.HelpMessage != "" {
		s = s.WithHelpMessage(c.Prompt.HelpMessage)
	}
	return s, nil
}
