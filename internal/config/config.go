// Package config provides configuration management for prettytext using
// Viper for loading from files, environment variables and command-line flags.
//
// The configuration is split into the site settings consumed by the render
// pipeline, the onebox enrichment client, the preview server and logging.
// Environment variables override file values with the PRETTYTEXT_ prefix.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/prettytext/internal/logging"
	"github.com/conneroisu/prettytext/internal/validation"
)

// Default values applied when a key is absent.
const (
	DefaultEmojiSet     = "twitter"
	DefaultMaxOneboxes  = 50
	DefaultOneboxDelay  = 150 * time.Millisecond
	DefaultBackoffDelay = 2000 * time.Millisecond
	DefaultTimeout      = 10 * time.Second
	DefaultPort         = 8080
	DefaultHost         = "localhost"
)

type Config struct {
	Site        SiteConfig    `yaml:"site" mapstructure:"site"`
	Onebox      OneboxConfig  `yaml:"onebox" mapstructure:"onebox"`
	Server      ServerConfig  `yaml:"server" mapstructure:"server"`
	Logging     LoggingConfig `yaml:"logging" mapstructure:"logging"`
	TargetFiles []string      `yaml:"-" mapstructure:"-"` // CLI arguments, not from config file
}

// SiteConfig holds the per-site settings the feature options callbacks read.
type SiteConfig struct {
	BaseURL                string            `yaml:"base_url" mapstructure:"base_url"`
	AllowedHrefSchemes     []string          `yaml:"allowed_href_schemes" mapstructure:"allowed_href_schemes"`
	AllowedIframes         []string          `yaml:"allowed_iframes" mapstructure:"allowed_iframes"`
	EnableEmoji            bool              `yaml:"enable_emoji" mapstructure:"enable_emoji"`
	EnableEmojiShortcuts   bool              `yaml:"enable_emoji_shortcuts" mapstructure:"enable_emoji_shortcuts"`
	InlineEmoji            bool              `yaml:"inline_emoji" mapstructure:"inline_emoji"`
	EmojiSet               string            `yaml:"emoji_set" mapstructure:"emoji_set"`
	CustomEmojiFile        string            `yaml:"custom_emoji_file" mapstructure:"custom_emoji_file"`
	CustomEmoji            map[string]string `yaml:"custom_emoji" mapstructure:"custom_emoji"`
	CustomEmojiTranslation map[string]string `yaml:"custom_emoji_translation" mapstructure:"custom_emoji_translation"`
	Features               FeaturesConfig    `yaml:"features" mapstructure:"features"`
	Sanitize               bool              `yaml:"sanitize" mapstructure:"sanitize"`
	MaxOneboxes            int               `yaml:"max_oneboxes" mapstructure:"max_oneboxes"`
	AcceptableCodeClasses  []string          `yaml:"acceptable_code_classes" mapstructure:"acceptable_code_classes"`
}

// FeaturesConfig names features explicitly switched on or off. Features not
// named keep their manifest default, which is enabled.
type FeaturesConfig struct {
	Enabled  []string `yaml:"enabled" mapstructure:"enabled"`
	Disabled []string `yaml:"disabled" mapstructure:"disabled"`
}

type OneboxConfig struct {
	Endpoint     string        `yaml:"endpoint" mapstructure:"endpoint"`
	Delay        time.Duration `yaml:"delay" mapstructure:"delay"`
	BackoffDelay time.Duration `yaml:"backoff_delay" mapstructure:"backoff_delay"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CachePath    string        `yaml:"cache_path" mapstructure:"cache_path"`
}

type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	Host           string   `yaml:"host" mapstructure:"host"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	Watch          []string `yaml:"watch" mapstructure:"watch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultAcceptableCodeClasses lists the fence languages accepted as
// lang-* classes when the site does not configure its own list.
var DefaultAcceptableCodeClasses = []string{
	"bash", "c", "cpp", "css", "diff", "go", "html", "java", "javascript",
	"json", "markdown", "plaintext", "python", "ruby", "rust", "sql", "text",
	"typescript", "xml", "yaml",
}

// Default returns the configuration used when no file or environment is
// present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg, func(string) bool { return false })
	return cfg
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle slices set via viper (workaround for viper slice handling)
	sliceKeys := map[string]*[]string{
		"site.allowed_href_schemes":    &config.Site.AllowedHrefSchemes,
		"site.allowed_iframes":         &config.Site.AllowedIframes,
		"site.acceptable_code_classes": &config.Site.AcceptableCodeClasses,
		"site.features.enabled":        &config.Site.Features.Enabled,
		"site.features.disabled":       &config.Site.Features.Disabled,
		"server.allowed_origins":       &config.Server.AllowedOrigins,
		"server.watch":                 &config.Server.Watch,
	}
	for key, dst := range sliceKeys {
		if viper.IsSet(key) && len(*dst) == 0 {
			*dst = viper.GetStringSlice(key)
		}
	}

	// Handle bools set via viper (workaround for viper bool handling)
	if viper.IsSet("site.enable_emoji") {
		config.Site.EnableEmoji = viper.GetBool("site.enable_emoji")
	}
	if viper.IsSet("site.sanitize") {
		config.Site.Sanitize = viper.GetBool("site.sanitize")
	}

	applyDefaults(&config, viper.IsSet)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults fills unset values. isSet reports whether a key was given
// explicitly, which matters for booleans that default to true.
func applyDefaults(config *Config, isSet func(string) bool) {
	if !isSet("site.enable_emoji") {
		config.Site.EnableEmoji = true
	}
	if !isSet("site.sanitize") {
		config.Site.Sanitize = true
	}
	if config.Site.EmojiSet == "" {
		config.Site.EmojiSet = DefaultEmojiSet
	}
	if config.Site.MaxOneboxes == 0 {
		config.Site.MaxOneboxes = DefaultMaxOneboxes
	}
	if len(config.Site.AcceptableCodeClasses) == 0 {
		config.Site.AcceptableCodeClasses = append([]string(nil), DefaultAcceptableCodeClasses...)
	}
	config.Site.BaseURL = strings.TrimSuffix(config.Site.BaseURL, "/")

	if config.Onebox.Delay == 0 {
		config.Onebox.Delay = DefaultOneboxDelay
	}
	if config.Onebox.BackoffDelay == 0 {
		config.Onebox.BackoffDelay = DefaultBackoffDelay
	}
	if config.Onebox.Timeout == 0 {
		config.Onebox.Timeout = DefaultTimeout
	}

	if config.Server.Port == 0 && !isSet("server.port") {
		config.Server.Port = DefaultPort
	}
	if config.Server.Host == "" {
		config.Server.Host = DefaultHost
	}
	if len(config.Server.Watch) == 0 {
		config.Server.Watch = []string{"**/*.md", ".prettytext.yml"}
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}
}

// Validate checks a configuration built without Load, such as one assembled
// in code from Default.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateSiteConfig(&config.Site); err != nil {
		return fmt.Errorf("site config: %w", err)
	}

	if err := validateOneboxConfig(&config.Onebox); err != nil {
		return fmt.Errorf("onebox config: %w", err)
	}

	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func validateSiteConfig(config *SiteConfig) error {
	if err := validateFeaturesConfig(&config.Features); err != nil {
		return err
	}

	if _, err := validation.NewSchemeMatcher(config.AllowedHrefSchemes); err != nil {
		return fmt.Errorf("allowed_href_schemes: %w", err)
	}

	for _, origin := range config.AllowedIframes {
		if !strings.HasPrefix(origin, "https://") && !strings.HasPrefix(origin, "http://") {
			return fmt.Errorf("allowed iframe %q must start with http:// or https://", origin)
		}
	}

	if config.MaxOneboxes < 0 {
		return fmt.Errorf("max_oneboxes must not be negative, got %d", config.MaxOneboxes)
	}

	if config.CustomEmojiFile != "" {
		if err := validation.ValidatePath(config.CustomEmojiFile); err != nil {
			return fmt.Errorf("custom_emoji_file: %w", err)
		}
	}

	return nil
}

func validateOneboxConfig(config *OneboxConfig) error {
	if config.Endpoint != "" {
		if err := validation.ValidateEndpoint(config.Endpoint); err != nil {
			return fmt.Errorf("endpoint: %w", err)
		}
	}

	if config.Delay <= 0 {
		return fmt.Errorf("delay must be positive, got %s", config.Delay)
	}
	if config.BackoffDelay <= 0 {
		return fmt.Errorf("backoff_delay must be positive, got %s", config.BackoffDelay)
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", config.Timeout)
	}

	if config.CachePath != "" && config.CachePath != ":memory:" {
		if err := validation.ValidatePath(config.CachePath); err != nil {
			return fmt.Errorf("cache_path: %w", err)
		}
	}

	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Validate port range (allow 0 for system-assigned ports in testing)
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	if config.Host != "" {
		dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
		for _, char := range dangerousChars {
			if strings.Contains(config.Host, char) {
				return fmt.Errorf("host contains dangerous character: %s", char)
			}
		}
	}

	for _, pattern := range config.Watch {
		if err := validation.ValidatePath(pattern); err != nil {
			return fmt.Errorf("invalid watch pattern '%s': %w", pattern, err)
		}
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", config.Format)
	}

	if _, err := logging.ParseLevel(config.Level); err != nil {
		return err
	}

	return nil
}
