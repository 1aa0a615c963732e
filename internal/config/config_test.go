package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults",
			setup: func() {},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Site.EnableEmoji)
				assert.True(t, cfg.Site.Sanitize)
				assert.Equal(t, "twitter", cfg.Site.EmojiSet)
				assert.Equal(t, 150*time.Millisecond, cfg.Onebox.Delay)
				assert.Equal(t, 2*time.Second, cfg.Onebox.BackoffDelay)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "localhost", cfg.Server.Host)
				assert.Equal(t, DefaultAcceptableCodeClasses, cfg.Site.AcceptableCodeClasses)
			},
		},
		{
			name: "explicit false booleans survive defaults",
			setup: func() {
				viper.Set("site.enable_emoji", false)
				viper.Set("site.sanitize", false)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Site.EnableEmoji)
				assert.False(t, cfg.Site.Sanitize)
			},
		},
		{
			name: "slices and durations",
			setup: func() {
				viper.Set("site.allowed_href_schemes", []string{"tel", "steam"})
				viper.Set("site.allowed_iframes", []string{"https://www.youtube.com/embed/"})
				viper.Set("site.features.disabled", []string{"spoiler"})
				viper.Set("onebox.delay", "300ms")
				viper.Set("onebox.endpoint", "https://forum.example.com")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"tel", "steam"}, cfg.Site.AllowedHrefSchemes)
				assert.Equal(t, []string{"https://www.youtube.com/embed/"}, cfg.Site.AllowedIframes)
				assert.Equal(t, []string{"spoiler"}, cfg.Site.Features.Disabled)
				assert.Equal(t, 300*time.Millisecond, cfg.Onebox.Delay)
				assert.Equal(t, "https://forum.example.com", cfg.Onebox.Endpoint)
			},
		},
		{
			name: "base url trailing slash trimmed",
			setup: func() {
				viper.Set("site.base_url", "https://cdn.example.com/")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://cdn.example.com", cfg.Site.BaseURL)
			},
		},
		{
			name: "invalid port type",
			setup: func() {
				viper.Set("server.port", "invalid_port")
			},
			expectError: true,
		},
		{
			name: "feature both enabled and disabled",
			setup: func() {
				viper.Set("site.features.enabled", []string{"spoiler"})
				viper.Set("site.features.disabled", []string{"spoiler"})
			},
			expectError: true,
		},
		{
			name: "bad feature name",
			setup: func() {
				viper.Set("site.features.disabled", []string{"Spoiler!"})
			},
			expectError: true,
		},
		{
			name: "bad href scheme",
			setup: func() {
				viper.Set("site.allowed_href_schemes", []string{"tel:"})
			},
			expectError: true,
		},
		{
			name: "iframe origin without http scheme",
			setup: func() {
				viper.Set("site.allowed_iframes", []string{"javascript:alert(1)"})
			},
			expectError: true,
		},
		{
			name: "negative delay",
			setup: func() {
				viper.Set("onebox.delay", "-1s")
			},
			expectError: true,
		},
		{
			name: "port out of range",
			setup: func() {
				viper.Set("server.port", 70000)
			},
			expectError: true,
		},
		{
			name: "unknown log format",
			setup: func() {
				viper.Set("logging.format", "xml")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			tt.setup()

			cfg, err := Load()
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, ".prettytext.yml")
	content := `
site:
  enable_emoji_shortcuts: true
  custom_emoji:
    parrot: /uploads/parrot.gif
  features:
    disabled: [table]
onebox:
  backoff_delay: 5s
server:
  port: 3000
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Site.EnableEmojiShortcuts)
	assert.Equal(t, map[string]string{"parrot": "/uploads/parrot.gif"}, cfg.Site.CustomEmoji)
	assert.Equal(t, []string{"table"}, cfg.Site.Features.Disabled)
	assert.Equal(t, 5*time.Second, cfg.Onebox.BackoffDelay)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.Site.EnableEmoji)
	assert.True(t, cfg.Site.Sanitize)
	assert.Equal(t, DefaultMaxOneboxes, cfg.Site.MaxOneboxes)
	assert.Equal(t, DefaultTimeout, cfg.Onebox.Timeout)

	// Callers get their own copy of the default code classes.
	cfg.Site.AcceptableCodeClasses[0] = "changed"
	assert.NotEqual(t, "changed", Default().Site.AcceptableCodeClasses[0])
}

func TestFeatureState(t *testing.T) {
	f := FeaturesConfig{Enabled: []string{"spoiler"}, Disabled: []string{"table"}}

	tests := []struct {
		id       string
		enabled  bool
		explicit bool
	}{
		{"spoiler", true, true},
		{"table", false, true},
		{"details", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			enabled, explicit := f.FeatureState(tt.id)
			assert.Equal(t, tt.enabled, enabled)
			assert.Equal(t, tt.explicit, explicit)
		})
	}
}

func TestValidateConfigWithDetails(t *testing.T) {
	cfg := Default()
	cfg.Site.Sanitize = false
	cfg.Site.EnableEmoji = false
	cfg.Site.EnableEmojiShortcuts = true
	cfg.Site.AllowedIframes = []string{"http://maps.example.com/", "ftp://files.example.com/"}
	cfg.Site.Features.Disabled = []string{"nonexistent"}
	cfg.Server.Port = 80

	result := ValidateConfigWithDetails(cfg, []string{"details", "spoiler"})

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "site.allowed_iframes[1]", result.Errors[0].Field)

	fields := make([]string, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		fields = append(fields, w.Field)
	}
	assert.Contains(t, fields, "site.allowed_iframes[0]")
	assert.Contains(t, fields, "site.sanitize")
	assert.Contains(t, fields, "site.enable_emoji_shortcuts")
	assert.Contains(t, fields, "site.features")
	assert.Contains(t, fields, "onebox.endpoint")
	assert.Contains(t, fields, "server.port")

	out := result.String()
	assert.Contains(t, out, "Validation Errors")
	assert.Contains(t, out, "unknown feature 'nonexistent'")
}

func TestValidateHostname(t *testing.T) {
	tests := []struct {
		host    string
		wantErr bool
	}{
		{"localhost", false},
		{"127.0.0.1", false},
		{"::1", false},
		{"preview.example.com", false},
		{"bad;host", true},
		{"-leading.example.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			err := validateHostname(tt.host)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
