package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/conneroisu/prettytext/internal/validation"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("❌ Validation Errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("⚠️  Validation Warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

// ValidateConfigWithDetails performs comprehensive validation with detailed
// feedback. knownFeatures lists the feature ids of the active manifest; nil
// skips the unknown-feature check.
func ValidateConfigWithDetails(config *Config, knownFeatures []string) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateSiteConfigDetails(&config.Site, knownFeatures, result)
	validateOneboxConfigDetails(&config.Onebox, result)
	validateServerConfigDetails(&config.Server, result)

	result.Valid = !result.HasErrors()

	return result
}

func validateSiteConfigDetails(config *SiteConfig, knownFeatures []string, result *ValidationResult) {
	if config.BaseURL != "" {
		if err := validation.ValidateEndpoint(config.BaseURL); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "site.base_url",
				Value:   config.BaseURL,
				Message: err.Error(),
				Suggestions: []string{
					"Use an absolute URL such as https://forum.example.com",
				},
			})
		}
	}

	for i, scheme := range config.AllowedHrefSchemes {
		if _, err := validation.NewSchemeMatcher([]string{scheme}); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("site.allowed_href_schemes[%d]", i),
				Value:   scheme,
				Message: err.Error(),
				Suggestions: []string{
					"List scheme names without the colon, e.g. 'tel' or 'steam'",
				},
			})
		}
	}

	for i, origin := range config.AllowedIframes {
		if !strings.HasPrefix(origin, "https://") && !strings.HasPrefix(origin, "http://") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("site.allowed_iframes[%d]", i),
				Value:   origin,
				Message: "iframe origins must be http or https URLs",
			})
			continue
		}
		if strings.HasPrefix(origin, "http://") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("site.allowed_iframes[%d]", i),
				Value:   origin,
				Message: "plain http iframes are blocked by browsers on https pages",
				Suggestions: []string{
					"Prefer the https:// form of the embed URL",
				},
			})
		}
	}

	if !config.Sanitize {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "site.sanitize",
			Value:   false,
			Message: "sanitizing is disabled; rendered HTML is emitted unfiltered",
			Suggestions: []string{
				"Only disable sanitizing for trusted input",
			},
		})
	}

	if config.EnableEmojiShortcuts && !config.EnableEmoji {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "site.enable_emoji_shortcuts",
			Value:   true,
			Message: "emoji shortcuts have no effect while emoji are disabled",
		})
	}

	if config.CustomEmojiFile != "" && !pathExists(config.CustomEmojiFile) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "site.custom_emoji_file",
			Value:   config.CustomEmojiFile,
			Message: "custom emoji file does not exist",
		})
	}

	if knownFeatures != nil {
		named := append(append([]string{}, config.Features.Enabled...), config.Features.Disabled...)
		for _, name := range named {
			if !contains(knownFeatures, name) {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   "site.features",
					Value:   name,
					Message: fmt.Sprintf("unknown feature '%s'", name),
					Suggestions: []string{
						"Check feature name spelling",
						"Available features: " + strings.Join(knownFeatures, ", "),
					},
				})
			}
		}
	}

	if err := validateFeaturesConfig(&config.Features); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "site.features",
			Value:   config.Features,
			Message: err.Error(),
		})
	}
}

func validateOneboxConfigDetails(config *OneboxConfig, result *ValidationResult) {
	if config.Endpoint == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "onebox.endpoint",
			Value:   "",
			Message: "no onebox endpoint; link previews will not be fetched",
		})
	} else if err := validation.ValidateEndpoint(config.Endpoint); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "onebox.endpoint",
			Value:   config.Endpoint,
			Message: err.Error(),
		})
	}

	if config.BackoffDelay > 0 && config.Delay > config.BackoffDelay {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "onebox.backoff_delay",
			Value:   config.BackoffDelay,
			Message: "backoff delay is shorter than the regular delay",
			Suggestions: []string{
				fmt.Sprintf("The defaults are %s and %s", DefaultOneboxDelay, DefaultBackoffDelay),
			},
		})
	}

	if config.Timeout > 0 && config.Timeout < time.Second {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "onebox.timeout",
			Value:   config.Timeout,
			Message: "timeouts under one second abort most preview fetches",
		})
	}
}

func validateServerConfigDetails(config *ServerConfig, result *ValidationResult) {
	if config.Port < 0 || config.Port > 65535 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.port",
			Value:   config.Port,
			Message: fmt.Sprintf("port %d is not in valid range 0-65535", config.Port),
			Suggestions: []string{
				"Use a port between 1024-65535 for non-privileged access",
				"Common development ports: 3000, 8080, 8000",
			},
		})
	} else if config.Port > 0 && config.Port < 1024 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "server.port",
			Value:   config.Port,
			Message: "ports below 1024 require elevated privileges",
		})
	}

	if config.Host != "" {
		if err := validateHostname(config.Host); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "server.host",
				Value:   config.Host,
				Message: err.Error(),
				Suggestions: []string{
					"Use 'localhost' for local development",
					"Use '0.0.0.0' to listen on all interfaces",
				},
			})
		}
	}
}

// Helper validation functions

var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func validateHostname(host string) error {
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
	for _, char := range dangerousChars {
		if strings.Contains(host, char) {
			return fmt.Errorf("contains dangerous character: %s", char)
		}
	}

	if net.ParseIP(host) != nil {
		return nil
	}

	if !hostnameRegex.MatchString(host) {
		return fmt.Errorf("invalid hostname format")
	}

	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
