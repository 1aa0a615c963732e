//go:build property
// +build property

package config

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestConfigurationProperties tests configuration validation properties
func TestConfigurationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: in-range ports with a plain hostname always validate
	properties.Property("valid server config", prop.ForAll(
		func(port int, host string) bool {
			cfg := Default()
			cfg.Server.Port = port
			cfg.Server.Host = host
			return cfg.Validate() == nil
		},
		gen.IntRange(0, 65535),
		gen.RegexMatch(`^[a-z][a-z0-9.-]{0,20}$`),
	))

	// Property: out-of-range ports are always rejected
	properties.Property("invalid port rejected", prop.ForAll(
		func(port int) bool {
			cfg := Default()
			cfg.Server.Port = port
			return cfg.Validate() != nil
		},
		gen.OneGenOf(gen.IntRange(-100000, -1), gen.IntRange(65536, 200000)),
	))

	// Property: a feature named in both lists is always a conflict
	properties.Property("feature conflicts rejected", prop.ForAll(
		func(name string) bool {
			cfg := Default()
			cfg.Site.Features.Enabled = []string{name}
			cfg.Site.Features.Disabled = []string{name}
			return cfg.Validate() != nil
		},
		gen.RegexMatch(`^[a-z0-9_-]{1,12}$`),
	))

	// Property: positive delays validate and non-positive delays do not
	properties.Property("delay sign decides validity", prop.ForAll(
		func(ms int64) bool {
			cfg := Default()
			cfg.Onebox.Delay = time.Duration(ms) * time.Millisecond
			return (cfg.Validate() == nil) == (ms > 0)
		},
		gen.Int64Range(-5000, 5000),
	))

	// Property: explicit feature state matches list membership
	properties.Property("feature state follows lists", prop.ForAll(
		func(enabled, disabled []string, id string) bool {
			f := FeaturesConfig{Enabled: enabled, Disabled: disabled}
			on, explicit := f.FeatureState(id)
			inDisabled := contains(disabled, id)
			inEnabled := contains(enabled, id)
			switch {
			case inDisabled:
				return !on && explicit
			case inEnabled:
				return on && explicit
			default:
				return on && !explicit
			}
		},
		gen.SliceOfN(3, gen.OneConstOf("a", "b", "c", "d")),
		gen.SliceOfN(3, gen.OneConstOf("a", "b", "c", "d")),
		gen.OneConstOf("a", "b", "c", "d", "e"),
	))

	properties.TestingRun(t)
}
