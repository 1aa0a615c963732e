package config

import (
	"fmt"

	"github.com/conneroisu/prettytext/internal/validation"
)

// validateFeaturesConfig validates the enabled and disabled feature lists
func validateFeaturesConfig(config *FeaturesConfig) error {
	all := make([]string, 0, len(config.Enabled)+len(config.Disabled))
	all = append(all, config.Enabled...)
	all = append(all, config.Disabled...)
	for _, name := range all {
		if err := validation.ValidateFeatureName(name); err != nil {
			return err
		}
	}

	// Check for conflicts between enabled and disabled
	enabledMap := make(map[string]bool)
	for _, name := range config.Enabled {
		enabledMap[name] = true
	}
	for _, name := range config.Disabled {
		if enabledMap[name] {
			return fmt.Errorf("feature %s cannot be both enabled and disabled", name)
		}
	}

	return nil
}

// FeatureState reports whether the configuration names a feature explicitly.
// explicit is false when the feature appears in neither list.
func (f FeaturesConfig) FeatureState(id string) (enabled, explicit bool) {
	for _, name := range f.Disabled {
		if name == id {
			return false, true
		}
	}
	for _, name := range f.Enabled {
		if name == id {
			return true, true
		}
	}
	return true, false
}
