package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ValidateEndpoint validates the base URL of a remote service (site base,
// onebox endpoint). Only absolute http and https URLs with a host pass.
func ValidateEndpoint(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %s (only http/https allowed)", parsed.Scheme)
	}

	if strings.ContainsAny(rawURL, " \t\r\n") {
		return fmt.Errorf("URL contains whitespace")
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a valid hostname")
	}

	return nil
}

var (
	schemeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9+.\-]*$`)

	absoluteURLPattern = regexp.MustCompile(`(?i)^(https?:)?//[\w.\-]+`)
	relativeURLPattern = regexp.MustCompile(`^/[\w.\-]+`)
	anchorPattern      = regexp.MustCompile(`^#[\w.\-]+`)
	mailtoPattern      = regexp.MustCompile(`(?i)^mailto:[\w.\-@]+`)
	telPattern         = regexp.MustCompile(`(?i)^tel:(//)?[\d\s\-+()]+$`)
)

// SchemeMatcher decides whether a link target is safe to keep. Absolute
// http(s) URLs, protocol-relative URLs, site-relative paths, anchors and
// mailto links always pass; extra schemes are opt-in.
type SchemeMatcher struct {
	extra []*regexp.Regexp
}

// NewSchemeMatcher compiles the extra scheme names. "tel" accepts phone
// numbers with or without the double slash; any other scheme must be
// followed by "://" and a host-like word.
func NewSchemeMatcher(schemes []string) (*SchemeMatcher, error) {
	m := &SchemeMatcher{}
	for _, scheme := range schemes {
		scheme = strings.ToLower(strings.TrimSpace(scheme))
		if !schemeNamePattern.MatchString(scheme) {
			return nil, fmt.Errorf("invalid href scheme %q", scheme)
		}
		if scheme == "tel" {
			m.extra = append(m.extra, telPattern)
			continue
		}
		re, err := regexp.Compile(`(?i)^` + regexp.QuoteMeta(scheme) + `://[\w.\-]+`)
		if err != nil {
			return nil, fmt.Errorf("compile href scheme %q: %w", scheme, err)
		}
		m.extra = append(m.extra, re)
	}
	return m, nil
}

// MustSchemeMatcher is NewSchemeMatcher that panics on invalid input.
func MustSchemeMatcher(schemes []string) *SchemeMatcher {
	m, err := NewSchemeMatcher(schemes)
	if err != nil {
		panic(err)
	}
	return m
}

// Allowed reports whether href may be kept.
func (m *SchemeMatcher) Allowed(href string) bool {
	switch {
	case absoluteURLPattern.MatchString(href),
		relativeURLPattern.MatchString(href),
		anchorPattern.MatchString(href),
		mailtoPattern.MatchString(href):
		return true
	}
	if m == nil {
		return false
	}
	for _, re := range m.extra {
		if re.MatchString(href) {
			return true
		}
	}
	return false
}
