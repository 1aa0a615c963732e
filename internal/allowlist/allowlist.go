// Package allowlist turns the selectors contributed by rendering features
// into the concrete tag and attribute allow-list the sanitizer enforces.
package allowlist

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/conneroisu/prettytext/internal/errors"
)

// DefaultFeature names the feature set that is always active.
const DefaultFeature = "default"

// Wildcard allows any value for an attribute.
const Wildcard = "*"

// Predicate decides whether an attribute value not covered by a static
// selector is acceptable.
type Predicate func(tag, attr, value string) bool

// Info is one contribution of a feature: selectors, a custom predicate,
// or both.
type Info struct {
	Selectors []string
	Custom    Predicate
}

// AllowList is the derived allow-list. A tag present in TagList is allowed;
// AttrList maps tag to attribute name to the allowed values.
type AllowList struct {
	TagList  map[string]struct{}
	AttrList map[string]map[string][]string
}

// AllowsTag reports whether tag is allowed.
func (a AllowList) AllowsTag(tag string) bool {
	_, ok := a.TagList[tag]
	return ok
}

// Values returns the allowed values of attr on tag.
func (a AllowList) Values(tag, attr string) ([]string, bool) {
	attrs, ok := a.AttrList[tag]
	if !ok {
		return nil, false
	}
	vals, ok := attrs[attr]
	return vals, ok
}

// Allows reports whether value is an allowed value of attr on tag.
func (a AllowList) Allows(tag, attr, value string) bool {
	vals, ok := a.Values(tag, attr)
	if !ok {
		return false
	}
	for _, v := range vals {
		if v == Wildcard || v == value {
			return true
		}
	}
	return false
}

type contribution struct {
	feature string
	info    Info
}

// Builder accumulates feature contributions and lazily derives the
// allow-list from the enabled ones.
type Builder struct {
	mu            sync.RWMutex
	contributions []contribution
	disabled      map[string]bool
	hrefSchemes   []string
	iframes       []string

	cache  *AllowList
	custom []Predicate
}

// Option configures a Builder.
type Option func(*Builder)

// WithHrefSchemes sets the extra href scheme patterns accepted on links.
func WithHrefSchemes(schemes ...string) Option {
	return func(b *Builder) {
		b.hrefSchemes = append([]string(nil), schemes...)
	}
}

// WithIframes sets the iframe source prefixes that may be embedded.
func WithIframes(origins ...string) Option {
	return func(b *Builder) {
		b.iframes = append([]string(nil), origins...)
	}
}

// NewBuilder creates a Builder seeded with the default feature set.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{disabled: make(map[string]bool)}
	for _, opt := range opts {
		opt(b)
	}
	_ = b.AllowListFeature(DefaultFeature, Info{Selectors: DefaultSelectors})
	return b
}

// AllowListFeature records a contribution for feature. Repeated calls for
// the same feature accumulate. Malformed selectors are left out and
// reported in an ErrCodeInvalidSelector validation error; the rest of the
// contribution is still recorded.
func (b *Builder) AllowListFeature(feature string, info Info) error {
	var valid, bad []string
	for _, sel := range info.Selectors {
		if _, ok := ParseSelector(sel); ok {
			valid = append(valid, sel)
		} else {
			bad = append(bad, fmt.Sprintf("%q", sel))
		}
	}
	info.Selectors = valid

	b.mu.Lock()
	b.contributions = append(b.contributions, contribution{feature: feature, info: info})
	b.invalidate()
	b.mu.Unlock()

	if len(bad) > 0 {
		return errors.NewValidationError(errors.ErrCodeInvalidSelector,
			fmt.Sprintf("feature %s: invalid selectors %s", feature, strings.Join(bad, ", "))).
			WithContext("feature", feature)
	}
	return nil
}

// Enable re-activates a previously disabled feature.
func (b *Builder) Enable(feature string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled[feature] {
		delete(b.disabled, feature)
		b.invalidate()
	}
}

// Disable removes a feature's contributions from the allow-list. The default
// feature cannot be disabled.
func (b *Builder) Disable(feature string) {
	if feature == DefaultFeature {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.disabled[feature] {
		b.disabled[feature] = true
		b.invalidate()
	}
}

// IsEnabled reports whether feature currently contributes.
func (b *Builder) IsEnabled(feature string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return !b.disabled[feature]
}

// Features returns the names of every feature that contributed, sorted.
func (b *Builder) Features() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, c := range b.contributions {
		if !seen[c.feature] {
			seen[c.feature] = true
			out = append(out, c.feature)
		}
	}
	sort.Strings(out)
	return out
}

// AllowedHrefSchemes returns the configured extra href scheme patterns.
func (b *Builder) AllowedHrefSchemes() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.hrefSchemes...)
}

// AllowedIframes returns the configured iframe source prefixes.
func (b *Builder) AllowedIframes() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.iframes...)
}

// AllowList returns the allow-list derived from the enabled features. The
// returned maps are fresh copies.
func (b *Builder) AllowList() AllowList {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.build()
	return b.cache.clone()
}

// Custom returns the custom predicates of enabled features in registration
// order.
func (b *Builder) Custom() []Predicate {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.build()
	return append([]Predicate(nil), b.custom...)
}

func (b *Builder) invalidate() {
	b.cache = nil
	b.custom = nil
}

func (b *Builder) build() {
	if b.cache != nil {
		return
	}
	al := &AllowList{
		TagList:  make(map[string]struct{}),
		AttrList: make(map[string]map[string][]string),
	}
	var custom []Predicate
	for _, c := range b.contributions {
		if b.disabled[c.feature] {
			continue
		}
		for _, sel := range c.info.Selectors {
			s, _ := ParseSelector(sel)
			al.add(s)
		}
		if c.info.Custom != nil {
			custom = append(custom, c.info.Custom)
		}
	}
	b.cache = al
	b.custom = custom
}

func (a *AllowList) add(s Selector) {
	a.TagList[s.Tag] = struct{}{}
	attrs := a.AttrList[s.Tag]
	if attrs == nil {
		attrs = make(map[string][]string)
		a.AttrList[s.Tag] = attrs
	}
	for _, class := range s.Classes {
		attrs["class"] = appendUnique(attrs["class"], class)
	}
	if s.Attr != "" {
		val := s.Value
		if !s.HasValue {
			val = Wildcard
		}
		attrs[s.Attr] = appendUnique(attrs[s.Attr], val)
	}
}

func (a *AllowList) clone() AllowList {
	out := AllowList{
		TagList:  make(map[string]struct{}, len(a.TagList)),
		AttrList: make(map[string]map[string][]string, len(a.AttrList)),
	}
	for tag := range a.TagList {
		out.TagList[tag] = struct{}{}
	}
	for tag, attrs := range a.AttrList {
		m := make(map[string][]string, len(attrs))
		for name, vals := range attrs {
			m[name] = append([]string(nil), vals...)
		}
		out.AttrList[tag] = m
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// Selector is a parsed allow-list selector of the form
// tag[.class]*([attr[=value]])?.
type Selector struct {
	Tag      string
	Classes  []string
	Attr     string
	Value    string
	HasValue bool
}

// ParseSelector parses sel. Malformed selectors report false.
func ParseSelector(sel string) (Selector, bool) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return Selector{}, false
	}
	head, bracket, hasBracket := sel, "", false
	if i := strings.IndexByte(sel, '['); i >= 0 {
		if !strings.HasSuffix(sel, "]") {
			return Selector{}, false
		}
		head, bracket, hasBracket = sel[:i], sel[i+1:len(sel)-1], true
	}

	parts := strings.Split(head, ".")
	s := Selector{Tag: strings.ToLower(parts[0])}
	if s.Tag == "" || !validName(s.Tag) {
		return Selector{}, false
	}
	for _, class := range parts[1:] {
		if class == "" {
			return Selector{}, false
		}
		s.Classes = append(s.Classes, class)
	}

	if hasBracket {
		name, value, hasValue := strings.Cut(bracket, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || strings.ContainsAny(name, " []") {
			return Selector{}, false
		}
		s.Attr = name
		if hasValue {
			s.HasValue = true
			s.Value = strings.Trim(value, `"'`)
		}
	}
	return s, true
}

func validName(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}
