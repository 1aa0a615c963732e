// Package ruler holds the ordered registry of tag handlers consulted while
// compiling BBCode-style tag invocations, plus the token model those
// handlers emit.
package ruler

import "sync"

// TagInfo describes one parsed tag invocation such as [wrap=toc level=2].
type TagInfo struct {
	Tag   string
	Attrs map[string]string
}

// DefaultAttr is the key under which the value of [tag=value] is stored.
const DefaultAttr = "_default"

// Default returns the tag's unnamed value.
func (i TagInfo) Default() string {
	return i.Attrs[DefaultAttr]
}

// BeforeFunc pushes the opening tokens for a tag. Returning false reports
// that the invocation was not handled.
type BeforeFunc func(s *Stream, info TagInfo) bool

// AfterFunc pushes the closing tokens for a tag.
type AfterFunc func(s *Stream, info TagInfo)

// WrapFunc customises the single token wrapping the tag's content. Returning
// false reports that the invocation was not handled.
type WrapFunc func(tok *Token, info TagInfo) bool

// ReplaceFunc replaces the whole invocation given its raw inner content.
type ReplaceFunc func(s *Stream, info TagInfo, content string) bool

// Rule converts a matched tag invocation into tokens. Exactly one of
// Replace, Wrap or Before is consulted, in that order.
type Rule struct {
	Tag     string
	Before  BeforeFunc
	After   AfterFunc
	Wrap    WrapFunc
	Replace ReplaceFunc
}

// Entry is a named rule.
type Entry struct {
	Name string
	Rule Rule
}

// Ruler is an append-only list of named rules with a lazily built
// tag lookup. The most recently pushed rule for a tag wins.
type Ruler struct {
	mu    sync.RWMutex
	rules []Entry
	cache map[string]Rule
}

// New creates an empty Ruler.
func New() *Ruler {
	return &Ruler{}
}

// Push appends a rule and invalidates the tag lookup.
func (r *Ruler) Push(name string, rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, Entry{Name: name, Rule: rule})
	r.cache = nil
}

// Rules returns every registered rule in registration order.
func (r *Ruler) Rules() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.rules))
	copy(out, r.rules)
	return out
}

// Len returns the number of registered rules.
func (r *Ruler) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// RuleForTag returns the rule handling tag, if any.
func (r *Ruler) RuleForTag(tag string) (Rule, bool) {
	r.mu.RLock()
	if r.cache != nil {
		rule, ok := r.cache[tag]
		r.mu.RUnlock()
		return rule, ok
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cache == nil {
		r.cache = make(map[string]Rule, len(r.rules))
		for i := len(r.rules) - 1; i >= 0; i-- {
			tag := r.rules[i].Rule.Tag
			if _, seen := r.cache[tag]; !seen {
				r.cache[tag] = r.rules[i].Rule
			}
		}
	}
	rule, ok := r.cache[tag]
	return rule, ok
}
