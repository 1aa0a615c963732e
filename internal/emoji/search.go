package emoji

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SearchOptions bounds a Search.
type SearchOptions struct {
	// MaxResults caps the result count. Zero or less means no cap.
	MaxResults int
	// Diversity is a skin tone between 1 and 6. Values above 1 are appended
	// to tonable results as ":tN".
	Diversity int
	// Exclude removes names from the results.
	Exclude []string
}

// Search returns canonical names whose name or alias starts with term,
// followed by those that merely contain it. Aliases resolve to their
// canonical name.
func (e *Engine) Search(term string, opts SearchOptions) []string {
	term = cases.Lower(language.Und).String(strings.Trim(strings.TrimSpace(term), ":"))
	index := e.searchIndex()

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = true
	}
	seen := make(map[string]bool)
	var results []string
	add := func(item string) {
		name := item
		if canon, ok := aliases[item]; ok {
			name = canon
		}
		if seen[name] || excluded[name] {
			return
		}
		seen[name] = true
		results = append(results, name)
	}

	for _, item := range index {
		if strings.HasPrefix(item, term) {
			add(item)
		}
	}
	if term != "" {
		for _, item := range index {
			if strings.Index(item, term) > 0 {
				add(item)
			}
		}
	}

	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	if opts.Diversity > 1 && opts.Diversity <= 6 {
		suffix := ":t" + strconv.Itoa(opts.Diversity)
		for i, name := range results {
			if tonable[name] {
				results[i] = name + suffix
			}
		}
	}
	return results
}

// searchIndex returns the sorted union of canonical, alias and extended
// names, building it on first use after a change.
func (e *Engine) searchIndex() []string {
	e.mu.RLock()
	index := e.index
	e.mu.RUnlock()
	if index != nil {
		return index
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index != nil {
		return e.index
	}
	set := make(map[string]bool, len(names)+len(aliases)+len(e.extended))
	for name := range names {
		set[name] = true
	}
	for alias := range aliases {
		set[alias] = true
	}
	for name := range e.extended {
		set[name] = true
	}
	index = make([]string, 0, len(set))
	for name := range set {
		index = append(index, name)
	}
	sort.Strings(index)
	e.index = index
	return index
}
