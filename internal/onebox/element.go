package onebox

import (
	"strings"
	"sync"
)

// LoadingClass marks an element whose preview is being fetched.
const LoadingClass = "loading-onebox"

// Element is the node the loader decorates. Implementations must be safe
// for use from the drain goroutine.
type Element interface {
	URL() string
	HasClass(class string) bool
	AddClass(class string)
	RemoveClass(class string)
	Loaded() bool
	MarkLoaded()
	Replace(html string)
}

// Link is an Element backed by an anchor found in rendered HTML.
type Link struct {
	mu          sync.Mutex
	href        string
	classes     []string
	loaded      bool
	replacement string
	replaced    bool
}

// NewLink creates a Link for href with the given class attribute value.
func NewLink(href, class string) *Link {
	return &Link{href: href, classes: strings.Fields(class)}
}

func (l *Link) URL() string {
	return l.href
}

func (l *Link) HasClass(class string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range l.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (l *Link) AddClass(class string) {
	if l.HasClass(class) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.classes = append(l.classes, class)
}

func (l *Link) RemoveClass(class string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.classes[:0]
	for _, c := range l.classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	l.classes = kept
}

// Class returns the current class attribute value.
func (l *Link) Class() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.classes, " ")
}

func (l *Link) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

func (l *Link) MarkLoaded() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = true
}

func (l *Link) Replace(html string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.replacement, l.replaced = html, true
}

// Replacement returns the preview that replaced the link, if any.
func (l *Link) Replacement() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.replacement, l.replaced
}
