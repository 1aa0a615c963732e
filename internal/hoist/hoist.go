// Package hoist keeps markup that must bypass the sanitizer. During
// compilation a fragment is swapped for an opaque id; after sanitizing, the
// ids are substituted back.
package hoist

import (
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

const idPrefix = "hoisted-"

var idPattern = regexp.MustCompile(idPrefix + `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// Store maps ids to fragments for a single render.
type Store struct {
	mu    sync.Mutex
	frags map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{frags: make(map[string]string)}
}

// Hoist stores html and returns the id emitted in its place.
func (s *Store) Hoist(html string) string {
	id := idPrefix + uuid.NewString()
	s.mu.Lock()
	s.frags[id] = html
	s.mu.Unlock()
	return id
}

// Len returns the number of stored fragments.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frags)
}

// Map returns a copy of the stored fragments.
func (s *Store) Map() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.frags))
	for k, v := range s.frags {
		out[k] = v
	}
	return out
}

// Unhoist substitutes every known id in html with its fragment. Fragments may
// themselves contain ids, so substitution repeats until a pass replaces
// nothing. Unknown ids stay as literal text.
func Unhoist(html string, frags map[string]string) string {
	if len(frags) == 0 || !strings.Contains(html, idPrefix) {
		return html
	}
	// A fragment containing its own id would never settle.
	for pass := 0; pass <= len(frags); pass++ {
		replaced := false
		html = idPattern.ReplaceAllStringFunc(html, func(id string) string {
			if frag, ok := frags[id]; ok {
				replaced = true
				return frag
			}
			return id
		})
		if !replaced {
			break
		}
	}
	return html
}

// IsID reports whether s is a hoist id.
func IsID(s string) bool {
	return len(s) == len(idPrefix)+36 && idPattern.MatchString(s)
}

const attrName = "prettytext-hoist"

var contextKey = parser.NewContextKey()

// Attach stores s on the document so renderers can reach it.
func Attach(doc ast.Node, s *Store) {
	doc.SetAttributeString(attrName, s)
}

// WithContext stores s on a parser context so AST transformers can reach it.
func WithContext(pc parser.Context, s *Store) {
	pc.Set(contextKey, s)
}

// FromContext returns the store set by WithContext.
func FromContext(pc parser.Context) *Store {
	if s, ok := pc.Get(contextKey).(*Store); ok {
		return s
	}
	return nil
}

// FromNode returns the store attached to n's document.
func FromNode(n ast.Node) *Store {
	for n.Parent() != nil {
		n = n.Parent()
	}
	v, ok := n.AttributeString(attrName)
	if !ok {
		return nil
	}
	s, _ := v.(*Store)
	return s
}
