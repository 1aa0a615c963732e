package server

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/watcher"
)

// Document is one markup file under the preview root.
type Document struct {
	Path    string    `json:"path"`
	Title   string    `json:"title"`
	ModTime time.Time `json:"mod_time"`
	Size    int64     `json:"size"`
}

// DocumentSet finds markup documents under a root directory. Paths are
// slash-separated and relative to the root.
type DocumentSet struct {
	root     string
	patterns []string
}

// NewDocumentSet matches documents under root against glob patterns. A
// pattern starting with "**/" matches the file name at any depth; any other
// pattern matches the whole relative path. Patterns that do not name a
// markup extension never match.
func NewDocumentSet(root string, patterns []string) *DocumentSet {
	return &DocumentSet{root: filepath.Clean(root), patterns: patterns}
}

// Root returns the directory being served.
func (d *DocumentSet) Root() string {
	return d.root
}

// Matches reports whether rel names a servable document.
func (d *DocumentSet) Matches(rel string) bool {
	if !watcher.MarkupFilter(rel) || !watcher.NoHiddenFilter(rel) {
		return false
	}
	for _, p := range d.patterns {
		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			if m, _ := path.Match(rest, path.Base(rel)); m {
				return true
			}
			continue
		}
		if m, _ := path.Match(p, rel); m {
			return true
		}
	}
	return false
}

// Rel converts an absolute or root-joined path into a document path.
func (d *DocumentSet) Rel(p string) (string, bool) {
	rel, err := filepath.Rel(d.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// List returns every matching document ordered by path.
func (d *DocumentSet) List() ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if p != d.root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, ok := d.Rel(p)
		if !ok || !d.Matches(rel) {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return nil
		}
		docs = append(docs, Document{
			Path:    rel,
			Title:   titleOf(p, rel),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileRead, "list documents", err).
			WithContext("root", d.root)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// Read returns the document at rel. Paths escaping the root or naming
// something other than a document are rejected.
func (d *DocumentSet) Read(rel string) (Document, []byte, error) {
	clean := path.Clean("/" + rel)[1:]
	if clean == "" || clean != rel || !d.Matches(clean) {
		return Document{}, nil, errors.NewValidationError(errors.ErrCodeInvalidPath, "not a document").
			WithContext("path", rel)
	}

	full := filepath.Join(d.root, filepath.FromSlash(clean))
	data, err := os.ReadFile(full)
	if err != nil {
		return Document{}, nil, errors.NewIOError(errors.ErrCodeFileRead, "read document", err).
			WithContext("path", rel)
	}
	doc := Document{Path: clean, Title: title(data, clean), Size: int64(len(data))}
	if info, err := os.Stat(full); err == nil {
		doc.ModTime = info.ModTime()
	}
	return doc, data, nil
}

func titleOf(full, rel string) string {
	f, err := os.Open(full)
	if err != nil {
		return path.Base(rel)
	}
	defer f.Close()

	head := make([]byte, 4096)
	n, _ := f.Read(head)
	return title(head[:n], rel)
}

// title is the first ATX heading, or the file name without extension.
func title(data []byte, rel string) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			if t := strings.TrimSpace(strings.TrimPrefix(line, "# ")); t != "" {
				return t
			}
		}
		break
	}
	base := path.Base(rel)
	return strings.TrimSuffix(base, path.Ext(base))
}
