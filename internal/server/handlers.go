package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conneroisu/prettytext/internal/emoji"
	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/pipeline"
	"github.com/conneroisu/prettytext/internal/version"
)

// maxRenderBytes caps a render request body.
const maxRenderBytes = 1 << 20

// RenderRequest is the JSON body of POST /api/render.
type RenderRequest struct {
	Raw     string `json:"raw"`
	Excerpt int    `json:"excerpt,omitempty"`
}

// RenderResponse is returned by POST /api/render.
type RenderResponse struct {
	HTML    string `json:"html"`
	Excerpt string `json:"excerpt,omitempty"`
}

// EmojiResult is one emoji search hit.
type EmojiResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docs.List()
	if err != nil {
		s.logger.Error(r.Context(), err, "Failed to list documents")
		http.Error(w, "Failed to list documents", http.StatusInternalServerError)
		return
	}
	templ.Handler(IndexPage(docs)).ServeHTTP(w, r)
}

func (s *PreviewServer) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, html, err := s.renderDocument(r.Context(), r.PathValue("path"))
	s.metrics.render("request", err)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeValidation) || errors.IsType(err, errors.ErrorTypeIO) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error(r.Context(), err, "Render failed", "path", r.PathValue("path"))
		http.Error(w, "Render failed", http.StatusInternalServerError)
		return
	}
	templ.Handler(DocumentPage(doc, html)).ServeHTTP(w, r)
}

// handleRender accepts either a JSON RenderRequest or the raw markup as the
// request body.
func (s *PreviewServer) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRenderBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	req := RenderRequest{Raw: string(body)}
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "application/json" {
		req = RenderRequest{}
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	p := s.Pipeline()
	html, err := p.RenderContext(r.Context(), req.Raw, s.post...)
	s.metrics.render("api", err)
	if err != nil {
		s.logger.Error(r.Context(), err, "Render request failed")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := RenderResponse{HTML: html}
	if req.Excerpt > 0 {
		resp.Excerpt = pipeline.Excerpt(html, req.Excerpt)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleEmojiSearch serves ?q=term&max=n&tone=t.
func (s *PreviewServer) handleEmojiSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	term := q.Get("q")
	if term == "" {
		writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}
	opts := emoji.SearchOptions{MaxResults: 20}
	if v := q.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "max must be a non-negative integer")
			return
		}
		opts.MaxResults = n
	}
	if v := q.Get("tone"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 6 {
			writeError(w, http.StatusBadRequest, "tone must be between 1 and 6")
			return
		}
		opts.Diversity = n
	}

	e := s.Pipeline().Engine()
	emojiOpts := e.Options().EmojiOptions()
	names := e.Emoji().Search(term, opts)
	results := make([]EmojiResult, 0, len(names))
	for _, name := range names {
		results = append(results, EmojiResult{Name: name, URL: e.Emoji().URL(name, emojiOpts)})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func (s *PreviewServer) handleFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"features": s.Pipeline().Features()})
}

func (s *PreviewServer) handleDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docs.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	if docs == nil {
		docs = []Document{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}

// handleHealth returns the server health status for health checks
func (s *PreviewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"timestamp":  time.Now().UTC(),
		"version":    version.GetShortVersion(),
		"clients":    s.ws.GetConnectedClients(),
		"live_watch": s.watcher != nil,
	})
}

func promhttpHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
