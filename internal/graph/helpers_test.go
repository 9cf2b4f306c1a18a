package graph

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// call is one request seen by the fake Graph API.
type call struct {
	Method      string
	Path        string
	AccessToken string
	Query       map[string]string
	Form        map[string]string
	FileName    string
	FileBody    string
}

// fakeGraph is an in-process Graph API with canned principal and pages.
type fakeGraph struct {
	t         *testing.T
	server    *httptest.Server
	principal map[string]any
	pages     []map[string]any
	posts     []map[string]any

	// fail maps "METHOD /path" to a status code to answer with.
	fail map[string]int

	mu    sync.Mutex
	calls []call
}

func newFakeGraph(t *testing.T) *fakeGraph {
	t.Helper()
	f := &fakeGraph{
		t:         t,
		principal: map[string]any{"id": "100", "name": "Alice"},
		pages: []map[string]any{
			{"id": "200", "name": "Shop", "access_token": "tok2"},
		},
		fail: map[string]int{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeGraph) handle(w http.ResponseWriter, r *http.Request) {
	c := call{
		Method:      r.Method,
		Path:        r.URL.Path,
		AccessToken: r.URL.Query().Get(ParamAccessToken),
		Query:       map[string]string{},
		Form:        map[string]string{},
	}
	for k := range r.URL.Query() {
		c.Query[k] = r.URL.Query().Get(k)
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for k, vs := range r.MultipartForm.Value {
				c.Form[k] = vs[0]
			}
			if fhs := r.MultipartForm.File["source"]; len(fhs) > 0 {
				c.FileName = fhs[0].Filename
				if src, err := fhs[0].Open(); err == nil {
					b, _ := io.ReadAll(src)
					src.Close()
					c.FileBody = string(b)
				}
			}
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if status, ok := f.fail[r.Method+" "+r.URL.Path]; ok {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "forced failure", "type": "OAuthException", "code": 190},
		})
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/me":
		json.NewEncoder(w).Encode(f.principal)
	case r.Method == http.MethodGet && r.URL.Path == "/me/accounts":
		json.NewEncoder(w).Encode(map[string]any{"data": f.pages})
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/posts"):
		json.NewEncoder(w).Encode(map[string]any{"data": f.posts})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/feed"):
		json.NewEncoder(w).Encode(map[string]any{"id": strings.TrimPrefix(strings.TrimSuffix(r.URL.Path, "/feed"), "/") + "_1"})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/photos"):
		json.NewEncoder(w).Encode(map[string]any{"id": "photo_" + c.FileName, "post_id": "p_" + c.FileName})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/videos"):
		json.NewEncoder(w).Encode(map[string]any{"id": "video_" + c.FileName})
	case r.Method == http.MethodPost:
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	case r.Method == http.MethodDelete:
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeGraph) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

// Reset forgets the calls recorded so far.
func (f *fakeGraph) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *fakeGraph) count(method, path string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// recordHandler is a slog.Handler that keeps every record.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) errors() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == slog.LevelError {
			n++
		}
	}
	return n
}

func (h *recordHandler) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = nil
}

// newTestClient builds a client against f and clears the construction calls.
func newTestClient(t *testing.T, f *fakeGraph) (*Client, *recordHandler) {
	t.Helper()
	logs := &recordHandler{}
	c := New(context.Background(), Config{
		AccessToken: "root",
		BaseURL:     f.server.URL,
		HTTPClient:  f.server.Client(),
		Logger:      slog.New(logs),
	})
	f.Reset()
	logs.reset()
	return c, logs
}
