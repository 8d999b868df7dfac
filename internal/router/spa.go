package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// brotliTypes maps precompressed WebGL build artifacts to their real content type.
var brotliTypes = map[string]string{
	".framework.js.br": "application/javascript",
	".js.br":           "application/javascript",
	".wasm.br":         "application/wasm",
	".symbols.json.br": "application/json",
	".data.br":         "application/octet-stream",
}

// spaHandler serves files from root. Extension-less paths resolve to
// <path>.html, and unknown pages fall back to index.html.
type spaHandler struct {
	root  string
	files http.Handler
}

func newSPAHandler(root string) http.Handler {
	return &spaHandler{root: root, files: http.FileServer(http.Dir(root))}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	clean := path.Clean("/" + r.URL.Path)

	if h.isFile(clean) && !strings.HasSuffix(clean, "/index.html") {
		setBrotliHeaders(w, clean)
		h.files.ServeHTTP(w, r)
		return
	}
	ext := path.Ext(clean)
	if ext != "" && ext != ".html" {
		http.NotFound(w, r)
		return
	}

	page := clean
	switch {
	case clean == "/":
		page = "/index.html"
	case ext == "":
		page = clean + ".html"
	}
	if !h.isFile(page) {
		page = "/index.html"
	}
	http.ServeFile(w, r, filepath.Join(h.root, filepath.FromSlash(page)))
}

func (h *spaHandler) isFile(p string) bool {
	fi, err := os.Stat(filepath.Join(h.root, filepath.FromSlash(p)))
	return err == nil && !fi.IsDir()
}

func setBrotliHeaders(w http.ResponseWriter, p string) {
	for suffix, ct := range brotliTypes {
		if strings.HasSuffix(p, suffix) {
			w.Header().Set("Content-Encoding", "br")
			w.Header().Set("Content-Type", ct)
			return
		}
	}
}
