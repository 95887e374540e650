// Package static serves the web client's files from a fixed root directory.
package static

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"oneday-todo/pkg/log"
	"oneday-todo/pkg/response"
)

const (
	indexFile        = "index.html"
	serviceWorker    = "sw.js"
	apiPrefix        = "/api/"
	defaultMediaType = "application/octet-stream"
)

var (
	// ErrForbidden is returned when a path resolves outside the root.
	ErrForbidden = errors.New("static: path escapes root")
	// ErrNotFound is returned for missing or unreadable files.
	ErrNotFound = errors.New("static: file not found")
)

var mediaTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".ico":  "image/x-icon",
}

// ContentType returns the fixed media type for the file's extension.
func ContentType(name string) string {
	if ct, ok := mediaTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return defaultMediaType
}

type Handler struct {
	l    log.Logger
	root string
}

// New returns a handler rooted at dir. The root is made absolute once so
// containment checks compare cleaned absolute paths.
func New(l log.Logger, dir string) (*Handler, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Handler{l: l, root: root}, nil
}

// Root returns the absolute directory files are served from.
func (h *Handler) Root() string {
	return h.root
}

// Resolve maps a decoded URL path to a file beneath the root. "/" and
// directories resolve to their index.html.
func (h *Handler) Resolve(urlPath string) (string, error) {
	full := filepath.Join(h.root, filepath.FromSlash(urlPath))
	if full != h.root && !strings.HasPrefix(full, h.root+string(filepath.Separator)) {
		return "", ErrForbidden
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", ErrNotFound
	}
	if info.IsDir() {
		full = filepath.Join(full, indexFile)
	}
	return full, nil
}

// Serve answers any request no route matched. Unknown API paths get the
// JSON 404 envelope instead of a file lookup.
func (h *Handler) Serve(c *gin.Context) {
	urlPath := c.Request.URL.Path
	if strings.HasPrefix(urlPath, apiPrefix) {
		response.NotFound(c)
		return
	}

	full, err := h.Resolve(urlPath)
	if errors.Is(err, ErrForbidden) {
		h.l.Warnf(c.Request.Context(), "static.Serve: rejected %q", urlPath)
		c.Status(http.StatusForbidden)
		return
	}
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	switch {
	case filepath.Base(full) == serviceWorker:
		c.Header("Service-Worker-Allowed", "/")
		c.Header("Cache-Control", "no-cache")
	case filepath.Ext(full) == ".html":
		c.Header("Cache-Control", "no-cache")
	}
	c.Data(http.StatusOK, ContentType(full), data)
}
