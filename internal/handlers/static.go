package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/bigclaw/claw-portal/internal/common"
)

// StaticHandler serves static assets (CSS, images) from the web directory.
type StaticHandler struct {
	logger *common.Logger
}

// NewStaticHandler creates a new static file handler.
func NewStaticHandler(logger *common.Logger) *StaticHandler {
	return &StaticHandler{logger: logger}
}

// FindWebDir locates the web assets directory.
func FindWebDir() string {
	dirs := []string{
		"./web",
		"../web",
		"../../web",
		".",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// ServeHTTP serves files under /static/ from <webdir>/static.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	staticDir := filepath.Join(FindWebDir(), "static")

	path := r.URL.Path[len("/static/"):]
	fullPath := filepath.Join(staticDir, path)

	// Security: prevent directory traversal
	absStaticDir, _ := filepath.Abs(staticDir)
	absFullPath, _ := filepath.Abs(fullPath)
	if len(absFullPath) < len(absStaticDir) || absFullPath[:len(absStaticDir)] != absStaticDir {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}
