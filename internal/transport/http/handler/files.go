package handler

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketing-cms/internal/domain"
	resp "marketing-cms/internal/transport/http/response"
)

// FileHandler serves uploaded files from disk. Paths are rebuilt from the
// route segments rather than taken from the raw URL, so nothing outside the
// upload root is reachable.
type FileHandler struct {
	root string
	log  *zap.Logger
	prod bool
}

func NewFiles(root string, log *zap.Logger, prod bool) *FileHandler {
	return &FileHandler{root: root, log: log, prod: prod}
}

func (h *FileHandler) Serve(c *gin.Context) {
	module := c.Param("module")
	year := c.Param("year")
	month := c.Param("month")
	name := c.Param("filename")

	if !slices.Contains(domain.UploadModules, module) {
		resp.PublicError(c, 404, "File not found")
		return
	}
	for _, seg := range []string{year, month, name} {
		if seg == "" || strings.Contains(seg, "..") || strings.ContainsAny(seg, `/\`) {
			resp.PublicError(c, 404, "File not found")
			return
		}
	}

	path := filepath.Join(h.root, module, year, month, name)
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		msg := "File not found"
		if !h.prod {
			msg = "File not found: " + filepath.ToSlash(filepath.Join(module, year, month, name))
		}
		resp.PublicError(c, 404, msg)
		return
	}
	c.File(path)
}
