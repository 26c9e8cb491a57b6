package handler

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketing-cms/internal/domain"
	"marketing-cms/internal/query"
	"marketing-cms/internal/repo"
	"marketing-cms/internal/transport/http/middleware"
	resp "marketing-cms/internal/transport/http/response"
	"marketing-cms/internal/validate"
	"marketing-cms/pkg/utils"
)

const maxUploadBytes = 20 << 20

type MediaHandler struct {
	media      *repo.MediaRepo
	uploadRoot string
	log        *zap.Logger
	prod       bool
}

func NewMedia(media *repo.MediaRepo, uploadRoot string, log *zap.Logger, prod bool) *MediaHandler {
	return &MediaHandler{media: media, uploadRoot: uploadRoot, log: log, prod: prod}
}

func (h *MediaHandler) List(c *gin.Context) {
	spec := query.MediaSpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.MediaFilter{MimeType: c.Query("mimeType"), Search: c.Query("search")}
	items, total, err := h.media.List(c.Request.Context(), f, page, order)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to list media", err)
		return
	}
	resp.List(c, items, query.NewMeta(total, page))
}

func (h *MediaHandler) Get(c *gin.Context) {
	m, err := h.media.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load media", err)
		return
	}
	if m == nil {
		resp.NotFound(c, "Media not found")
		return
	}
	resp.OK(c, m, "")
}

// Upload stores the file under <root>/<module>/<year>/<month>/<uuid><ext> and
// records the row. The stored name is always a fresh uuid so client-supplied
// names never touch the filesystem.
func (h *MediaHandler) Upload(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	if file.Size > maxUploadBytes {
		resp.BadRequest(c, "File exceeds the 20MB upload limit")
		return
	}

	module := strings.TrimSpace(c.PostForm("module"))
	if module == "" {
		module = "media"
	}
	if !slices.Contains(domain.UploadModules, module) {
		resp.BadRequest(c, "Invalid upload module")
		return
	}

	now := time.Now()
	rel := filepath.Join(module, fmt.Sprintf("%d", now.Year()), fmt.Sprintf("%02d", int(now.Month())))
	ext := strings.ToLower(filepath.Ext(file.Filename))
	stored := utils.NewID() + ext

	dir := filepath.Join(h.uploadRoot, rel)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		internalError(c, h.log, h.prod, "Failed to prepare upload directory", err)
		return
	}
	dst := filepath.Join(dir, stored)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		internalError(c, h.log, h.prod, "Failed to store file", err)
		return
	}

	m := &domain.Media{
		ID:          utils.NewID(),
		FileName:    file.Filename,
		FilePath:    filepath.ToSlash(filepath.Join(rel, stored)),
		MimeType:    contentType(file),
		Size:        file.Size,
		URL:         "/uploads/" + filepath.ToSlash(filepath.Join(rel, stored)),
		AltText:     c.PostForm("altText"),
		Caption:     c.PostForm("caption"),
		CreatedByID: caller.ID,
	}
	if err := h.media.Create(c.Request.Context(), m); err != nil {
		h.removeFile(dst)
		internalError(c, h.log, h.prod, "Failed to save media", err)
		return
	}
	resp.Created(c, m, "File uploaded")
}

func contentType(file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Update edits metadata only; the stored file never changes.
func (h *MediaHandler) Update(c *gin.Context) {
	m, err := h.media.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load media", err)
		return
	}
	if m == nil {
		resp.NotFound(c, "Media not found")
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if errs := validate.MediaRules.Validate(payload, true); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}
	if v, ok := strField(payload, "altText"); ok {
		m.AltText = v
	}
	if v, ok := strField(payload, "caption"); ok {
		m.Caption = v
	}
	if err := h.media.Update(c.Request.Context(), m); err != nil {
		internalError(c, h.log, h.prod, "Failed to update media", err)
		return
	}
	resp.OK(c, m, "Media updated")
}

// Delete refuses while any content row still references the file, reporting
// the per-table counts. The row is removed first; disk cleanup is best effort.
func (h *MediaHandler) Delete(c *gin.Context) {
	m, err := h.media.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load media", err)
		return
	}
	if m == nil {
		resp.NotFound(c, "Media not found")
		return
	}

	usage, err := h.media.Usage(c.Request.Context(), m.ID)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check media usage", err)
		return
	}
	if len(usage) > 0 {
		resp.ConflictData(c, gin.H{"usage": usage}, "Media is in use and cannot be deleted")
		return
	}

	if err := h.media.HardDelete(c.Request.Context(), m.ID); err != nil {
		internalError(c, h.log, h.prod, "Failed to delete media", err)
		return
	}
	h.removeFile(filepath.Join(h.uploadRoot, filepath.FromSlash(m.FilePath)))
	resp.OK(c, gin.H{"id": m.ID}, "Media deleted")
}

// BulkDelete partitions the ids into deleted and blocked; in-use files are
// skipped rather than failing the whole request.
func (h *MediaHandler) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		resp.BadRequest(c, "ids is required")
		return
	}

	deleted := []string{}
	blocked := map[string]map[string]int64{}
	for _, id := range req.IDs {
		m, err := h.media.FindByID(c.Request.Context(), id)
		if err != nil {
			internalError(c, h.log, h.prod, "Failed to load media", err)
			return
		}
		if m == nil {
			continue
		}
		usage, err := h.media.Usage(c.Request.Context(), id)
		if err != nil {
			internalError(c, h.log, h.prod, "Failed to check media usage", err)
			return
		}
		if len(usage) > 0 {
			blocked[id] = usage
			continue
		}
		if err := h.media.HardDelete(c.Request.Context(), id); err != nil {
			internalError(c, h.log, h.prod, "Failed to delete media", err)
			return
		}
		h.removeFile(filepath.Join(h.uploadRoot, filepath.FromSlash(m.FilePath)))
		deleted = append(deleted, id)
	}
	resp.OK(c, gin.H{"deleted": deleted, "blocked": blocked}, "Media deleted")
}

func (h *MediaHandler) removeFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.log.Warn("failed to remove uploaded file", zap.String("path", path), zap.Error(err))
	}
}
