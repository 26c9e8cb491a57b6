package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketing-cms/internal/query"
	"marketing-cms/internal/repo"
	resp "marketing-cms/internal/transport/http/response"
	"marketing-cms/internal/validate"
	"marketing-cms/pkg/utils"
)

// TaxonomyHandler serves all eight taxonomy tables through one generic
// implementation; only the repo, the display label, and the usage counter
// vary per instantiation.
type TaxonomyHandler[T any, PT repo.TaxonomyPtr[T]] struct {
	taxa  *repo.Taxonomies[T, PT]
	label string
	log   *zap.Logger
	prod  bool
}

func NewTaxonomy[T any, PT repo.TaxonomyPtr[T]](taxa *repo.Taxonomies[T, PT], label string, log *zap.Logger, prod bool) *TaxonomyHandler[T, PT] {
	return &TaxonomyHandler[T, PT]{taxa: taxa, label: label, log: log, prod: prod}
}

func (h *TaxonomyHandler[T, PT]) List(c *gin.Context) {
	spec := query.TaxonomySpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.TaxonomyFilter{Search: c.Query("search")}
	if v, ok := query.ParseBool(c.Query("active")); ok {
		f.Active = &v
	}

	items, total, err := h.taxa.List(c.Request.Context(), f, page, order)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to list "+h.label, err)
		return
	}
	resp.List(c, items, query.NewMeta(total, page))
}

func (h *TaxonomyHandler[T, PT]) Get(c *gin.Context) {
	item, err := h.taxa.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load "+h.label, err)
		return
	}
	if item == nil {
		resp.NotFound(c, h.label+" not found")
		return
	}
	resp.OK(c, item, "")
}

func (h *TaxonomyHandler[T, PT]) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.TaxonomyRules.Validate(payload, false); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}

	name, _ := strField(payload, "name")
	rawSlug, _ := strField(payload, "slug")
	slug := utils.ResolveSlug(rawSlug, name)
	if slug == "" {
		resp.BadRequest(c, "Slug is required")
		return
	}
	taken, err := h.taxa.SlugTaken(c.Request.Context(), slug, "")
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check slug", err)
		return
	}
	if taken {
		resp.Conflict(c, "Slug already in use")
		return
	}

	var item T
	pt := PT(&item)
	f := pt.Fields()
	f.ID = utils.NewID()
	f.Name = name
	f.Slug = slug
	f.Active = true
	if v, ok := intField(payload, "order"); ok {
		f.Order = v
	}
	if v, ok := boolField(payload, "active"); ok {
		f.Active = v
	}

	if err := h.taxa.Create(c.Request.Context(), pt); err != nil {
		internalError(c, h.log, h.prod, "Failed to create "+h.label, err)
		return
	}
	resp.Created(c, pt, h.label+" created")
}

func (h *TaxonomyHandler[T, PT]) Update(c *gin.Context) {
	item, err := h.taxa.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load "+h.label, err)
		return
	}
	if item == nil {
		resp.NotFound(c, h.label+" not found")
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.TaxonomyRules.Validate(payload, true); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}

	f := item.Fields()
	if v, ok := strField(payload, "name"); ok {
		f.Name = v
	}
	if raw, ok := strField(payload, "slug"); ok {
		slug := utils.ResolveSlug(raw, f.Name)
		if slug == "" {
			resp.BadRequest(c, "Slug is required")
			return
		}
		taken, err := h.taxa.SlugTaken(c.Request.Context(), slug, f.ID)
		if err != nil {
			internalError(c, h.log, h.prod, "Failed to check slug", err)
			return
		}
		if taken {
			resp.Conflict(c, "Slug already in use")
			return
		}
		f.Slug = slug
	}
	if v, ok := intField(payload, "order"); ok {
		f.Order = v
	}
	if v, ok := boolField(payload, "active"); ok {
		f.Active = v
	}

	if err := h.taxa.Update(c.Request.Context(), item); err != nil {
		internalError(c, h.log, h.prod, "Failed to update "+h.label, err)
		return
	}
	resp.OK(c, item, h.label+" updated")
}

// Delete refuses while content still references the row, reporting per-table
// counts.
func (h *TaxonomyHandler[T, PT]) Delete(c *gin.Context) {
	item, err := h.taxa.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load "+h.label, err)
		return
	}
	if item == nil {
		resp.NotFound(c, h.label+" not found")
		return
	}

	usage, err := h.taxa.Usage(c.Request.Context(), item.Fields().ID)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check usage", err)
		return
	}
	if len(usage) > 0 {
		resp.ConflictData(c, gin.H{"usage": usage}, h.label+" is in use and cannot be deleted")
		return
	}

	if err := h.taxa.SoftDelete(c.Request.Context(), item.Fields().ID); err != nil {
		internalError(c, h.log, h.prod, "Failed to delete "+h.label, err)
		return
	}
	resp.OK(c, gin.H{"id": item.Fields().ID}, h.label+" deleted")
}
