package handler

import (
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

type BannerHandler struct {
	banners *repo.Banners
	log     *zap.Logger
	prod    bool
}

func NewBanners(banners *repo.Banners, log *zap.Logger, prod bool) *BannerHandler {
	return &BannerHandler{banners: banners, log: log, prod: prod}
}

func (h *BannerHandler) LoadOwned(c *gin.Context, id string) (middleware.OwnedResource, error) {
	b, err := h.banners.FindByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return b, nil
}

func (h *BannerHandler) List(c *gin.Context) {
	spec := query.BannerSpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.BannerFilter{Status: c.Query("status"), Search: c.Query("search")}
	items, total, err := h.banners.List(c.Request.Context(), f, page, order)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to list banners", err)
		return
	}
	resp.List(c, items, query.NewMeta(total, page))
}

func (h *BannerHandler) Get(c *gin.Context) {
	b, err := h.banners.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load banner", err)
		return
	}
	if b == nil {
		resp.NotFound(c, "Banner not found")
		return
	}
	resp.OK(c, b, "")
}

func (h *BannerHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.BannerRules.Validate(payload, false); len(errs) > 0 {
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
	taken, err := h.banners.SlugTaken(c.Request.Context(), slug, "")
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check slug", err)
		return
	}
	if taken {
		resp.Conflict(c, "Slug already in use")
		return
	}

	b := &domain.Banner{
		ID:          utils.NewID(),
		Name:        name,
		Slug:        slug,
		Status:      domain.BannerStatusDraft,
		CreatedByID: caller.ID,
	}
	h.applyFields(payload, b)

	if err := h.banners.Create(c.Request.Context(), b); err != nil {
		internalError(c, h.log, h.prod, "Failed to create banner", err)
		return
	}
	resp.Created(c, b, "Banner created")
}

func (h *BannerHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	b, _ := middleware.LoadedResource(c).(*domain.Banner)
	if b == nil {
		resp.NotFound(c, "Banner not found")
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.BannerRules.Validate(payload, true); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}

	if v, ok := strField(payload, "name"); ok {
		b.Name = v
	}
	if raw, ok := strField(payload, "slug"); ok {
		slug := utils.ResolveSlug(raw, b.Name)
		if slug == "" {
			resp.BadRequest(c, "Slug is required")
			return
		}
		taken, err := h.banners.SlugTaken(c.Request.Context(), slug, b.ID)
		if err != nil {
			internalError(c, h.log, h.prod, "Failed to check slug", err)
			return
		}
		if taken {
			resp.Conflict(c, "Slug already in use")
			return
		}
		b.Slug = slug
	}
	h.applyFields(payload, b)

	b.UpdatedByID = &caller.ID
	if err := h.banners.Update(c.Request.Context(), b); err != nil {
		internalError(c, h.log, h.prod, "Failed to update banner", err)
		return
	}
	resp.OK(c, b, "Banner updated")
}

func (h *BannerHandler) applyFields(payload map[string]any, b *domain.Banner) {
	if v, ok := strField(payload, "heading"); ok {
		b.Heading = v
	}
	if v, ok := strField(payload, "subheading"); ok {
		b.Subheading = v
	}
	if v, ok := strField(payload, "ctaLabel"); ok {
		b.CTALabel = v
	}
	if v, ok := strField(payload, "ctaUrl"); ok {
		b.CTAURL = v
	}
	if v, ok := strField(payload, "backgroundColor"); ok {
		b.BackgroundColor = v
	}
	if v, ok := strField(payload, "status"); ok {
		b.Status = v
	}
	if v, ok := intField(payload, "order"); ok {
		b.Order = v
	}
	if v, present := nullableStrField(payload, "imageId"); present {
		b.ImageID = v
	}
}

func (h *BannerHandler) Delete(c *gin.Context) {
	b, _ := middleware.LoadedResource(c).(*domain.Banner)
	if b == nil {
		resp.NotFound(c, "Banner not found")
		return
	}
	if err := h.banners.SoftDelete(c.Request.Context(), b.ID); err != nil {
		internalError(c, h.log, h.prod, "Failed to delete banner", err)
		return
	}
	resp.OK(c, gin.H{"id": b.ID}, "Banner deleted")
}
