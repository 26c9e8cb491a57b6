package handler

import (
	"encoding/json"
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

type CaseStudyHandler struct {
	studies *repo.CaseStudies
	log     *zap.Logger
	prod    bool
}

func NewCaseStudies(studies *repo.CaseStudies, log *zap.Logger, prod bool) *CaseStudyHandler {
	return &CaseStudyHandler{studies: studies, log: log, prod: prod}
}

func (h *CaseStudyHandler) LoadOwned(c *gin.Context, id string) (middleware.OwnedResource, error) {
	cs, err := h.studies.FindByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, nil
	}
	return cs, nil
}

func (h *CaseStudyHandler) List(c *gin.Context) {
	spec := query.CaseStudySpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.CaseStudyFilter{
		Status:       c.Query("status"),
		CategoryID:   c.Query("categoryId"),
		ServiceID:    c.Query("serviceId"),
		IndustryID:   c.Query("industryId"),
		SolutionID:   c.Query("solutionId"),
		CapabilityID: c.Query("capabilityId"),
		Search:       c.Query("search"),
	}
	if v, ok := query.ParseBool(c.Query("featured")); ok {
		f.Featured = &v
	}

	items, total, err := h.studies.List(c.Request.Context(), f, page, order)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to list case studies", err)
		return
	}
	resp.List(c, items, query.NewMeta(total, page))
}

func (h *CaseStudyHandler) Get(c *gin.Context) {
	cs, err := h.studies.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load case study", err)
		return
	}
	if cs == nil {
		resp.NotFound(c, "Case study not found")
		return
	}
	resp.OK(c, cs, "")
}

func (h *CaseStudyHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.CaseStudyRules.Validate(payload, false); len(errs) > 0 {
		resp.BadRequest(c, errs[0])
		return
	}

	title, _ := strField(payload, "title")
	rawSlug, _ := strField(payload, "slug")
	slug := utils.ResolveSlug(rawSlug, title)
	if slug == "" {
		resp.BadRequest(c, "Slug is required")
		return
	}
	taken, err := h.studies.SlugTaken(c.Request.Context(), slug, "")
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check slug", err)
		return
	}
	if taken {
		resp.Conflict(c, "Slug already in use")
		return
	}

	techs, err := utils.ParseOrderedList("technologies", payload["technologies"])
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	images, err := utils.ParseOrderedList("images", payload["images"])
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	keywords, err := utils.ParseStringList("seoKeywords", payload["seoKeywords"])
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cs := &domain.CaseStudy{
		ID:          utils.NewID(),
		Title:       title,
		Slug:        slug,
		Status:      domain.StatusDraft,
		SEOKeywords: keywords,
		CreatedByID: caller.ID,
	}
	if msg := h.applyFields(payload, cs); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	if err := h.studies.Create(c.Request.Context(), cs, techs, images); err != nil {
		internalError(c, h.log, h.prod, "Failed to create case study", err)
		return
	}
	resp.Created(c, cs, "Case study created")
}

func (h *CaseStudyHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	cs, _ := middleware.LoadedResource(c).(*domain.CaseStudy)
	if cs == nil {
		resp.NotFound(c, "Case study not found")
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.CaseStudyRules.Validate(payload, true); len(errs) > 0 {
		resp.BadRequest(c, errs[0])
		return
	}

	if v, ok := strField(payload, "title"); ok {
		cs.Title = v
	}
	if raw, ok := strField(payload, "slug"); ok {
		slug := utils.ResolveSlug(raw, cs.Title)
		if slug == "" {
			resp.BadRequest(c, "Slug is required")
			return
		}
		taken, err := h.studies.SlugTaken(c.Request.Context(), slug, cs.ID)
		if err != nil {
			internalError(c, h.log, h.prod, "Failed to check slug", err)
			return
		}
		if taken {
			resp.Conflict(c, "Slug already in use")
			return
		}
		cs.Slug = slug
	}
	if msg := h.applyFields(payload, cs); msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	if raw, ok := payload["seoKeywords"]; ok {
		keywords, err := utils.ParseStringList("seoKeywords", raw)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		cs.SEOKeywords = keywords
	}

	var techs, images []utils.OrderedRef
	if _, has := payload["technologies"]; has {
		parsed, err := utils.ParseOrderedList("technologies", payload["technologies"])
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		if parsed == nil {
			parsed = []utils.OrderedRef{}
		}
		techs = parsed
	}
	if _, has := payload["images"]; has {
		parsed, err := utils.ParseOrderedList("images", payload["images"])
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		if parsed == nil {
			parsed = []utils.OrderedRef{}
		}
		images = parsed
	}

	cs.UpdatedByID = &caller.ID
	if err := h.studies.Update(c.Request.Context(), cs, techs, images); err != nil {
		internalError(c, h.log, h.prod, "Failed to update case study", err)
		return
	}
	resp.OK(c, cs, "Case study updated")
}

// applyFields copies scalar payload fields shared by create and update.
func (h *CaseStudyHandler) applyFields(payload map[string]any, cs *domain.CaseStudy) string {
	if v, ok := strField(payload, "summary"); ok {
		cs.Summary = v
	}
	if v, ok := strField(payload, "content"); ok {
		cs.Content = utils.SanitizeHTML(v)
	}
	if v, ok := strField(payload, "clientName"); ok {
		cs.ClientName = v
	}
	if v, ok := strField(payload, "metaTitle"); ok {
		cs.MetaTitle = v
	}
	if v, ok := strField(payload, "metaDescription"); ok {
		cs.MetaDescription = v
	}
	if v, ok := boolField(payload, "isFeatured"); ok {
		cs.IsFeatured = v
	}
	if v, present := nullableStrField(payload, "categoryId"); present {
		cs.CategoryID = v
	}
	if v, present := nullableStrField(payload, "serviceId"); present {
		cs.ServiceID = v
	}
	if v, present := nullableStrField(payload, "industryId"); present {
		cs.IndustryID = v
	}
	if v, present := nullableStrField(payload, "solutionId"); present {
		cs.SolutionID = v
	}
	if v, present := nullableStrField(payload, "capabilityId"); present {
		cs.CapabilityID = v
	}
	if v, present := nullableStrField(payload, "thumbnailId"); present {
		cs.ThumbnailID = v
	}
	if raw, ok := payload["outcomes"]; ok {
		b, err := json.Marshal(raw)
		if err != nil {
			return "Invalid outcomes format"
		}
		cs.Outcomes = b
	}

	if v, ok := strField(payload, "status"); ok {
		cs.Status = v
	}
	if t, present, valid := timeField(payload, "scheduledAt"); present {
		if !valid {
			return "Invalid scheduledAt"
		}
		cs.ScheduledAt = t
	}
	if t, present, valid := timeField(payload, "publishedAt"); present {
		if !valid {
			return "Invalid publishedAt"
		}
		cs.PublishedAt = t
	}
	if cs.Status == domain.StatusScheduled && cs.ScheduledAt == nil {
		return "scheduledAt is required for scheduled content"
	}
	if cs.Status == domain.StatusPublished && cs.PublishedAt == nil {
		now := time.Now()
		cs.PublishedAt = &now
	}
	return ""
}

func (h *CaseStudyHandler) Delete(c *gin.Context) {
	cs, _ := middleware.LoadedResource(c).(*domain.CaseStudy)
	if cs == nil {
		resp.NotFound(c, "Case study not found")
		return
	}
	if err := h.studies.SoftDelete(c.Request.Context(), cs.ID); err != nil {
		internalError(c, h.log, h.prod, "Failed to delete case study", err)
		return
	}
	resp.OK(c, gin.H{"id": cs.ID}, "Case study deleted")
}

func (h *CaseStudyHandler) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		resp.BadRequest(c, "ids is required")
		return
	}
	deleted, err := h.studies.BulkSoftDelete(c.Request.Context(), req.IDs)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to delete case studies", err)
		return
	}
	resp.OK(c, gin.H{"deleted": deleted}, "Case studies deleted")
}
