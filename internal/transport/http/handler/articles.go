package handler

import (
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

type ArticleHandler struct {
	articles *repo.Articles
	log      *zap.Logger
	prod     bool
}

func NewArticles(articles *repo.Articles, log *zap.Logger, prod bool) *ArticleHandler {
	return &ArticleHandler{articles: articles, log: log, prod: prod}
}

// LoadOwned backs the ownership middleware for article mutation routes.
func (h *ArticleHandler) LoadOwned(c *gin.Context, id string) (middleware.OwnedResource, error) {
	a, err := h.articles.FindByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return a, nil
}

func (h *ArticleHandler) List(c *gin.Context) {
	spec := query.ArticleSpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.ArticleFilter{
		Status:       c.Query("status"),
		CategoryID:   c.Query("categoryId"),
		CategorySlug: c.Query("categorySlug"),
		TagSlug:      c.Query("tag"),
		Search:       c.Query("search"),
	}
	if v, ok := query.ParseBool(c.Query("featured")); ok {
		f.Featured = &v
	}

	items, total, err := h.articles.List(c.Request.Context(), f, page, order)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to list articles", err)
		return
	}
	resp.List(c, items, query.NewMeta(total, page))
}

func (h *ArticleHandler) Get(c *gin.Context) {
	a, err := h.articles.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load article", err)
		return
	}
	if a == nil {
		resp.NotFound(c, "Article not found")
		return
	}
	resp.OK(c, a, "")
}

func (h *ArticleHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.ArticleRules.Validate(payload, false); len(errs) > 0 {
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
	taken, err := h.articles.SlugTaken(c.Request.Context(), slug, "")
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check slug", err)
		return
	}
	if taken {
		resp.Conflict(c, "Slug already in use")
		return
	}

	tags, err := utils.ParseOrderedList("tags", payload["tags"])
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	keywords, err := utils.ParseStringList("seoKeywords", payload["seoKeywords"])
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a := &domain.Article{
		ID:          utils.NewID(),
		Title:       title,
		Slug:        slug,
		Status:      domain.StatusDraft,
		SEOKeywords: keywords,
		CreatedByID: caller.ID,
	}
	if v, ok := strField(payload, "excerpt"); ok {
		a.Excerpt = v
	}
	if v, ok := strField(payload, "content"); ok {
		a.Content = utils.SanitizeHTML(v)
	}
	if v, ok := strField(payload, "metaTitle"); ok {
		a.MetaTitle = v
	}
	if v, ok := strField(payload, "metaDescription"); ok {
		a.MetaDescription = v
	}
	if v, ok := boolField(payload, "isFeatured"); ok {
		a.IsFeatured = v
	}
	if v, present := nullableStrField(payload, "categoryId"); present {
		a.CategoryID = v
	}
	if v, present := nullableStrField(payload, "thumbnailId"); present {
		a.ThumbnailID = v
	}
	if msg := h.applySchedule(payload, a); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	if err := h.articles.Create(c.Request.Context(), a, tags); err != nil {
		internalError(c, h.log, h.prod, "Failed to create article", err)
		return
	}
	resp.Created(c, a, "Article created")
}

func (h *ArticleHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	a, _ := middleware.LoadedResource(c).(*domain.Article)
	if a == nil {
		resp.NotFound(c, "Article not found")
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.ArticleRules.Validate(payload, true); len(errs) > 0 {
		resp.BadRequest(c, errs[0])
		return
	}

	if v, ok := strField(payload, "title"); ok {
		a.Title = v
	}
	if raw, ok := strField(payload, "slug"); ok {
		slug := utils.ResolveSlug(raw, a.Title)
		if slug == "" {
			resp.BadRequest(c, "Slug is required")
			return
		}
		taken, err := h.articles.SlugTaken(c.Request.Context(), slug, a.ID)
		if err != nil {
			internalError(c, h.log, h.prod, "Failed to check slug", err)
			return
		}
		if taken {
			resp.Conflict(c, "Slug already in use")
			return
		}
		a.Slug = slug
	}
	if v, ok := strField(payload, "excerpt"); ok {
		a.Excerpt = v
	}
	if v, ok := strField(payload, "content"); ok {
		a.Content = utils.SanitizeHTML(v)
	}
	if v, ok := strField(payload, "metaTitle"); ok {
		a.MetaTitle = v
	}
	if v, ok := strField(payload, "metaDescription"); ok {
		a.MetaDescription = v
	}
	if v, ok := boolField(payload, "isFeatured"); ok {
		a.IsFeatured = v
	}
	if v, present := nullableStrField(payload, "categoryId"); present {
		a.CategoryID = v
	}
	if v, present := nullableStrField(payload, "thumbnailId"); present {
		a.ThumbnailID = v
	}
	if msg := h.applySchedule(payload, a); msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	if raw, ok := payload["seoKeywords"]; ok {
		keywords, err := utils.ParseStringList("seoKeywords", raw)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		a.SEOKeywords = keywords
	}

	var tags []utils.OrderedRef
	if _, hasTags := payload["tags"]; hasTags {
		parsed, err := utils.ParseOrderedList("tags", payload["tags"])
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		if parsed == nil {
			parsed = []utils.OrderedRef{}
		}
		tags = parsed
	}

	a.UpdatedByID = &caller.ID
	if err := h.articles.Update(c.Request.Context(), a, tags); err != nil {
		internalError(c, h.log, h.prod, "Failed to update article", err)
		return
	}
	resp.OK(c, a, "Article updated")
}

// applySchedule folds status/publishedAt/scheduledAt payload fields into the
// model. Scheduled content needs a schedule time; publishing without an
// explicit publishedAt stamps now.
func (h *ArticleHandler) applySchedule(payload map[string]any, a *domain.Article) string {
	if v, ok := strField(payload, "status"); ok {
		a.Status = v
	}
	if t, present, valid := timeField(payload, "scheduledAt"); present {
		if !valid {
			return "Invalid scheduledAt"
		}
		a.ScheduledAt = t
	}
	if t, present, valid := timeField(payload, "publishedAt"); present {
		if !valid {
			return "Invalid publishedAt"
		}
		a.PublishedAt = t
	}
	if a.Status == domain.StatusScheduled && a.ScheduledAt == nil {
		return "scheduledAt is required for scheduled content"
	}
	if a.Status == domain.StatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}
	return ""
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	a, _ := middleware.LoadedResource(c).(*domain.Article)
	if a == nil {
		resp.NotFound(c, "Article not found")
		return
	}
	if err := h.articles.SoftDelete(c.Request.Context(), a.ID); err != nil {
		internalError(c, h.log, h.prod, "Failed to delete article", err)
		return
	}
	resp.OK(c, gin.H{"id": a.ID}, "Article deleted")
}

func (h *ArticleHandler) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		resp.BadRequest(c, "ids is required")
		return
	}
	deleted, err := h.articles.BulkSoftDelete(c.Request.Context(), req.IDs)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to delete articles", err)
		return
	}
	resp.OK(c, gin.H{"deleted": deleted}, "Articles deleted")
}
