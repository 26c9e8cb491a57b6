package handler

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketing-cms/internal/core/cache"
	"marketing-cms/internal/domain"
	"marketing-cms/internal/query"
	"marketing-cms/internal/repo"
	resp "marketing-cms/internal/transport/http/response"
)

// cachedList is the cache value for public listings: rows plus the meta block
// so a hit reproduces the response byte for byte.
type cachedList[T any] struct {
	Items []T        `json:"items"`
	Meta  query.Meta `json:"meta"`
}

const publicListTTL = time.Minute

// PublicHandler serves the unauthenticated site endpoints. Only published
// content (published_at in the past) is visible; article and case-study
// listings are cached in redis for a minute.
type PublicHandler struct {
	articles *repo.Articles
	studies  *repo.CaseStudies
	events   *repo.Events
	banners  *repo.Banners
	cache    *cache.Cache
	log      *zap.Logger
	prod     bool
}

func NewPublic(articles *repo.Articles, studies *repo.CaseStudies, events *repo.Events,
	banners *repo.Banners, cc *cache.Cache, log *zap.Logger, prod bool) *PublicHandler {
	return &PublicHandler{
		articles: articles, studies: studies, events: events,
		banners: banners, cache: cc, log: log, prod: prod,
	}
}

func listKey(entity string, q url.Values) string {
	return fmt.Sprintf("public:%s:%s", entity, q.Encode())
}

func (h *PublicHandler) publicError(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	resp.PublicError(c, 500, msg)
}

func (h *PublicHandler) ListArticles(c *gin.Context) {
	spec := query.PublicArticleSpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.ArticleFilter{
		Published:    true,
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		Search:       c.Query("search"),
	}
	if v, ok := query.ParseBool(c.Query("featured")); ok {
		f.Featured = &v
	}

	out, err := cache.GetOrLoadJSON(h.cache, c.Request.Context(),
		listKey("articles", c.Request.URL.Query()), publicListTTL,
		func(ctx context.Context) (*cachedList[domain.Article], error) {
			items, total, err := h.articles.List(ctx, f, page, order)
			if err != nil {
				return nil, err
			}
			return &cachedList[domain.Article]{Items: items, Meta: query.NewMeta(total, page)}, nil
		})
	if err != nil {
		h.publicError(c, "Failed to list articles", err)
		return
	}
	resp.PublicList(c, out.Items, out.Meta)
}

func (h *PublicHandler) GetArticle(c *gin.Context) {
	a, err := h.articles.FindPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.publicError(c, "Failed to load article", err)
		return
	}
	if a == nil {
		resp.PublicError(c, 404, "Article not found")
		return
	}
	resp.PublicOK(c, a)
}

func (h *PublicHandler) ListCaseStudies(c *gin.Context) {
	spec := query.PublicCaseStudySpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.CaseStudyFilter{
		Published:    true,
		IndustrySlug: c.Query("industry"),
		ServiceSlug:  c.Query("service"),
		Search:       c.Query("search"),
	}
	if v, ok := query.ParseBool(c.Query("featured")); ok {
		f.Featured = &v
	}

	out, err := cache.GetOrLoadJSON(h.cache, c.Request.Context(),
		listKey("case-studies", c.Request.URL.Query()), publicListTTL,
		func(ctx context.Context) (*cachedList[domain.CaseStudy], error) {
			items, total, err := h.studies.List(ctx, f, page, order)
			if err != nil {
				return nil, err
			}
			return &cachedList[domain.CaseStudy]{Items: items, Meta: query.NewMeta(total, page)}, nil
		})
	if err != nil {
		h.publicError(c, "Failed to list case studies", err)
		return
	}
	resp.PublicList(c, out.Items, out.Meta)
}

func (h *PublicHandler) GetCaseStudy(c *gin.Context) {
	cs, err := h.studies.FindPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.publicError(c, "Failed to load case study", err)
		return
	}
	if cs == nil {
		resp.PublicError(c, 404, "Case study not found")
		return
	}
	resp.PublicOK(c, cs)
}

func (h *PublicHandler) ListEvents(c *gin.Context) {
	spec := query.PublicEventSpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.EventFilter{
		Published:    true,
		EventType:    c.Query("eventType"),
		LocationType: c.Query("locationType"),
		Search:       c.Query("search"),
	}
	if v, ok := query.ParseBool(c.Query("upcoming")); ok {
		f.Upcoming = &v
	}

	items, total, err := h.events.List(c.Request.Context(), f, page, order)
	if err != nil {
		h.publicError(c, "Failed to list events", err)
		return
	}
	resp.PublicList(c, items, query.NewMeta(total, page))
}

func (h *PublicHandler) GetEvent(c *gin.Context) {
	e, err := h.events.FindPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.publicError(c, "Failed to load event", err)
		return
	}
	if e == nil {
		resp.PublicError(c, 404, "Event not found")
		return
	}
	resp.PublicOK(c, e)
}

// ListBanners returns active banners in display order.
func (h *PublicHandler) ListBanners(c *gin.Context) {
	page := query.Page{Page: 1, Limit: 50, Offset: 0}
	items, _, err := h.banners.List(c.Request.Context(),
		repo.BannerFilter{Active: true}, page, "sort_order asc")
	if err != nil {
		h.publicError(c, "Failed to list banners", err)
		return
	}
	resp.PublicOK(c, items)
}

// PublicTaxonomyList builds a handler returning active taxonomy rows in
// display order for site navigation.
func PublicTaxonomyList[T any, PT repo.TaxonomyPtr[T]](taxa *repo.Taxonomies[T, PT], log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		active := true
		page := query.Page{Page: 1, Limit: 100, Offset: 0}
		items, _, err := taxa.List(c.Request.Context(),
			repo.TaxonomyFilter{Active: &active}, page, "sort_order asc")
		if err != nil {
			log.Error("failed to list taxonomy", zap.Error(err), zap.String("path", c.FullPath()))
			resp.PublicError(c, 500, "Failed to list items")
			return
		}
		resp.PublicOK(c, items)
	}
}
