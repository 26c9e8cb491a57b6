// Package router assembles the gin engine: hardening middleware, the
// credentialed /api/cms surface, the read-only /api/public surface, upload
// serving and the health/metrics endpoints.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"marketing-cms/internal/core/auth"
	"marketing-cms/internal/core/cache"
	"marketing-cms/internal/core/config"
	"marketing-cms/internal/domain"
	"marketing-cms/internal/repo"
	"marketing-cms/internal/transport/http/handler"
	"marketing-cms/internal/transport/http/middleware"
	resp "marketing-cms/internal/transport/http/response"
)

// Deps carries everything the routes need, built once in main.
type Deps struct {
	Cfg   *config.Config
	Log   *zap.Logger
	JWT   *auth.JWTer
	Cache *cache.Cache

	Users       *repo.Users
	Articles    *repo.Articles
	CaseStudies *repo.CaseStudies
	Events      *repo.Events
	Banners     *repo.Banners
	Media       *repo.MediaRepo
	Publisher   *repo.Publisher

	ArticleCategories     *repo.Taxonomies[domain.ArticleCategory, *domain.ArticleCategory]
	ArticleTags           *repo.Taxonomies[domain.ArticleTag, *domain.ArticleTag]
	Services              *repo.Taxonomies[domain.Service, *domain.Service]
	Industries            *repo.Taxonomies[domain.Industry, *domain.Industry]
	Solutions             *repo.Taxonomies[domain.Solution, *domain.Solution]
	Capabilities          *repo.Taxonomies[domain.Capability, *domain.Capability]
	CaseStudyCategories   *repo.Taxonomies[domain.CaseStudyCategory, *domain.CaseStudyCategory]
	CaseStudyTechnologies *repo.Taxonomies[domain.CaseStudyTechnology, *domain.CaseStudyTechnology]
}

func New(d Deps) *gin.Engine {
	prod := d.Cfg.Production()
	if prod {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(d.Log, time.RFC3339, true))
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodyBytes(25 << 20))
	r.Use(middleware.RateLimit(rate.Limit(200), 400))
	r.Use(middleware.ConcurrencyLimit(512))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	files := handler.NewFiles(d.Cfg.Uploads.Root, d.Log, prod)
	r.GET("/uploads/:module/:year/:month/:filename", files.Serve)

	mountCMS(r, d, prod)
	mountPublic(r, d, prod)
	return r
}

func mountCMS(r *gin.Engine, d Deps, prod bool) {
	authH := handler.NewAuth(d.Users, d.JWT, d.Log, prod)
	userH := handler.NewUsers(d.Users, d.Log, prod)
	articleH := handler.NewArticles(d.Articles, d.Log, prod)
	studyH := handler.NewCaseStudies(d.CaseStudies, d.Log, prod)
	eventH := handler.NewEvents(d.Events, d.Log, prod)
	bannerH := handler.NewBanners(d.Banners, d.Log, prod)
	mediaH := handler.NewMedia(d.Media, d.Cfg.Uploads.Root, d.Log, prod)

	cms := r.Group("/api/cms")
	cms.Use(middleware.AccessLog(d.Log))
	cms.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.App.CORS.CMSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cms.POST("/auth/login", authH.Login)

	authed := cms.Group("")
	authed.Use(middleware.Authenticate(d.JWT, d.Users))
	authed.POST("/auth/logout", authH.Logout)
	authed.GET("/auth/me", authH.Me)

	users := authed.Group("/users")
	{
		users.GET("", middleware.AdminOnly(), userH.List)
		users.GET("/:id", middleware.AdminOnly(), userH.Get)
		users.POST("", middleware.AdminOnly(), userH.Register)
		users.PUT("/:id", middleware.AnyAuthenticated(), userH.Update)
		users.DELETE("/:id", middleware.AdminOnly(), userH.Delete)
	}

	articles := authed.Group("/articles")
	{
		articles.GET("", middleware.AnyAuthenticated(), articleH.List)
		articles.GET("/:id", middleware.AnyAuthenticated(), articleH.Get)
		articles.POST("", middleware.MarketingOnly(), articleH.Create)
		articles.PUT("/:id", middleware.MarketingOnly(), middleware.RequireOwnership(articleH.LoadOwned), articleH.Update)
		articles.DELETE("/bulk", middleware.MarketingOnly(), articleH.BulkDelete)
		articles.DELETE("/:id", middleware.MarketingOnly(), middleware.RequireOwnership(articleH.LoadOwned), articleH.Delete)
	}

	studies := authed.Group("/case-studies")
	{
		studies.GET("", middleware.AnyAuthenticated(), studyH.List)
		studies.GET("/:id", middleware.AnyAuthenticated(), studyH.Get)
		studies.POST("", middleware.TechnicalOnly(), studyH.Create)
		studies.PUT("/:id", middleware.TechnicalOnly(), middleware.RequireOwnership(studyH.LoadOwned), studyH.Update)
		studies.DELETE("/bulk", middleware.TechnicalOnly(), studyH.BulkDelete)
		studies.DELETE("/:id", middleware.TechnicalOnly(), middleware.RequireOwnership(studyH.LoadOwned), studyH.Delete)
	}

	events := authed.Group("/events")
	{
		events.GET("", middleware.AnyAuthenticated(), eventH.List)
		events.GET("/:id", middleware.AnyAuthenticated(), eventH.Get)
		events.POST("", middleware.MarketingOnly(), eventH.Create)
		events.PUT("/:id", middleware.MarketingOnly(), middleware.RequireOwnership(eventH.LoadOwned), eventH.Update)
		events.DELETE("/bulk", middleware.MarketingOnly(), eventH.BulkDelete)
		events.DELETE("/:id", middleware.MarketingOnly(), middleware.RequireOwnership(eventH.LoadOwned), eventH.Delete)
	}

	banners := authed.Group("/banners")
	{
		banners.GET("", middleware.AnyAuthenticated(), bannerH.List)
		banners.GET("/:id", middleware.AnyAuthenticated(), bannerH.Get)
		banners.POST("", middleware.MarketingOnly(), bannerH.Create)
		banners.PUT("/:id", middleware.MarketingOnly(), middleware.RequireOwnership(bannerH.LoadOwned), bannerH.Update)
		banners.DELETE("/:id", middleware.MarketingOnly(), middleware.RequireOwnership(bannerH.LoadOwned), bannerH.Delete)
	}

	media := authed.Group("/media")
	{
		media.GET("", middleware.AnyAuthenticated(), mediaH.List)
		media.GET("/:id", middleware.AnyAuthenticated(), mediaH.Get)
		media.POST("/upload", middleware.AllEditors(), mediaH.Upload)
		media.PUT("/:id", middleware.AllEditors(), mediaH.Update)
		media.DELETE("/bulk", middleware.AllEditors(), mediaH.BulkDelete)
		media.DELETE("/:id", middleware.AllEditors(), mediaH.Delete)
	}

	mountTaxonomy(authed, "/article-categories", handler.NewTaxonomy(d.ArticleCategories, "Category", d.Log, prod), middleware.MarketingOnly)
	mountTaxonomy(authed, "/article-tags", handler.NewTaxonomy(d.ArticleTags, "Tag", d.Log, prod), middleware.MarketingOnly)
	mountTaxonomy(authed, "/services", handler.NewTaxonomy(d.Services, "Service", d.Log, prod), middleware.TechnicalOnly)
	mountTaxonomy(authed, "/industries", handler.NewTaxonomy(d.Industries, "Industry", d.Log, prod), middleware.TechnicalOnly)
	mountTaxonomy(authed, "/solutions", handler.NewTaxonomy(d.Solutions, "Solution", d.Log, prod), middleware.TechnicalOnly)
	mountTaxonomy(authed, "/capabilities", handler.NewTaxonomy(d.Capabilities, "Capability", d.Log, prod), middleware.TechnicalOnly)
	mountTaxonomy(authed, "/case-study-categories", handler.NewTaxonomy(d.CaseStudyCategories, "Category", d.Log, prod), middleware.TechnicalOnly)
	mountTaxonomy(authed, "/case-study-technologies", handler.NewTaxonomy(d.CaseStudyTechnologies, "Technology", d.Log, prod), middleware.TechnicalOnly)
}

// mountTaxonomy wires the uniform CRUD surface every taxonomy shares.
func mountTaxonomy[T any, PT repo.TaxonomyPtr[T]](g *gin.RouterGroup, path string,
	h *handler.TaxonomyHandler[T, PT], write func() gin.HandlerFunc) {
	grp := g.Group(path)
	grp.GET("", middleware.AnyAuthenticated(), h.List)
	grp.GET("/:id", middleware.AnyAuthenticated(), h.Get)
	grp.POST("", write(), h.Create)
	grp.PUT("/:id", write(), h.Update)
	grp.DELETE("/:id", write(), h.Delete)
}

func mountPublic(r *gin.Engine, d Deps, prod bool) {
	publicH := handler.NewPublic(d.Articles, d.CaseStudies, d.Events, d.Banners, d.Cache, d.Log, prod)

	pub := r.Group("/api/public")
	pub.Use(cors.New(cors.Config{
		AllowOrigins: d.Cfg.App.CORS.PublicOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	pub.GET("/articles", publicH.ListArticles)
	pub.GET("/articles/:slug", publicH.GetArticle)
	pub.GET("/case-studies", publicH.ListCaseStudies)
	pub.GET("/case-studies/:slug", publicH.GetCaseStudy)
	pub.GET("/events", publicH.ListEvents)
	pub.GET("/events/:slug", publicH.GetEvent)
	pub.GET("/banners", publicH.ListBanners)

	pub.GET("/article-categories", handler.PublicTaxonomyList(d.ArticleCategories, d.Log))
	pub.GET("/article-tags", handler.PublicTaxonomyList(d.ArticleTags, d.Log))
	pub.GET("/services", handler.PublicTaxonomyList(d.Services, d.Log))
	pub.GET("/industries", handler.PublicTaxonomyList(d.Industries, d.Log))
	pub.GET("/solutions", handler.PublicTaxonomyList(d.Solutions, d.Log))
	pub.GET("/capabilities", handler.PublicTaxonomyList(d.Capabilities, d.Log))
	pub.GET("/case-study-categories", handler.PublicTaxonomyList(d.CaseStudyCategories, d.Log))
	pub.GET("/case-study-technologies", handler.PublicTaxonomyList(d.CaseStudyTechnologies, d.Log))

	r.NoRoute(func(c *gin.Context) { resp.NotFound(c, "Route not found") })
}
