package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketing-cms/internal/core/auth"
	"marketing-cms/internal/core/cache"
	"marketing-cms/internal/core/config"
	"marketing-cms/internal/core/database"
	"marketing-cms/internal/core/logger"
	"marketing-cms/internal/core/server"
	"marketing-cms/internal/domain"
	"marketing-cms/internal/repo"
	"marketing-cms/internal/scheduler"
	"marketing-cms/internal/transport/http/router"
	"marketing-cms/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.TokenTTLHour) * time.Hour,
	}

	cc := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	users := repo.NewUsers(db)
	if err := seedAdmin(users, log); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}

	deps := router.Deps{
		Cfg:   cfg,
		Log:   log,
		JWT:   jwter,
		Cache: cc,

		Users:       users,
		Articles:    repo.NewArticles(db),
		CaseStudies: repo.NewCaseStudies(db),
		Events:      repo.NewEvents(db),
		Banners:     repo.NewBanners(db),
		Media:       repo.NewMedia(db),
		Publisher:   repo.NewPublisher(db),

		ArticleCategories:     repo.NewTaxonomies[domain.ArticleCategory](db, repo.ArticleCategoryUsage()),
		ArticleTags:           repo.NewTaxonomies[domain.ArticleTag](db, repo.ArticleTagUsage()),
		Services:              repo.NewTaxonomies[domain.Service](db, repo.ServiceUsage()),
		Industries:            repo.NewTaxonomies[domain.Industry](db, repo.IndustryUsage()),
		Solutions:             repo.NewTaxonomies[domain.Solution](db, repo.SolutionUsage()),
		Capabilities:          repo.NewTaxonomies[domain.Capability](db, repo.CapabilityUsage()),
		CaseStudyCategories:   repo.NewTaxonomies[domain.CaseStudyCategory](db, repo.CaseStudyCategoryUsage()),
		CaseStudyTechnologies: repo.NewTaxonomies[domain.CaseStudyTechnology](db, repo.CaseStudyTechnologyUsage()),
	}

	sched := scheduler.New(deps.Publisher, log)
	if err := sched.Start(cfg.Scheduler.CronExpr); err != nil {
		log.Fatal("scheduler start failed", zap.Error(err))
	}

	r := router.New(deps)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("cms api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("cms", baseURL+"/api/cms"),
		zap.String("public", baseURL+"/api/public"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("cms api start FAILED", zap.Error(err))
		}
	}()
	log.Info("cms api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = cc.Close()
	_ = database.Close(db)
	log.Info("cms api stopped gracefully")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Media{},
		&domain.ArticleCategory{},
		&domain.ArticleTag{},
		&domain.Service{},
		&domain.Industry{},
		&domain.Solution{},
		&domain.Capability{},
		&domain.CaseStudyCategory{},
		&domain.CaseStudyTechnology{},
		&domain.Article{},
		&domain.ArticleTagLink{},
		&domain.CaseStudy{},
		&domain.CaseStudyTechLink{},
		&domain.CaseStudyImage{},
		&domain.Event{},
		&domain.EventImage{},
		&domain.Banner{},
	)
}

// seedAdmin creates the initial admin account on an empty users table.
// Credentials come from ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD with
// development defaults.
func seedAdmin(users *repo.Users, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "changeme123")

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         "Administrator",
		Username:     username,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if err := users.Create(ctx, u); err != nil {
		return err
	}
	log.Info("seeded initial admin account", zap.String("username", username))
	return nil
}

// newLogger adds a rotated file sink when log.file is configured.
func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.New(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
