package repo

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketing-cms/internal/domain"
	"marketing-cms/pkg/utils"
)

// newTestDB opens an in-memory sqlite database with the content tables the
// repo tests touch.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.ArticleCategory{}, &domain.ArticleTag{},
		&domain.Article{}, &domain.ArticleTagLink{},
		&domain.CaseStudy{}, &domain.Event{},
	))
	return db
}

func seedArticle(t *testing.T, db *gorm.DB, a *domain.Article) *domain.Article {
	t.Helper()
	if a.ID == "" {
		a.ID = utils.NewID()
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func TestPublisherPromoteDue(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	due := seedArticle(t, db, &domain.Article{Title: "Due", Slug: "due", Status: domain.StatusScheduled, ScheduledAt: &past})
	notYet := seedArticle(t, db, &domain.Article{Title: "Later", Slug: "later", Status: domain.StatusScheduled, ScheduledAt: &future})
	draft := seedArticle(t, db, &domain.Article{Title: "Draft", Slug: "draft", Status: domain.StatusDraft})

	event := &domain.Event{ID: utils.NewID(), Title: "Summit", Slug: "summit", Status: domain.StatusScheduled, ScheduledAt: &past}
	require.NoError(t, db.Create(event).Error)

	promoted, err := NewPublisher(db).PromoteDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"articles": 1, "events": 1}, promoted)

	var got domain.Article
	require.NoError(t, db.First(&got, "id = ?", due.ID).Error)
	assert.Equal(t, domain.StatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
	assert.WithinDuration(t, now, *got.PublishedAt, time.Second)

	got = domain.Article{}
	require.NoError(t, db.First(&got, "id = ?", notYet.ID).Error)
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.Nil(t, got.PublishedAt)

	got = domain.Article{}
	require.NoError(t, db.First(&got, "id = ?", draft.ID).Error)
	assert.Equal(t, domain.StatusDraft, got.Status)

	var gotEvent domain.Event
	require.NoError(t, db.First(&gotEvent, "id = ?", event.ID).Error)
	assert.Equal(t, domain.StatusPublished, gotEvent.Status)

	// A second tick finds nothing left to promote.
	promoted, err = NewPublisher(db).PromoteDue(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, promoted)
}

func TestArticlesSlugTaken(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	r := NewArticles(db)

	a := seedArticle(t, db, &domain.Article{Title: "My Post", Slug: "my-post"})

	taken, err := r.SlugTaken(ctx, "my-post", "")
	require.NoError(t, err)
	assert.True(t, taken)

	// The row being updated does not conflict with itself.
	taken, err = r.SlugTaken(ctx, "my-post", a.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = r.SlugTaken(ctx, "other", "")
	require.NoError(t, err)
	assert.False(t, taken)

	// Soft-deleted rows release their slug.
	require.NoError(t, r.SoftDelete(ctx, a.ID))
	taken, err = r.SlugTaken(ctx, "my-post", "")
	require.NoError(t, err)
	assert.False(t, taken)
}
