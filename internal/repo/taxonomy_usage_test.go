package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-cms/internal/domain"
	"marketing-cms/pkg/utils"
)

func TestArticleCategoryUsage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cat := &domain.ArticleCategory{TaxonomyFields: domain.TaxonomyFields{ID: utils.NewID(), Name: "News", Slug: "news"}}
	require.NoError(t, db.Create(cat).Error)
	unused := &domain.ArticleCategory{TaxonomyFields: domain.TaxonomyFields{ID: utils.NewID(), Name: "Empty", Slug: "empty"}}
	require.NoError(t, db.Create(unused).Error)

	seedArticle(t, db, &domain.Article{Title: "A", Slug: "a", CategoryID: &cat.ID})
	seedArticle(t, db, &domain.Article{Title: "B", Slug: "b", CategoryID: &cat.ID})

	usage, err := ArticleCategoryUsage()(ctx, db, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"articles": 2}, usage)

	// The delete guard only blocks referenced taxonomies.
	usage, err = ArticleCategoryUsage()(ctx, db, unused.ID)
	require.NoError(t, err)
	assert.Empty(t, usage)
}

func TestArticleTagUsageIgnoresDeletedArticles(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tag := &domain.ArticleTag{TaxonomyFields: domain.TaxonomyFields{ID: utils.NewID(), Name: "Go", Slug: "go"}}
	require.NoError(t, db.Create(tag).Error)
	a := seedArticle(t, db, &domain.Article{Title: "A", Slug: "a"})
	link := &domain.ArticleTagLink{ID: utils.NewID(), ArticleID: a.ID, TagID: tag.ID}
	require.NoError(t, db.Create(link).Error)

	usage, err := ArticleTagUsage()(ctx, db, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"articles": 1}, usage)

	// Soft-deleting the article drops its link from the count.
	require.NoError(t, NewArticles(db).SoftDelete(ctx, a.ID))
	usage, err = ArticleTagUsage()(ctx, db, tag.ID)
	require.NoError(t, err)
	assert.Empty(t, usage)
}
