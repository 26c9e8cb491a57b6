package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketing-cms/internal/domain"
	"marketing-cms/internal/repo"
)

func newArticleRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Article{}, &domain.ArticleTagLink{}))

	h := NewArticles(repo.NewArticles(db), zap.NewNop(), false)
	r := gin.New()
	r.POST("/articles", func(c *gin.Context) {
		c.Set("currentUser", &domain.User{ID: "editor-1", Role: domain.RoleMarketingEditor})
	}, h.Create)
	return r, db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestArticleCreateSlugConflict(t *testing.T) {
	r, _ := newArticleRouter(t)

	w := postJSON(r, "/articles", `{"title":"My Post","content":"Body"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate detection is case-insensitive: the explicit slug normalizes
	// to the one already stored.
	w = postJSON(r, "/articles", `{"title":"Other","content":"Body","slug":"MY-POST"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Slug already in use")
}

func TestArticleCreateNormalizesMixedCaseSlug(t *testing.T) {
	r, db := newArticleRouter(t)

	// A padded mixed-case slug is accepted and stored normalized instead of
	// failing the charset check.
	w := postJSON(r, "/articles", `{"title":"Launch","content":"Body","slug":"  My-Launch "}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var a domain.Article
	require.NoError(t, db.First(&a, "slug = ?", "my-launch").Error)
	assert.Equal(t, "Launch", a.Title)
}
