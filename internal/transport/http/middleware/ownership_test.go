package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"marketing-cms/internal/domain"
)

type fakeResource struct{ owner string }

func (f *fakeResource) OwnerID() string { return f.owner }

func performOwnership(u *domain.User, load func(c *gin.Context, id string) (OwnedResource, error)) *httptest.ResponseRecorder {
	r := gin.New()
	r.PUT("/things/:id", func(c *gin.Context) {
		if u != nil {
			c.Set(keyCurrentUser, u)
		}
	}, RequireOwnership(load), func(c *gin.Context) {
		res := LoadedResource(c)
		c.JSON(http.StatusOK, gin.H{"owner": res.OwnerID()})
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/things/t1", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireOwnership(t *testing.T) {
	found := func(c *gin.Context, id string) (OwnedResource, error) {
		return &fakeResource{owner: "creator-1"}, nil
	}
	missing := func(c *gin.Context, id string) (OwnedResource, error) { return nil, nil }
	failing := func(c *gin.Context, id string) (OwnedResource, error) { return nil, errors.New("db down") }

	t.Run("owner passes", func(t *testing.T) {
		u := &domain.User{ID: "creator-1", Role: domain.RoleMarketingEditor}
		w := performOwnership(u, found)
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), "creator-1")
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		u := &domain.User{ID: "someone-else", Role: domain.RoleAdmin}
		w := performOwnership(u, found)
		assert.Equal(t, 200, w.Code)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		u := &domain.User{ID: "intruder", Role: domain.RoleMarketingEditor}
		w := performOwnership(u, found)
		assert.Equal(t, 403, w.Code)
	})

	t.Run("missing resource gets 404", func(t *testing.T) {
		u := &domain.User{ID: "creator-1", Role: domain.RoleMarketingEditor}
		w := performOwnership(u, missing)
		assert.Equal(t, 404, w.Code)
	})

	t.Run("load failure gets 500", func(t *testing.T) {
		u := &domain.User{ID: "creator-1", Role: domain.RoleMarketingEditor}
		w := performOwnership(u, failing)
		assert.Equal(t, 500, w.Code)
	})

	t.Run("no user gets 401", func(t *testing.T) {
		w := performOwnership(nil, found)
		assert.Equal(t, 401, w.Code)
	})
}
