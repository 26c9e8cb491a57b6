package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"marketing-cms/internal/domain"
)

func init() { gin.SetMode(gin.TestMode) }

func performWithUser(guard gin.HandlerFunc, u *domain.User) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/guarded", func(c *gin.Context) {
		if u != nil {
			c.Set(keyCurrentUser, u)
		}
	}, guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		guard    gin.HandlerFunc
		user     *domain.User
		wantCode int
	}{
		{name: "no user", guard: AdminOnly(), user: nil, wantCode: 401},
		{name: "admin passes admin-only", guard: AdminOnly(), user: &domain.User{Role: domain.RoleAdmin}, wantCode: 200},
		{name: "viewer blocked from admin-only", guard: AdminOnly(), user: &domain.User{Role: domain.RoleViewer}, wantCode: 403},
		{name: "marketing passes marketing", guard: MarketingOnly(), user: &domain.User{Role: domain.RoleMarketingEditor}, wantCode: 200},
		{name: "technical blocked from marketing", guard: MarketingOnly(), user: &domain.User{Role: domain.RoleTechnicalEditor}, wantCode: 403},
		{name: "admin passes marketing", guard: MarketingOnly(), user: &domain.User{Role: domain.RoleAdmin}, wantCode: 200},
		{name: "technical passes technical", guard: TechnicalOnly(), user: &domain.User{Role: domain.RoleTechnicalEditor}, wantCode: 200},
		{name: "marketing blocked from technical", guard: TechnicalOnly(), user: &domain.User{Role: domain.RoleMarketingEditor}, wantCode: 403},
		{name: "both editors pass all-editors", guard: AllEditors(), user: &domain.User{Role: domain.RoleMarketingEditor}, wantCode: 200},
		{name: "viewer blocked from all-editors", guard: AllEditors(), user: &domain.User{Role: domain.RoleViewer}, wantCode: 403},
		{name: "viewer passes any-authenticated", guard: AnyAuthenticated(), user: &domain.User{Role: domain.RoleViewer}, wantCode: 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithUser(tt.guard, tt.user)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
