package middleware

import (
	"github.com/gin-gonic/gin"

	"marketing-cms/internal/domain"
	resp "marketing-cms/internal/transport/http/response"
)

// RequireRoles allows only the listed role labels. 401 when no user is
// attached, 403 when the role is not in the set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		if _, ok := allowed[u.Role]; !ok {
			resp.Forbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Named presets used by the routers.
func AdminOnly() gin.HandlerFunc { return RequireRoles(domain.RoleAdmin) }

func AllEditors() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleMarketingEditor, domain.RoleTechnicalEditor)
}

func MarketingOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleMarketingEditor)
}

func TechnicalOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleTechnicalEditor)
}

func AnyAuthenticated() gin.HandlerFunc {
	return RequireRoles(domain.Roles...)
}
