package middleware

import (
	"github.com/gin-gonic/gin"

	"marketing-cms/internal/domain"
	resp "marketing-cms/internal/transport/http/response"
)

const keyResource = "resource"

// OwnedResource is any content row carrying its creator's user id.
type OwnedResource interface{ OwnerID() string }

// RequireOwnership loads the path resource, 404s when missing or
// soft-deleted, and rejects non-admin callers that did not create it. The
// loaded resource is attached to the context so handlers skip a second fetch.
func RequireOwnership(load func(c *gin.Context, id string) (OwnedResource, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		res, err := load(c, c.Param("id"))
		if err != nil {
			resp.Internal(c, "Failed to load resource")
			c.Abort()
			return
		}
		if res == nil {
			resp.NotFound(c, "Resource not found")
			c.Abort()
			return
		}
		if u.Role != domain.RoleAdmin && res.OwnerID() != u.ID {
			resp.Forbidden(c, "You do not own this resource")
			c.Abort()
			return
		}
		c.Set(keyResource, res)
		c.Next()
	}
}

// LoadedResource returns the resource attached by RequireOwnership.
func LoadedResource(c *gin.Context) OwnedResource {
	if v, ok := c.Get(keyResource); ok {
		if r, ok := v.(OwnedResource); ok {
			return r
		}
	}
	return nil
}
