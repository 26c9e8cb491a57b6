package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"marketing-cms/internal/core/auth"
	"marketing-cms/internal/domain"
	"marketing-cms/internal/repo"
	resp "marketing-cms/internal/transport/http/response"
)

const keyCurrentUser = "currentUser"

// TokenCookie is the HTTP-only cookie carrying the session token.
const TokenCookie = "token"

// Authenticate verifies the bearer/cookie token, loads the user and attaches
// it to the request context. Inactive users get 403, everything else 401.
func Authenticate(j *auth.JWTer, users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			if v, err := c.Cookie(TokenCookie); err == nil {
				tok = v
			}
		}
		if tok == "" {
			resp.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}
		claims, err := j.Parse(tok)
		if err != nil {
			resp.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}
		u, err := users.FindByID(c.Request.Context(), claims.UID)
		if err != nil {
			resp.Internal(c, "Failed to load user")
			c.Abort()
			return
		}
		if u == nil {
			resp.Unauthorized(c, "User not found")
			c.Abort()
			return
		}
		if !u.Active {
			resp.Forbidden(c, "User is inactive")
			c.Abort()
			return
		}
		c.Set(keyCurrentUser, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	ah := c.GetHeader("Authorization")
	if strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimPrefix(ah, "Bearer ")
	}
	return ""
}

// CurrentUser returns the authenticated user attached by Authenticate.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(keyCurrentUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
