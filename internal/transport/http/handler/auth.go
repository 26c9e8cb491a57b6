package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketing-cms/internal/core/auth"
	"marketing-cms/internal/repo"
	"marketing-cms/internal/transport/http/middleware"
	resp "marketing-cms/internal/transport/http/response"
	"marketing-cms/pkg/utils"
)

type AuthHandler struct {
	users *repo.Users
	jwter *auth.JWTer
	log   *zap.Logger
	prod  bool
}

func NewAuth(users *repo.Users, jwter *auth.JWTer, log *zap.Logger, prod bool) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter, log: log, prod: prod}
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues the token both in the body and as an
// HTTP-only cookie. The cookie is secure+strict in production, lax otherwise.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Login and password are required")
		return
	}
	u, err := h.users.FindByLogin(c.Request.Context(), strings.TrimSpace(req.Login))
	if err != nil {
		internalError(c, h.log, h.prod, "Login failed", err)
		return
	}
	if u == nil || !utils.CheckPassword(req.Password, u.PasswordHash) {
		resp.Unauthorized(c, "Invalid credentials")
		return
	}
	if !u.Active {
		resp.Forbidden(c, "User is inactive")
		return
	}
	tok, err := h.jwter.Issue(u.ID)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to issue token", err)
		return
	}

	h.setTokenCookie(c, tok, int(h.jwter.TTL.Seconds()))
	resp.OK(c, gin.H{"token": tok, "user": u}, "Logged in")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	resp.OK(c, nil, "Logged out")
}

func (h *AuthHandler) Me(c *gin.Context) {
	resp.OK(c, middleware.CurrentUser(c), "")
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, tok string, maxAge int) {
	if h.prod {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookie, tok, maxAge, "/", "", h.prod, true)
}
