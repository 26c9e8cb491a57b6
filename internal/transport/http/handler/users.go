package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketing-cms/internal/domain"
	"marketing-cms/internal/query"
	"marketing-cms/internal/repo"
	"marketing-cms/internal/transport/http/middleware"
	resp "marketing-cms/internal/transport/http/response"
	"marketing-cms/internal/validate"
	"marketing-cms/pkg/utils"
)

type UserHandler struct {
	users *repo.Users
	log   *zap.Logger
	prod  bool
}

func NewUsers(users *repo.Users, log *zap.Logger, prod bool) *UserHandler {
	return &UserHandler{users: users, log: log, prod: prod}
}

func (h *UserHandler) List(c *gin.Context) {
	spec := query.UserSpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.UserFilter{Role: c.Query("role"), Search: c.Query("search")}
	if v, ok := query.ParseBool(c.Query("active")); ok {
		f.Active = &v
	}

	users, total, err := h.users.List(c.Request.Context(), f, page, order)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to list users", err)
		return
	}
	resp.List(c, users, query.NewMeta(total, page))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load user", err)
		return
	}
	if u == nil {
		resp.NotFound(c, "User not found")
		return
	}
	resp.OK(c, u, "")
}

// Register creates an account. Admin-only route.
func (h *UserHandler) Register(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if errs := validate.UserRules.Validate(payload, false); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}

	name, _ := strField(payload, "name")
	username, _ := strField(payload, "username")
	email, _ := strField(payload, "email")
	password, _ := strField(payload, "password")
	role, hasRole := strField(payload, "role")
	if !hasRole {
		role = domain.RoleViewer
	}

	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	taken, err := h.users.LoginTaken(c.Request.Context(), username, email, "")
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check username", err)
		return
	}
	if taken {
		resp.Conflict(c, "Username or email already in use")
		return
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(name),
		Username:     username,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         role,
		Active:       true,
	}
	if v, ok := boolField(payload, "active"); ok {
		u.Active = v
	}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		internalError(c, h.log, h.prod, "Failed to create user", err)
		return
	}
	resp.Created(c, u, "User created")
}

// Update lets users edit their own account and admins edit others, with two
// guards: non-admins cannot change roles (the field is silently stripped),
// and no admin may modify a different admin account.
func (h *UserHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	target, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load user", err)
		return
	}
	if target == nil {
		resp.NotFound(c, "User not found")
		return
	}
	if caller.Role != domain.RoleAdmin && caller.ID != target.ID {
		resp.Forbidden(c, "You may only update your own account")
		return
	}
	if caller.Role == domain.RoleAdmin && target.Role == domain.RoleAdmin && caller.ID != target.ID {
		resp.Forbidden(c, "Admin accounts cannot be modified by other admins")
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	if caller.Role != domain.RoleAdmin {
		delete(payload, "role")
	}
	if errs := validate.UserRules.Validate(payload, true); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}

	if v, ok := strField(payload, "name"); ok {
		target.Name = strings.TrimSpace(v)
	}
	if v, ok := strField(payload, "username"); ok {
		target.Username = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := strField(payload, "email"); ok {
		target.Email = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := strField(payload, "password"); ok && v != "" {
		target.PasswordHash = utils.HashPassword(v)
	}
	if v, ok := strField(payload, "role"); ok {
		target.Role = v
	}
	if v, ok := boolField(payload, "active"); ok {
		target.Active = v
	}

	taken, err := h.users.LoginTaken(c.Request.Context(), target.Username, target.Email, target.ID)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check username", err)
		return
	}
	if taken {
		resp.Conflict(c, "Username or email already in use")
		return
	}

	if err := h.users.Update(c.Request.Context(), target); err != nil {
		internalError(c, h.log, h.prod, "Failed to update user", err)
		return
	}
	resp.OK(c, target, "User updated")
}

// Delete hard-deletes an account. Admins cannot delete themselves or another
// admin; non-admins cannot delete anyone.
func (h *UserHandler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	target, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load user", err)
		return
	}
	if target == nil {
		resp.NotFound(c, "User not found")
		return
	}
	if target.ID == caller.ID {
		resp.Forbidden(c, "You cannot delete your own account")
		return
	}
	if target.Role == domain.RoleAdmin {
		resp.Forbidden(c, "Admin accounts cannot be deleted")
		return
	}
	if err := h.users.Delete(c.Request.Context(), target.ID); err != nil {
		internalError(c, h.log, h.prod, "Failed to delete user", err)
		return
	}
	resp.OK(c, gin.H{"id": target.ID}, "User deleted")
}
