package handler

import (
	"time"

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

type EventHandler struct {
	events *repo.Events
	log    *zap.Logger
	prod   bool
}

func NewEvents(events *repo.Events, log *zap.Logger, prod bool) *EventHandler {
	return &EventHandler{events: events, log: log, prod: prod}
}

func (h *EventHandler) LoadOwned(c *gin.Context, id string) (middleware.OwnedResource, error) {
	e, err := h.events.FindByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return e, nil
}

func (h *EventHandler) List(c *gin.Context) {
	spec := query.EventSpec
	page := spec.ParsePage(c.Query("page"), c.Query("limit"))
	order := spec.OrderClause(c.Query("sortBy"), c.Query("order"))

	f := repo.EventFilter{
		Status:       c.Query("status"),
		EventType:    c.Query("eventType"),
		LocationType: c.Query("locationType"),
		Search:       c.Query("search"),
	}
	if v, ok := query.ParseBool(c.Query("upcoming")); ok {
		f.Upcoming = &v
	}

	items, total, err := h.events.List(c.Request.Context(), f, page, order)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to list events", err)
		return
	}
	resp.List(c, items, query.NewMeta(total, page))
}

func (h *EventHandler) Get(c *gin.Context) {
	e, err := h.events.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to load event", err)
		return
	}
	if e == nil {
		resp.NotFound(c, "Event not found")
		return
	}
	resp.OK(c, e, "")
}

func (h *EventHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.EventRules.Validate(payload, false); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}

	title, _ := strField(payload, "title")
	rawSlug, _ := strField(payload, "slug")
	slug := utils.ResolveSlug(rawSlug, title)
	if slug == "" {
		resp.BadRequest(c, "Slug is required")
		return
	}
	taken, err := h.events.SlugTaken(c.Request.Context(), slug, "")
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to check slug", err)
		return
	}
	if taken {
		resp.Conflict(c, "Slug already in use")
		return
	}

	images, err := utils.ParseOrderedList("images", payload["images"])
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	e := &domain.Event{
		ID:          utils.NewID(),
		Title:       title,
		Slug:        slug,
		Status:      domain.StatusDraft,
		CreatedByID: caller.ID,
	}
	if msg := h.applyFields(payload, e); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	if err := h.events.Create(c.Request.Context(), e, images); err != nil {
		internalError(c, h.log, h.prod, "Failed to create event", err)
		return
	}
	resp.Created(c, e, "Event created")
}

func (h *EventHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	e, _ := middleware.LoadedResource(c).(*domain.Event)
	if e == nil {
		resp.NotFound(c, "Event not found")
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	normalizeSlugField(payload)
	if errs := validate.EventRules.Validate(payload, true); len(errs) > 0 {
		resp.Errors(c, errs)
		return
	}

	if v, ok := strField(payload, "title"); ok {
		e.Title = v
	}
	if raw, ok := strField(payload, "slug"); ok {
		slug := utils.ResolveSlug(raw, e.Title)
		if slug == "" {
			resp.BadRequest(c, "Slug is required")
			return
		}
		taken, err := h.events.SlugTaken(c.Request.Context(), slug, e.ID)
		if err != nil {
			internalError(c, h.log, h.prod, "Failed to check slug", err)
			return
		}
		if taken {
			resp.Conflict(c, "Slug already in use")
			return
		}
		e.Slug = slug
	}
	if msg := h.applyFields(payload, e); msg != "" {
		resp.BadRequest(c, msg)
		return
	}

	var images []utils.OrderedRef
	if _, has := payload["images"]; has {
		parsed, err := utils.ParseOrderedList("images", payload["images"])
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		if parsed == nil {
			parsed = []utils.OrderedRef{}
		}
		images = parsed
	}

	e.UpdatedByID = &caller.ID
	if err := h.events.Update(c.Request.Context(), e, images); err != nil {
		internalError(c, h.log, h.prod, "Failed to update event", err)
		return
	}
	resp.OK(c, e, "Event updated")
}

func (h *EventHandler) applyFields(payload map[string]any, e *domain.Event) string {
	if v, ok := strField(payload, "description"); ok {
		e.Description = utils.SanitizeHTML(v)
	}
	if v, ok := strField(payload, "location"); ok {
		e.Location = v
	}
	if v, ok := strField(payload, "locationType"); ok {
		e.LocationType = v
	}
	if v, ok := strField(payload, "eventType"); ok {
		e.EventType = v
	}
	if v, ok := strField(payload, "registrationUrl"); ok {
		e.RegistrationURL = v
	}
	if t, present, valid := timeField(payload, "eventDate"); present {
		if !valid {
			return "Invalid eventDate"
		}
		e.EventDate = t
	}
	if v, present := nullableStrField(payload, "thumbnailId"); present {
		e.ThumbnailID = v
	}

	if v, ok := strField(payload, "status"); ok {
		e.Status = v
	}
	if t, present, valid := timeField(payload, "scheduledAt"); present {
		if !valid {
			return "Invalid scheduledAt"
		}
		e.ScheduledAt = t
	}
	if t, present, valid := timeField(payload, "publishedAt"); present {
		if !valid {
			return "Invalid publishedAt"
		}
		e.PublishedAt = t
	}
	if e.Status == domain.StatusScheduled && e.ScheduledAt == nil {
		return "scheduledAt is required for scheduled content"
	}
	if e.Status == domain.StatusPublished && e.PublishedAt == nil {
		now := time.Now()
		e.PublishedAt = &now
	}
	return ""
}

func (h *EventHandler) Delete(c *gin.Context) {
	e, _ := middleware.LoadedResource(c).(*domain.Event)
	if e == nil {
		resp.NotFound(c, "Event not found")
		return
	}
	if err := h.events.SoftDelete(c.Request.Context(), e.ID); err != nil {
		internalError(c, h.log, h.prod, "Failed to delete event", err)
		return
	}
	resp.OK(c, gin.H{"id": e.ID}, "Event deleted")
}

func (h *EventHandler) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		resp.BadRequest(c, "ids is required")
		return
	}
	deleted, err := h.events.BulkSoftDelete(c.Request.Context(), req.IDs)
	if err != nil {
		internalError(c, h.log, h.prod, "Failed to delete events", err)
		return
	}
	resp.OK(c, gin.H{"deleted": deleted}, "Events deleted")
}
