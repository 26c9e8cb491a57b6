package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"marketing-cms/internal/domain"
	"marketing-cms/internal/query"
	"marketing-cms/pkg/utils"
)

type Events struct{ db *gorm.DB }

func NewEvents(db *gorm.DB) *Events { return &Events{db: db} }

type EventFilter struct {
	Status       string
	EventType    string
	LocationType string
	Upcoming     *bool // eventDate >= now / < now
	Search       string
	Published    bool
}

func (r *Events) List(ctx context.Context, f EventFilter, page query.Page, order string) ([]domain.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{})
	if f.Published {
		q = q.Where("status = ? AND published_at <= ?", domain.StatusPublished, time.Now())
	} else if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.EventType != "" {
		q = q.Where("event_type = ?", f.EventType)
	}
	if f.LocationType != "" {
		q = q.Where("location_type = ?", f.LocationType)
	}
	if f.Upcoming != nil {
		if *f.Upcoming {
			q = q.Where("event_date >= ?", time.Now())
		} else {
			q = q.Where("event_date < ?", time.Now())
		}
	}
	if cond, args := query.EventSpec.SearchClause(f.Search); cond != "" {
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.Event
	err := q.Preload("Thumbnail").Preload("Images.Media").
		Order(order).Limit(page.Limit).Offset(page.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *Events) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *Events) FindBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *Events) FindPublishedBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var e domain.Event
	err := r.db.WithContext(ctx).
		Preload("Thumbnail").Preload("Images.Media").
		Where("slug = ? AND status = ? AND published_at <= ?", slug, domain.StatusPublished, time.Now()).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Events) findOne(ctx context.Context, cond string, arg any) (*domain.Event, error) {
	var e domain.Event
	err := r.db.WithContext(ctx).
		Preload("Thumbnail").Preload("Images.Media").
		Where(cond, arg).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Events) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.Event{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Events) Create(ctx context.Context, e *domain.Event, images []utils.OrderedRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return replaceEventImages(tx, e.ID, images)
	})
}

func (r *Events) Update(ctx context.Context, e *domain.Event, images []utils.OrderedRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		if images == nil {
			return nil
		}
		return replaceEventImages(tx, e.ID, images)
	})
}

func replaceEventImages(tx *gorm.DB, eventID string, images []utils.OrderedRef) error {
	if err := tx.Where("event_id = ?", eventID).Delete(&domain.EventImage{}).Error; err != nil {
		return err
	}
	for _, im := range images {
		row := domain.EventImage{ID: utils.NewID(), EventID: eventID, MediaID: im.ID, Order: im.Order}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *Events) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Event{}, "id = ?", id).Error
}

func (r *Events) BulkSoftDelete(ctx context.Context, ids []string) ([]string, error) {
	var found []string
	if err := r.db.WithContext(ctx).Model(&domain.Event{}).
		Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Event{}, "id IN ?", found).Error; err != nil {
		return nil, err
	}
	return found, nil
}
