package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketing-cms/internal/domain"
	"marketing-cms/internal/query"
)

type MediaRepo struct{ db *gorm.DB }

func NewMedia(db *gorm.DB) *MediaRepo { return &MediaRepo{db: db} }

type MediaFilter struct {
	MimeType string
	Search   string
}

func (r *MediaRepo) List(ctx context.Context, f MediaFilter, page query.Page, order string) ([]domain.Media, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Media{})
	if f.MimeType != "" {
		q = q.Where("mime_type = ?", f.MimeType)
	}
	if cond, args := query.MediaSpec.SearchClause(f.Search); cond != "" {
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.Media
	if err := q.Order(order).Limit(page.Limit).Offset(page.Offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MediaRepo) FindByID(ctx context.Context, id string) (*domain.Media, error) {
	var m domain.Media
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepo) Create(ctx context.Context, m *domain.Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MediaRepo) Update(ctx context.Context, m *domain.Media) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Usage counts references across every table that can point at a media row.
// Only non-deleted content rows are counted.
func (r *MediaRepo) Usage(ctx context.Context, id string) (map[string]int64, error) {
	usage := map[string]int64{}
	counts := []struct {
		name  string
		count func() (int64, error)
	}{
		{"articles", func() (int64, error) { return r.countRows(ctx, &domain.Article{}, "thumbnail_id = ?", id) }},
		{"caseStudies", func() (int64, error) { return r.countRows(ctx, &domain.CaseStudy{}, "thumbnail_id = ?", id) }},
		{"events", func() (int64, error) { return r.countRows(ctx, &domain.Event{}, "thumbnail_id = ?", id) }},
		{"banners", func() (int64, error) { return r.countRows(ctx, &domain.Banner{}, "image_id = ?", id) }},
		{"caseStudyImages", func() (int64, error) { return r.countRows(ctx, &domain.CaseStudyImage{}, "media_id = ?", id) }},
		{"eventImages", func() (int64, error) { return r.countRows(ctx, &domain.EventImage{}, "media_id = ?", id) }},
	}
	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			usage[c.name] = n
		}
	}
	return usage, nil
}

func (r *MediaRepo) countRows(ctx context.Context, model any, cond string, arg any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where(cond, arg).Count(&n).Error
	return n, err
}

// HardDelete removes the row permanently; callers run the usage check first.
func (r *MediaRepo) HardDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&domain.Media{}, "id = ?", id).Error
}
