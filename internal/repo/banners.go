package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketing-cms/internal/domain"
	"marketing-cms/internal/query"
)

type Banners struct{ db *gorm.DB }

func NewBanners(db *gorm.DB) *Banners { return &Banners{db: db} }

type BannerFilter struct {
	Status string
	Search string
	Active bool // public: active banners only
}

func (r *Banners) List(ctx context.Context, f BannerFilter, page query.Page, order string) ([]domain.Banner, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Banner{})
	if f.Active {
		q = q.Where("status = ?", domain.BannerStatusActive)
	} else if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if cond, args := query.BannerSpec.SearchClause(f.Search); cond != "" {
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.Banner
	err := q.Preload("Image").Order(order).Limit(page.Limit).Offset(page.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *Banners) FindByID(ctx context.Context, id string) (*domain.Banner, error) {
	var b domain.Banner
	err := r.db.WithContext(ctx).Preload("Image").Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Banners) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.Banner{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Banners) Create(ctx context.Context, b *domain.Banner) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *Banners) Update(ctx context.Context, b *domain.Banner) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *Banners) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Banner{}, "id = ?", id).Error
}
