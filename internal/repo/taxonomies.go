package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketing-cms/internal/domain"
	"marketing-cms/internal/query"
)

// TaxonomyPtr constrains PT to a pointer to a struct embedding TaxonomyFields.
type TaxonomyPtr[T any] interface {
	*T
	Fields() *domain.TaxonomyFields
}

// UsageFunc counts non-deleted content rows referencing a taxonomy id, keyed
// by referencing table.
type UsageFunc func(ctx context.Context, db *gorm.DB, id string) (map[string]int64, error)

// Taxonomies is one repo implementation shared by all eight taxonomy tables;
// only the type parameter and the usage counter differ per entity.
type Taxonomies[T any, PT TaxonomyPtr[T]] struct {
	db    *gorm.DB
	usage UsageFunc
}

func NewTaxonomies[T any, PT TaxonomyPtr[T]](db *gorm.DB, usage UsageFunc) *Taxonomies[T, PT] {
	return &Taxonomies[T, PT]{db: db, usage: usage}
}

type TaxonomyFilter struct {
	Active *bool
	Search string
}

func (r *Taxonomies[T, PT]) List(ctx context.Context, f TaxonomyFilter, page query.Page, order string) ([]T, int64, error) {
	q := r.db.WithContext(ctx).Model(new(T))
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}
	if cond, args := query.TaxonomySpec.SearchClause(f.Search); cond != "" {
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []T
	if err := q.Order(order).Limit(page.Limit).Offset(page.Offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *Taxonomies[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *Taxonomies[T, PT]) FindBySlug(ctx context.Context, slug string) (PT, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *Taxonomies[T, PT]) findOne(ctx context.Context, cond string, arg any) (PT, error) {
	var item T
	err := r.db.WithContext(ctx).Where(cond, arg).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return PT(&item), nil
}

func (r *Taxonomies[T, PT]) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(new(T)).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Taxonomies[T, PT]) Create(ctx context.Context, item PT) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *Taxonomies[T, PT]) Update(ctx context.Context, item PT) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *Taxonomies[T, PT]) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}

// Usage reports how many non-deleted content rows still reference the id.
func (r *Taxonomies[T, PT]) Usage(ctx context.Context, id string) (map[string]int64, error) {
	if r.usage == nil {
		return map[string]int64{}, nil
	}
	return r.usage(ctx, r.db, id)
}
