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

type Articles struct{ db *gorm.DB }

func NewArticles(db *gorm.DB) *Articles { return &Articles{db: db} }

type ArticleFilter struct {
	Status       string
	CategoryID   string
	CategorySlug string
	TagSlug      string
	Featured     *bool
	Search       string
	Published    bool // public listings: status published and publishedAt <= now
}

func (r *Articles) List(ctx context.Context, f ArticleFilter, page query.Page, order string) ([]domain.Article, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Article{})
	if f.Published {
		q = q.Where("status = ? AND published_at <= ?", domain.StatusPublished, time.Now())
	} else if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.CategorySlug != "" {
		q = q.Where("category_id IN (?)",
			r.db.Model(&domain.ArticleCategory{}).Select("id").Where("slug = ?", f.CategorySlug))
	}
	if f.TagSlug != "" {
		q = q.Where("id IN (?)",
			r.db.Model(&domain.ArticleTagLink{}).Select("article_id").
				Where("tag_id IN (?)", r.db.Model(&domain.ArticleTag{}).Select("id").Where("slug = ?", f.TagSlug)))
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if cond, args := query.ArticleSpec.SearchClause(f.Search); cond != "" {
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.Article
	err := q.Preload("Category").Preload("Thumbnail").Preload("Tags.Tag").
		Order(order).Limit(page.Limit).Offset(page.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *Articles) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *Articles) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

// FindPublishedBySlug is the public detail lookup.
func (r *Articles) FindPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var a domain.Article
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Thumbnail").Preload("Tags.Tag").
		Where("slug = ? AND status = ? AND published_at <= ?", slug, domain.StatusPublished, time.Now()).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Articles) findOne(ctx context.Context, cond string, arg any) (*domain.Article, error) {
	var a domain.Article
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Thumbnail").Preload("Tags.Tag").
		Where(cond, arg).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SlugTaken checks non-deleted rows, excluding the row being updated.
func (r *Articles) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.Article{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Articles) Create(ctx context.Context, a *domain.Article, tags []utils.OrderedRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return replaceTagLinks(tx, a.ID, tags)
	})
}

// Update persists the row and, when tags is non-nil, replaces the tag links.
func (r *Articles) Update(ctx context.Context, a *domain.Article, tags []utils.OrderedRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		if tags == nil {
			return nil
		}
		return replaceTagLinks(tx, a.ID, tags)
	})
}

func replaceTagLinks(tx *gorm.DB, articleID string, tags []utils.OrderedRef) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&domain.ArticleTagLink{}).Error; err != nil {
		return err
	}
	for _, t := range tags {
		link := domain.ArticleTagLink{ID: utils.NewID(), ArticleID: articleID, TagID: t.ID, Order: t.Order}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *Articles) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Article{}, "id = ?", id).Error
}

// BulkSoftDelete returns the ids that actually existed and were deleted.
func (r *Articles) BulkSoftDelete(ctx context.Context, ids []string) ([]string, error) {
	var found []string
	if err := r.db.WithContext(ctx).Model(&domain.Article{}).
		Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Article{}, "id IN ?", found).Error; err != nil {
		return nil, err
	}
	return found, nil
}
