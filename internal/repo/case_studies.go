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

type CaseStudies struct{ db *gorm.DB }

func NewCaseStudies(db *gorm.DB) *CaseStudies { return &CaseStudies{db: db} }

type CaseStudyFilter struct {
	Status       string
	CategoryID   string
	ServiceID    string
	IndustryID   string
	SolutionID   string
	CapabilityID string
	IndustrySlug string
	ServiceSlug  string
	Featured     *bool
	Search       string
	Published    bool
}

func (r *CaseStudies) List(ctx context.Context, f CaseStudyFilter, page query.Page, order string) ([]domain.CaseStudy, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.CaseStudy{})
	if f.Published {
		q = q.Where("status = ? AND published_at <= ?", domain.StatusPublished, time.Now())
	} else if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.ServiceID != "" {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.IndustryID != "" {
		q = q.Where("industry_id = ?", f.IndustryID)
	}
	if f.SolutionID != "" {
		q = q.Where("solution_id = ?", f.SolutionID)
	}
	if f.CapabilityID != "" {
		q = q.Where("capability_id = ?", f.CapabilityID)
	}
	if f.IndustrySlug != "" {
		q = q.Where("industry_id IN (?)",
			r.db.Model(&domain.Industry{}).Select("id").Where("slug = ?", f.IndustrySlug))
	}
	if f.ServiceSlug != "" {
		q = q.Where("service_id IN (?)",
			r.db.Model(&domain.Service{}).Select("id").Where("slug = ?", f.ServiceSlug))
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if cond, args := query.CaseStudySpec.SearchClause(f.Search); cond != "" {
		q = q.Where(cond, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.CaseStudy
	err := r.preloads(q).Order(order).Limit(page.Limit).Offset(page.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CaseStudies) preloads(q *gorm.DB) *gorm.DB {
	return q.Preload("Category").Preload("Service").Preload("Industry").
		Preload("Solution").Preload("Capability").Preload("Thumbnail").
		Preload("Technologies.Technology").Preload("Images.Media")
}

func (r *CaseStudies) FindByID(ctx context.Context, id string) (*domain.CaseStudy, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *CaseStudies) FindBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *CaseStudies) FindPublishedBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error) {
	var cs domain.CaseStudy
	err := r.preloads(r.db.WithContext(ctx)).
		Where("slug = ? AND status = ? AND published_at <= ?", slug, domain.StatusPublished, time.Now()).
		First(&cs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *CaseStudies) findOne(ctx context.Context, cond string, arg any) (*domain.CaseStudy, error) {
	var cs domain.CaseStudy
	err := r.preloads(r.db.WithContext(ctx)).Where(cond, arg).First(&cs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *CaseStudies) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.CaseStudy{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CaseStudies) Create(ctx context.Context, cs *domain.CaseStudy, techs, images []utils.OrderedRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cs).Error; err != nil {
			return err
		}
		if err := replaceTechLinks(tx, cs.ID, techs); err != nil {
			return err
		}
		return replaceCaseStudyImages(tx, cs.ID, images)
	})
}

// Update persists the row; nil techs/images leaves the relation untouched.
func (r *CaseStudies) Update(ctx context.Context, cs *domain.CaseStudy, techs, images []utils.OrderedRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(cs).Error; err != nil {
			return err
		}
		if techs != nil {
			if err := replaceTechLinks(tx, cs.ID, techs); err != nil {
				return err
			}
		}
		if images != nil {
			return replaceCaseStudyImages(tx, cs.ID, images)
		}
		return nil
	})
}

func replaceTechLinks(tx *gorm.DB, caseStudyID string, techs []utils.OrderedRef) error {
	if err := tx.Where("case_study_id = ?", caseStudyID).Delete(&domain.CaseStudyTechLink{}).Error; err != nil {
		return err
	}
	for _, t := range techs {
		link := domain.CaseStudyTechLink{ID: utils.NewID(), CaseStudyID: caseStudyID, TechnologyID: t.ID, Order: t.Order}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceCaseStudyImages(tx *gorm.DB, caseStudyID string, images []utils.OrderedRef) error {
	if err := tx.Where("case_study_id = ?", caseStudyID).Delete(&domain.CaseStudyImage{}).Error; err != nil {
		return err
	}
	for _, im := range images {
		row := domain.CaseStudyImage{ID: utils.NewID(), CaseStudyID: caseStudyID, MediaID: im.ID, Order: im.Order}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *CaseStudies) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.CaseStudy{}, "id = ?", id).Error
}

func (r *CaseStudies) BulkSoftDelete(ctx context.Context, ids []string) ([]string, error) {
	var found []string
	if err := r.db.WithContext(ctx).Model(&domain.CaseStudy{}).
		Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Delete(&domain.CaseStudy{}, "id IN ?", found).Error; err != nil {
		return nil, err
	}
	return found, nil
}
