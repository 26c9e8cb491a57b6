package repo

import (
	"context"

	"gorm.io/gorm"

	"marketing-cms/internal/domain"
)

// Usage counters per taxonomy. Join-table counts are restricted to links
// whose parent content row is not soft-deleted.

func countWhere(ctx context.Context, db *gorm.DB, model any, cond string, id string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(model).Where(cond, id).Count(&n).Error
	return n, err
}

func singleUsage(model any, table, column string) UsageFunc {
	return func(ctx context.Context, db *gorm.DB, id string) (map[string]int64, error) {
		n, err := countWhere(ctx, db, model, column+" = ?", id)
		if err != nil {
			return nil, err
		}
		usage := map[string]int64{}
		if n > 0 {
			usage[table] = n
		}
		return usage, nil
	}
}

func ArticleCategoryUsage() UsageFunc {
	return singleUsage(&domain.Article{}, "articles", "category_id")
}

func ArticleTagUsage() UsageFunc {
	return func(ctx context.Context, db *gorm.DB, id string) (map[string]int64, error) {
		var n int64
		err := db.WithContext(ctx).Model(&domain.ArticleTagLink{}).
			Where("tag_id = ?", id).
			Where("article_id IN (?)", db.Model(&domain.Article{}).Select("id")).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		usage := map[string]int64{}
		if n > 0 {
			usage["articles"] = n
		}
		return usage, nil
	}
}

func ServiceUsage() UsageFunc {
	return singleUsage(&domain.CaseStudy{}, "caseStudies", "service_id")
}

func IndustryUsage() UsageFunc {
	return singleUsage(&domain.CaseStudy{}, "caseStudies", "industry_id")
}

func SolutionUsage() UsageFunc {
	return singleUsage(&domain.CaseStudy{}, "caseStudies", "solution_id")
}

func CapabilityUsage() UsageFunc {
	return singleUsage(&domain.CaseStudy{}, "caseStudies", "capability_id")
}

func CaseStudyCategoryUsage() UsageFunc {
	return singleUsage(&domain.CaseStudy{}, "caseStudies", "category_id")
}

func CaseStudyTechnologyUsage() UsageFunc {
	return func(ctx context.Context, db *gorm.DB, id string) (map[string]int64, error) {
		var n int64
		err := db.WithContext(ctx).Model(&domain.CaseStudyTechLink{}).
			Where("technology_id = ?", id).
			Where("case_study_id IN (?)", db.Model(&domain.CaseStudy{}).Select("id")).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		usage := map[string]int64{}
		if n > 0 {
			usage["caseStudies"] = n
		}
		return usage, nil
	}
}
