package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"marketing-cms/internal/domain"
)

// Publisher promotes due scheduled content. It is free of any scheduling
// mechanism so ticks can be tested with an injected now.
type Publisher struct{ db *gorm.DB }

func NewPublisher(db *gorm.DB) *Publisher { return &Publisher{db: db} }

// PromoteDue bulk-transitions scheduled rows whose scheduledAt has passed to
// published. Every promoted row gets the same publishedAt: the tick time.
// Returns rows affected per content type.
func (p *Publisher) PromoteDue(ctx context.Context, now time.Time) (map[string]int64, error) {
	promoted := map[string]int64{}
	for _, m := range []struct {
		name  string
		model any
	}{
		{"articles", &domain.Article{}},
		{"caseStudies", &domain.CaseStudy{}},
		{"events", &domain.Event{}},
	} {
		res := p.db.WithContext(ctx).Model(m.model).
			Where("status = ? AND scheduled_at <= ?", domain.StatusScheduled, now).
			Updates(map[string]any{
				"status":       domain.StatusPublished,
				"published_at": now,
			})
		if res.Error != nil {
			return promoted, res.Error
		}
		if res.RowsAffected > 0 {
			promoted[m.name] = res.RowsAffected
		}
	}
	return promoted, nil
}
