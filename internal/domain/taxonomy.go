package domain

import (
	"time"

	"gorm.io/gorm"
)

// TaxonomyFields is the shared shape of every taxonomy table. Each concrete
// taxonomy embeds it so the generic repo and handlers can work against one
// field set while gorm still sees distinct tables.
type TaxonomyFields struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	Slug      string         `gorm:"index;size:255" json:"slug"`
	Order     int            `gorm:"column:sort_order;default:0" json:"order"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *TaxonomyFields) Fields() *TaxonomyFields { return f }

type ArticleCategory struct{ TaxonomyFields }

func (ArticleCategory) TableName() string { return "article_categories" }

type ArticleTag struct{ TaxonomyFields }

func (ArticleTag) TableName() string { return "article_tags" }

type Service struct{ TaxonomyFields }

func (Service) TableName() string { return "services" }

type Industry struct{ TaxonomyFields }

func (Industry) TableName() string { return "industries" }

type Solution struct{ TaxonomyFields }

func (Solution) TableName() string { return "solutions" }

type Capability struct{ TaxonomyFields }

func (Capability) TableName() string { return "capabilities" }

type CaseStudyCategory struct{ TaxonomyFields }

func (CaseStudyCategory) TableName() string { return "case_study_categories" }

type CaseStudyTechnology struct{ TaxonomyFields }

func (CaseStudyTechnology) TableName() string { return "case_study_technologies" }
