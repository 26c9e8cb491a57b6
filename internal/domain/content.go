package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Content statuses. Banners use the banner set instead.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusScheduled = "scheduled"
	StatusArchived  = "archived"

	BannerStatusDraft    = "draft"
	BannerStatusActive   = "active"
	BannerStatusInactive = "inactive"
)

var ContentStatuses = []string{StatusDraft, StatusPublished, StatusScheduled, StatusArchived}
var BannerStatuses = []string{BannerStatusDraft, BannerStatusActive, BannerStatusInactive}

// Event enums.
const (
	LocationOnsite = "onsite"
	LocationOnline = "online"
	LocationHybrid = "hybrid"
)

var LocationTypes = []string{LocationOnsite, LocationOnline, LocationHybrid}
var EventTypes = []string{"conference", "webinar", "workshop", "meetup"}

type Article struct {
	ID              string           `gorm:"primaryKey;size:36" json:"id"`
	Title           string           `gorm:"size:255" json:"title"`
	Slug            string           `gorm:"index;size:255" json:"slug"`
	Excerpt         string           `gorm:"size:500" json:"excerpt"`
	Content         string           `gorm:"type:text" json:"content"`
	Status          string           `gorm:"size:16;index;default:draft" json:"status"`
	IsFeatured      bool             `gorm:"default:false" json:"isFeatured"`
	PublishedAt     *time.Time       `json:"publishedAt"`
	ScheduledAt     *time.Time       `json:"scheduledAt"`
	CategoryID      *string          `gorm:"size:36;index" json:"categoryId"`
	Category        *ArticleCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ThumbnailID     *string          `gorm:"size:36" json:"thumbnailId"`
	Thumbnail       *Media           `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	MetaTitle       string           `gorm:"size:60" json:"metaTitle"`
	MetaDescription string           `gorm:"size:160" json:"metaDescription"`
	SEOKeywords     []string         `gorm:"serializer:json;type:text" json:"seoKeywords"`
	Tags            []ArticleTagLink `gorm:"foreignKey:ArticleID" json:"tags,omitempty"`
	CreatedByID     string           `gorm:"size:36;index" json:"createdBy"`
	UpdatedByID     *string          `gorm:"size:36" json:"updatedBy"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Article) TableName() string { return "articles" }

// ArticleTagLink carries an explicit ordering for tag display.
type ArticleTagLink struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	ArticleID string      `gorm:"size:36;index" json:"articleId"`
	TagID     string      `gorm:"size:36;index" json:"tagId"`
	Tag       *ArticleTag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
	Order     int         `gorm:"column:sort_order" json:"order"`
}

func (ArticleTagLink) TableName() string { return "article_tag_on_articles" }

type CaseStudy struct {
	ID              string              `gorm:"primaryKey;size:36" json:"id"`
	Title           string              `gorm:"size:255" json:"title"`
	Slug            string              `gorm:"index;size:255" json:"slug"`
	Summary         string              `gorm:"size:500" json:"summary"`
	Content         string              `gorm:"type:text" json:"content"`
	ClientName      string              `gorm:"size:255" json:"clientName"`
	Status          string              `gorm:"size:16;index;default:draft" json:"status"`
	IsFeatured      bool                `gorm:"default:false" json:"isFeatured"`
	PublishedAt     *time.Time          `json:"publishedAt"`
	ScheduledAt     *time.Time          `json:"scheduledAt"`
	CategoryID      *string             `gorm:"size:36;index" json:"categoryId"`
	Category        *CaseStudyCategory  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ServiceID       *string             `gorm:"size:36;index" json:"serviceId"`
	Service         *Service            `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	IndustryID      *string             `gorm:"size:36;index" json:"industryId"`
	Industry        *Industry           `gorm:"foreignKey:IndustryID" json:"industry,omitempty"`
	SolutionID      *string             `gorm:"size:36;index" json:"solutionId"`
	Solution        *Solution           `gorm:"foreignKey:SolutionID" json:"solution,omitempty"`
	CapabilityID    *string             `gorm:"size:36;index" json:"capabilityId"`
	Capability      *Capability         `gorm:"foreignKey:CapabilityID" json:"capability,omitempty"`
	ThumbnailID     *string             `gorm:"size:36" json:"thumbnailId"`
	Thumbnail       *Media              `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	Outcomes        datatypes.JSON      `json:"outcomes"`
	MetaTitle       string              `gorm:"size:60" json:"metaTitle"`
	MetaDescription string              `gorm:"size:160" json:"metaDescription"`
	SEOKeywords     []string            `gorm:"serializer:json;type:text" json:"seoKeywords"`
	Technologies    []CaseStudyTechLink `gorm:"foreignKey:CaseStudyID" json:"technologies,omitempty"`
	Images          []CaseStudyImage    `gorm:"foreignKey:CaseStudyID" json:"images,omitempty"`
	CreatedByID     string              `gorm:"size:36;index" json:"createdBy"`
	UpdatedByID     *string             `gorm:"size:36" json:"updatedBy"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (CaseStudy) TableName() string { return "case_studies" }

type CaseStudyTechLink struct {
	ID           string               `gorm:"primaryKey;size:36" json:"id"`
	CaseStudyID  string               `gorm:"size:36;index" json:"caseStudyId"`
	TechnologyID string               `gorm:"size:36;index" json:"technologyId"`
	Technology   *CaseStudyTechnology `gorm:"foreignKey:TechnologyID" json:"technology,omitempty"`
	Order        int                  `gorm:"column:sort_order" json:"order"`
}

func (CaseStudyTechLink) TableName() string { return "case_study_technology_on_case_studies" }

type CaseStudyImage struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	CaseStudyID string `gorm:"size:36;index" json:"caseStudyId"`
	MediaID     string `gorm:"size:36;index" json:"mediaId"`
	Media       *Media `gorm:"foreignKey:MediaID" json:"media,omitempty"`
	Order       int    `gorm:"column:sort_order" json:"order"`
}

func (CaseStudyImage) TableName() string { return "case_study_images" }

type Event struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	Title           string         `gorm:"size:255" json:"title"`
	Slug            string         `gorm:"index;size:255" json:"slug"`
	Description     string         `gorm:"type:text" json:"description"`
	Status          string         `gorm:"size:16;index;default:draft" json:"status"`
	EventDate       *time.Time     `gorm:"index" json:"eventDate"`
	Location        string         `gorm:"size:255" json:"location"`
	LocationType    string         `gorm:"size:16" json:"locationType"`
	EventType       string         `gorm:"size:16" json:"eventType"`
	RegistrationURL string         `gorm:"size:500" json:"registrationUrl"`
	PublishedAt     *time.Time     `json:"publishedAt"`
	ScheduledAt     *time.Time     `json:"scheduledAt"`
	ThumbnailID     *string        `gorm:"size:36" json:"thumbnailId"`
	Thumbnail       *Media         `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	Images          []EventImage   `gorm:"foreignKey:EventID" json:"images,omitempty"`
	CreatedByID     string         `gorm:"size:36;index" json:"createdBy"`
	UpdatedByID     *string        `gorm:"size:36" json:"updatedBy"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Event) TableName() string { return "events" }

type EventImage struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	EventID string `gorm:"size:36;index" json:"eventId"`
	MediaID string `gorm:"size:36;index" json:"mediaId"`
	Media   *Media `gorm:"foreignKey:MediaID" json:"media,omitempty"`
	Order   int    `gorm:"column:sort_order" json:"order"`
}

func (EventImage) TableName() string { return "event_images" }

type Banner struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	Name            string         `gorm:"size:255" json:"name"`
	Slug            string         `gorm:"index;size:255" json:"slug"`
	Heading         string         `gorm:"size:255" json:"heading"`
	Subheading      string         `gorm:"size:500" json:"subheading"`
	CTALabel        string         `gorm:"size:64" json:"ctaLabel"`
	CTAURL          string         `gorm:"size:500" json:"ctaUrl"`
	BackgroundColor string         `gorm:"size:7" json:"backgroundColor"`
	Status          string         `gorm:"size:16;index;default:draft" json:"status"`
	Order           int            `gorm:"column:sort_order;default:0" json:"order"`
	ImageID         *string        `gorm:"size:36" json:"imageId"`
	Image           *Media         `gorm:"foreignKey:ImageID" json:"image,omitempty"`
	CreatedByID     string         `gorm:"size:36;index" json:"createdBy"`
	UpdatedByID     *string        `gorm:"size:36" json:"updatedBy"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Banner) TableName() string { return "banners" }

// OwnerID implementations back the ownership middleware.
func (a *Article) OwnerID() string   { return a.CreatedByID }
func (s *CaseStudy) OwnerID() string { return s.CreatedByID }
func (e *Event) OwnerID() string     { return e.CreatedByID }
func (b *Banner) OwnerID() string    { return b.CreatedByID }
