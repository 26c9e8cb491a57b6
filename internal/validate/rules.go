package validate

import "marketing-cms/internal/domain"

// Article and case-study validators intentionally stop at the first error;
// the taxonomy-style and schema-driven validators report the full list. API
// consumers rely on that asymmetry.

var ArticleRules = RuleSet{
	FailFast: true,
	Rules: []Rule{
		{Field: "title", Label: "Title", Required: true, NotBlank: true, MaxLen: 255},
		{Field: "slug", Label: "Slug", Slug: true, MaxLen: 255},
		{Field: "excerpt", Label: "Excerpt", MaxLen: 500},
		{Field: "content", Label: "Content", Required: true, NotBlank: true, MaxLen: 15000},
		{Field: "status", Label: "Status", Enum: domain.ContentStatuses},
		{Field: "isFeatured", Label: "isFeatured", Bool: true},
		{Field: "metaTitle", Label: "Meta title", MaxLen: 60},
		{Field: "metaDescription", Label: "Meta description", MaxLen: 160},
		{Field: "seoKeywords", Label: "SEO keywords", Keywords: true},
	},
}

var CaseStudyRules = RuleSet{
	FailFast: true,
	Rules: []Rule{
		{Field: "title", Label: "Title", Required: true, NotBlank: true, MaxLen: 255},
		{Field: "slug", Label: "Slug", Slug: true, MaxLen: 255},
		{Field: "summary", Label: "Summary", MaxLen: 500},
		{Field: "content", Label: "Content", Required: true, NotBlank: true, MaxLen: 15000},
		{Field: "clientName", Label: "Client name", MaxLen: 255},
		{Field: "status", Label: "Status", Enum: domain.ContentStatuses},
		{Field: "isFeatured", Label: "isFeatured", Bool: true},
		{Field: "outcomes", Label: "Outcomes", Outcomes: true},
		{Field: "metaTitle", Label: "Meta title", MaxLen: 60},
		{Field: "metaDescription", Label: "Meta description", MaxLen: 160},
		{Field: "seoKeywords", Label: "SEO keywords", Keywords: true},
	},
}

var EventRules = RuleSet{
	Rules: []Rule{
		{Field: "title", Label: "Title", Required: true, NotBlank: true, MaxLen: 255},
		{Field: "slug", Label: "Slug", Slug: true, MaxLen: 255},
		{Field: "description", Label: "Description", Required: true, NotBlank: true, MaxLen: 15000},
		{Field: "status", Label: "Status", Enum: domain.ContentStatuses},
		{Field: "eventDate", Label: "Event date", Required: true, NotBlank: true},
		{Field: "location", Label: "Location", MaxLen: 255},
		{Field: "locationType", Label: "Location type", Enum: domain.LocationTypes},
		{Field: "eventType", Label: "Event type", Enum: domain.EventTypes},
		{Field: "registrationUrl", Label: "Registration URL", MaxLen: 500},
	},
}

var BannerRules = RuleSet{
	Rules: []Rule{
		{Field: "name", Label: "Name", Required: true, NotBlank: true, MaxLen: 255},
		{Field: "slug", Label: "Slug", Slug: true, MaxLen: 255},
		{Field: "heading", Label: "Heading", MaxLen: 255},
		{Field: "subheading", Label: "Subheading", MaxLen: 500},
		{Field: "ctaLabel", Label: "CTA label", MaxLen: 64},
		{Field: "ctaUrl", Label: "CTA URL", MaxLen: 500},
		{Field: "backgroundColor", Label: "Background color", HexColor: true},
		{Field: "status", Label: "Status", Enum: domain.BannerStatuses},
		{Field: "order", Label: "Order", NonNeg: true},
	},
}

var TaxonomyRules = RuleSet{
	Rules: []Rule{
		{Field: "name", Label: "Name", Required: true, NotBlank: true, MaxLen: 255},
		{Field: "slug", Label: "Slug", Slug: true, MaxLen: 255},
		{Field: "order", Label: "Order", NonNeg: true},
		{Field: "active", Label: "Active", Bool: true},
	},
}

var MediaRules = RuleSet{
	Rules: []Rule{
		{Field: "altText", Label: "Alt text", MaxLen: 255},
		{Field: "caption", Label: "Caption", MaxLen: 500},
	},
}

var UserRules = RuleSet{
	Rules: []Rule{
		{Field: "name", Label: "Name", Required: true, NotBlank: true, MaxLen: 128},
		{Field: "username", Label: "Username", Required: true, NotBlank: true, MaxLen: 64},
		{Field: "email", Label: "Email", Required: true, NotBlank: true, MaxLen: 191},
		{Field: "password", Label: "Password", Required: true, NotBlank: true, MaxLen: 72},
		{Field: "role", Label: "Role", Enum: domain.Roles},
		{Field: "active", Label: "Active", Bool: true},
	},
}
