package query

// Per-entity listing metadata. Admin listings clamp limit to 100, public
// listings to 50. Defaults: limit 10 (20 for media), createdAt desc, except
// taxonomies (order asc) and time-bound/published content.

var ArticleSpec = Spec{
	SearchColumns: []string{"title", "excerpt", "meta_title", "meta_description"},
	SortFields: map[string]string{
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
		"publishedAt": "published_at",
		"title":       "title",
		"status":      "status",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: "desc",
	DefaultLimit: 10,
	MaxLimit:     100,
}

var PublicArticleSpec = Spec{
	SearchColumns: ArticleSpec.SearchColumns,
	SortFields: map[string]string{
		"publishedAt": "published_at",
		"title":       "title",
	},
	DefaultSort:   "publishedAt",
	DefaultOrder:  "desc",
	DefaultLimit:  10,
	MaxLimit:      50,
	FeaturedFirst: true,
}

var CaseStudySpec = Spec{
	SearchColumns: []string{"title", "summary", "client_name", "meta_title", "meta_description"},
	SortFields: map[string]string{
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
		"publishedAt": "published_at",
		"title":       "title",
		"status":      "status",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: "desc",
	DefaultLimit: 10,
	MaxLimit:     100,
}

var PublicCaseStudySpec = Spec{
	SearchColumns: CaseStudySpec.SearchColumns,
	SortFields: map[string]string{
		"publishedAt": "published_at",
		"title":       "title",
	},
	DefaultSort:   "publishedAt",
	DefaultOrder:  "desc",
	DefaultLimit:  10,
	MaxLimit:      50,
	FeaturedFirst: true,
}

var EventSpec = Spec{
	SearchColumns: []string{"title", "description", "location"},
	SortFields: map[string]string{
		"createdAt": "created_at",
		"eventDate": "event_date",
		"title":     "title",
		"status":    "status",
	},
	DefaultSort:  "eventDate",
	DefaultOrder: "desc",
	DefaultLimit: 10,
	MaxLimit:     100,
}

var PublicEventSpec = Spec{
	SearchColumns: EventSpec.SearchColumns,
	SortFields: map[string]string{
		"eventDate": "event_date",
		"title":     "title",
	},
	DefaultSort:  "eventDate",
	DefaultOrder: "asc",
	DefaultLimit: 10,
	MaxLimit:     50,
}

var BannerSpec = Spec{
	SearchColumns: []string{"name", "heading", "subheading"},
	SortFields: map[string]string{
		"createdAt": "created_at",
		"name":      "name",
		"order":     "sort_order",
		"status":    "status",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: "desc",
	DefaultLimit: 10,
	MaxLimit:     100,
}

var MediaSpec = Spec{
	SearchColumns: []string{"file_name", "alt_text", "caption"},
	SortFields: map[string]string{
		"createdAt": "created_at",
		"fileName":  "file_name",
		"size":      "size",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: "desc",
	DefaultLimit: 20,
	MaxLimit:     100,
}

var TaxonomySpec = Spec{
	SearchColumns: []string{"name", "slug"},
	SortFields: map[string]string{
		"order":     "sort_order",
		"name":      "name",
		"createdAt": "created_at",
	},
	DefaultSort:  "order",
	DefaultOrder: "asc",
	DefaultLimit: 10,
	MaxLimit:     100,
}

var UserSpec = Spec{
	SearchColumns: []string{"name", "username", "email"},
	SortFields: map[string]string{
		"createdAt": "created_at",
		"name":      "name",
		"username":  "username",
		"role":      "role",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: "desc",
	DefaultLimit: 10,
	MaxLimit:     100,
}
