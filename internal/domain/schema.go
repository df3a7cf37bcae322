package domain

// Schema parameterizes the generic list manager for one screen: where the
// collection lives, which fields must be filled before a save, whether the
// items carry an active flag, and whether that flag is exclusive (at most
// one item active across the whole collection).
type Schema[T Item] struct {
	// Screen is the human-readable screen name, used in logs and messages.
	Screen string

	// Resource is the collection path segment on the backend, e.g. "ads".
	Resource string

	// Columns lists field names in display order.
	Columns []string

	// Required names the fields that must be non-empty before create/save.
	Required []string

	// Exclusive enforces the single-active-item rule on activation.
	Exclusive bool

	// PageSize is the default number of rows per page for this screen.
	PageSize int

	// FieldsOf projects an item into its editable fields.
	FieldsOf func(T) Fields

	// ActiveOf reads the item's active flag; nil when the screen has none.
	ActiveOf func(T) bool
}

// HasActiveFlag reports whether items on this screen carry an active flag.
func (s Schema[T]) HasActiveFlag() bool { return s.ActiveOf != nil }

// MissingRequired returns the required field names that are absent or empty
// in fields, in schema order.
func (s Schema[T]) MissingRequired(fields Fields) []string {
	var missing []string
	for _, name := range s.Required {
		v, ok := fields[name]
		if !ok || v == nil {
			missing = append(missing, name)
			continue
		}
		if str, isStr := v.(string); isStr && str == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Ads returns the schema for the advertisement screen.
func Ads() Schema[Ad] {
	return Schema[Ad]{
		Screen:    "ads",
		Resource:  "ads",
		Columns:   []string{"title", "imageUrl", "startDate", "endDate", "isActive"},
		Required:  []string{"title", "startDate", "endDate"},
		Exclusive: true,
		PageSize:  5,
		FieldsOf: func(a Ad) Fields {
			return Fields{
				"title":     a.Title,
				"imageUrl":  a.ImageURL,
				"startDate": a.StartDate,
				"endDate":   a.EndDate,
				"isActive":  a.IsActive,
			}
		},
		ActiveOf: func(a Ad) bool { return a.IsActive },
	}
}

// Taglines returns the schema for the tagline screen.
func Taglines() Schema[Tagline] {
	return Schema[Tagline]{
		Screen:    "taglines",
		Resource:  "tagline",
		Columns:   []string{"text", "startDate", "endDate", "isActive"},
		Required:  []string{"text"},
		Exclusive: true,
		PageSize:  5,
		FieldsOf: func(t Tagline) Fields {
			return Fields{
				"text":      t.Text,
				"startDate": t.StartDate,
				"endDate":   t.EndDate,
				"isActive":  t.IsActive,
			}
		},
		ActiveOf: func(t Tagline) bool { return t.IsActive },
	}
}

// Testimonials returns the schema for the testimonial screen. The status
// flag is a plain visibility toggle, not exclusive.
func Testimonials() Schema[Testimonial] {
	return Schema[Testimonial]{
		Screen:   "testimonials",
		Resource: "testimonials",
		Columns:  []string{"fullName", "city", "country", "feedbackText", "status"},
		Required: []string{"fullName", "feedbackText"},
		PageSize: 3,
		FieldsOf: func(t Testimonial) Fields {
			return Fields{
				"fullName":     t.FullName,
				"city":         t.City,
				"country":      t.Country,
				"feedbackText": t.FeedbackText,
				"status":       t.Status,
			}
		},
		ActiveOf: func(t Testimonial) bool { return t.Status },
	}
}

// Blogs returns the schema for the blog screen.
func Blogs() Schema[Blog] {
	return Schema[Blog]{
		Screen:   "blogs",
		Resource: "blogs",
		Columns:  []string{"title", "creator", "content", "imageUrl", "slugs", "timeChips", "status"},
		Required: []string{"title", "creator", "content", "slugs"},
		PageSize: 5,
		FieldsOf: func(b Blog) Fields {
			return Fields{
				"title":     b.Title,
				"creator":   b.Creator,
				"content":   b.Content,
				"imageUrl":  b.ImageURL,
				"slugs":     b.Slugs,
				"timeChips": b.TimeChips,
				"status":    b.Status,
			}
		},
		ActiveOf: func(b Blog) bool { return b.Status },
	}
}

// Viewers returns the schema for the collected viewer leads screen.
func Viewers() Schema[Viewer] {
	return Schema[Viewer]{
		Screen:   "viewers",
		Resource: "users",
		Columns:  []string{"fullname", "country", "city", "email", "phone"},
		Required: []string{"fullname", "email"},
		PageSize: 6,
		FieldsOf: func(v Viewer) Fields {
			return Fields{
				"fullname": v.FullName,
				"country":  v.Country,
				"city":     v.City,
				"email":    v.Email,
				"phone":    v.Phone,
			}
		},
	}
}

// Freebies returns the schema for the freebie download request screen.
// Requests are read and deleted, never edited.
func Freebies() Schema[Freebie] {
	return Schema[Freebie]{
		Screen:   "freebies",
		Resource: "freebies",
		Columns:  []string{"fullName", "email", "phone"},
		PageSize: 6,
		FieldsOf: func(f Freebie) Fields {
			return Fields{
				"fullName": f.FullName,
				"email":    f.Email,
				"phone":    f.Phone,
			}
		},
	}
}
