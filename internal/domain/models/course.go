// internal/domain/models/course.go
package models

import (
	"html/template"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course categories.
const (
	CategoryCourse   = "course"
	CategoryBootcamp = "bootcamp"
)

// Course represents a purchasable offering in the catalog, either a
// self-paced course or a scheduled bootcamp.
//
// All display text is carried in both English and German. The store
// persists canonical snake_case field names; handlers pick the language
// at render time via the i18n helpers.
type Course struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug    string             `bson:"slug" json:"slug"`
	TitleEN string             `bson:"title_en" json:"title_en"`
	TitleDE string             `bson:"title_de" json:"title_de"`
	TitleCI string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped (EN title)

	SummaryEN     string `bson:"summary_en,omitempty" json:"summary_en,omitempty"`
	SummaryDE     string `bson:"summary_de,omitempty" json:"summary_de,omitempty"`
	DescriptionEN string `bson:"description_en,omitempty" json:"description_en,omitempty"`
	DescriptionDE string `bson:"description_de,omitempty" json:"description_de,omitempty"`

	Category string  `bson:"category" json:"category"` // "course" or "bootcamp"
	Price    float64 `bson:"price" json:"price"`
	Duration string  `bson:"duration,omitempty" json:"duration,omitempty"` // e.g. "8 weeks"
	ImageURL string  `bson:"image_url,omitempty" json:"image_url,omitempty"`

	Status string `bson:"status" json:"status"` // "active" or "disabled"

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Title returns the course title in the given language ("en" or "de"),
// falling back to English when the German text is empty.
func (c *Course) Title(lang string) string {
	if lang == "de" && c.TitleDE != "" {
		return c.TitleDE
	}
	return c.TitleEN
}

// Summary returns the short summary in the given language.
func (c *Course) Summary(lang string) string {
	if lang == "de" && c.SummaryDE != "" {
		return c.SummaryDE
	}
	return c.SummaryEN
}

// Description returns the long description in the given language.
func (c *Course) Description(lang string) string {
	if lang == "de" && c.DescriptionDE != "" {
		return c.DescriptionDE
	}
	return c.DescriptionEN
}

// DescriptionHTML returns the description as markup for rendering.
// Descriptions are sanitized before they are persisted, so the stored
// fragment is safe to emit unescaped.
func (c *Course) DescriptionHTML(lang string) template.HTML {
	return template.HTML(c.Description(lang)) // #nosec G203
}
