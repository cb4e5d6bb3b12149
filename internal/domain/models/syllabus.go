// internal/domain/models/syllabus.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyllabusModule is one chapter of a course's syllabus, ordered by
// OrderNum. Timetable entries may reference the module they cover.
type SyllabusModule struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`

	TitleEN string `bson:"title_en" json:"title_en"`
	TitleDE string `bson:"title_de" json:"title_de"`

	OrderNum int `bson:"order_num" json:"order_num"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Title returns the module title in the given language, falling back to
// English.
func (m *SyllabusModule) Title(lang string) string {
	if lang == "de" && m.TitleDE != "" {
		return m.TitleDE
	}
	return m.TitleEN
}

// SyllabusDetail is one bullet point within a syllabus module.
type SyllabusDetail struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SyllabusID primitive.ObjectID `bson:"syllabus_id" json:"syllabus_id"`

	TextEN string `bson:"text_en" json:"text_en"`
	TextDE string `bson:"text_de" json:"text_de"`

	OrderNum int `bson:"order_num" json:"order_num"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Text returns the detail text in the given language, falling back to
// English.
func (d *SyllabusDetail) Text(lang string) string {
	if lang == "de" && d.TextDE != "" {
		return d.TextDE
	}
	return d.TextEN
}
