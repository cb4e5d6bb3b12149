// internal/domain/models/objective.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Objective is one learning objective of a course, ordered by OrderNum.
type Objective struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`

	TextEN string `bson:"text_en" json:"text_en"`
	TextDE string `bson:"text_de" json:"text_de"`

	OrderNum int `bson:"order_num" json:"order_num"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Text returns the objective text in the given language, falling back
// to English.
func (o *Objective) Text(lang string) string {
	if lang == "de" && o.TextDE != "" {
		return o.TextDE
	}
	return o.TextEN
}
